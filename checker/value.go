package checker

import (
	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/diagnostic"
	"github.com/polyglotc/pgc/errdefs"
	"github.com/polyglotc/pgc/parser"
)

// LowerValue lowers a grammar value production into a checked ast.Value,
// walking the precedence chain Or > And > Not > Cmp > Sum > Product >
// Power > Atom (spec.md §4.3).
func LowerValue(node *parser.Value, scope *ast.Scope) ast.Value {
	left := lowerAnd(node.Left, scope)
	for _, r := range node.Rest {
		right := lowerAnd(r, scope)
		left = combineBoolOp(ast.CmpOr, left, right, rng(r), scope)
	}
	return left
}

func lowerAnd(node *parser.AndExpr, scope *ast.Scope) ast.Value {
	left := lowerNot(node.Left, scope)
	for _, r := range node.Rest {
		right := lowerNot(r, scope)
		left = combineBoolOp(ast.CmpAnd, left, right, rng(r), scope)
	}
	return left
}

func combineBoolOp(kind ast.CmpKind, l, r ast.Value, rangeVal ast.Range, scope *ast.Scope) ast.Value {
	if l.IsErr() || r.IsErr() {
		return ast.ErrValue()
	}
	lt := InferType(l, scope)
	rt := InferType(r, scope)
	if lt.IsErr() || rt.IsErr() {
		return cmpErrValue(rangeVal)
	}
	if lt.Kind != ast.KindBool || rt.Kind != ast.KindBool {
		bad := lt
		if lt.Kind == ast.KindBool {
			bad = rt
		}
		scope.Fail(errdefs.WithWrongType(rangeVal, ast.Bool(), bad))
		return cmpErrValue(rangeVal)
	}
	return ast.Value{Kind: ast.ValCmp, CmpVal: &ast.Cmp{Kind: kind, Range: rangeVal, Left: &l, Right: &r}}
}

func lowerNot(node *parser.NotExpr, scope *ast.Scope) ast.Value {
	inner := lowerCmp(node.Cmp, scope)
	if !node.Bang {
		return inner
	}
	if inner.IsErr() {
		return ast.ErrValue()
	}
	t := InferType(inner, scope)
	if t.IsErr() {
		return cmpErrValue(rng(node))
	}
	if t.Kind != ast.KindBool {
		scope.Fail(errdefs.WithWrongNegationType(rng(node), t))
		return cmpErrValue(rng(node))
	}
	return ast.Value{Kind: ast.ValCmp, CmpVal: &ast.Cmp{Kind: ast.CmpNot, Range: rng(node), Left: &inner}}
}

func lowerCmp(node *parser.CmpExpr, scope *ast.Scope) ast.Value {
	left := lowerSum(node.Left, scope)
	if node.Tail == nil {
		return left
	}
	right := lowerSum(node.Tail.Right, scope)
	kind := cmpKindFromOp(node.Tail.Op)
	rangeVal := rng(node)
	if left.IsErr() || right.IsErr() {
		return ast.ErrValue()
	}
	lt := InferType(left, scope)
	rt := InferType(right, scope)
	if lt.IsErr() || rt.IsErr() {
		return cmpErrValue(rangeVal)
	}
	if !CanCompare(lt, rt) {
		switch {
		case lt.Kind == ast.KindTuple || lt.Kind == ast.KindStruct || rt.Kind == ast.KindTuple || rt.Kind == ast.KindStruct:
			scope.Fail(errdefs.WithComparingTupleOrStruct(rangeVal))
		case lt.Kind == ast.KindVoid || rt.Kind == ast.KindVoid:
			scope.Fail(errdefs.WithComparingVoid(rangeVal))
		default:
			scope.Fail(errdefs.WithComparingDifferentTypes(rangeVal, lt, rt))
		}
		return cmpErrValue(rangeVal)
	}
	return ast.Value{Kind: ast.ValCmp, CmpVal: &ast.Cmp{Kind: kind, Range: rangeVal, Left: &left, Right: &right}}
}

func cmpKindFromOp(op string) ast.CmpKind {
	switch op {
	case "<":
		return ast.CmpLess
	case ">":
		return ast.CmpGreater
	case "<=":
		return ast.CmpLessEq
	case ">=":
		return ast.CmpGreatEq
	case "==":
		return ast.CmpEqual
	case "!=":
		return ast.CmpNotEq
	}
	return ast.CmpErr
}

func cmpErrValue(rangeVal ast.Range) ast.Value {
	return ast.Value{Kind: ast.ValCmp, CmpVal: &ast.Cmp{Kind: ast.CmpErr, Range: rangeVal}}
}

func lowerSum(node *parser.Sum, scope *ast.Scope) ast.Value {
	left := lowerProduct(node.Left, scope)
	for _, r := range node.Rest {
		right := lowerProduct(r.Right, scope)
		kind := ast.OpAdd
		if r.Op == "-" {
			kind = ast.OpSub
		}
		left = opValue(kind, left, right, rng(r))
	}
	return left
}

func lowerProduct(node *parser.Product, scope *ast.Scope) ast.Value {
	left := lowerPower(node.Left, scope)
	for _, r := range node.Rest {
		right := lowerPower(r.Right, scope)
		var kind ast.OpKind
		switch r.Op {
		case "*":
			kind = ast.OpMul
		case "/":
			kind = ast.OpDiv
		case "%":
			kind = ast.OpMod
		}
		left = opValue(kind, left, right, rng(r))
	}
	return left
}

// lowerPower folds right-associatively: a ** b ** c == a ** (b ** c).
func lowerPower(node *parser.Power, scope *ast.Scope) ast.Value {
	operands := make([]ast.Value, 0, len(node.Right)+1)
	operands = append(operands, lowerAtom(node.Left, scope))
	for _, a := range node.Right {
		operands = append(operands, lowerAtom(a, scope))
	}
	result := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		result = opValue(ast.OpPow, operands[i], result, rng(node))
	}
	return result
}

func opValue(kind ast.OpKind, l, r ast.Value, rangeVal ast.Range) ast.Value {
	return ast.Value{Kind: ast.ValOp, OpVal: &ast.Op{Kind: kind, Range: rangeVal, Left: &l, Right: &r}}
}

func lowerAtom(node *parser.Atom, scope *ast.Scope) ast.Value {
	switch {
	case node.Num != nil:
		return ast.Value{Kind: ast.ValNum, NumVal: *node.Num}
	case node.Int != nil:
		return ast.Value{Kind: ast.ValInt, IntVal: *node.Int}
	case node.Bool != nil:
		return ast.Value{Kind: ast.ValBool, BoolVal: *node.Bool == "true"}
	case node.Char != nil:
		return ast.Value{Kind: ast.ValChar, CharVal: lowerCharLit(*node.Char)}
	case node.Str != nil:
		return ast.Value{Kind: ast.ValStr, StrVal: lowerStrLit(*node.Str)}
	case node.Struct != nil:
		fields := make([]ast.StructValueField, len(node.Struct.Fields))
		for i, f := range node.Struct.Fields {
			fields[i] = ast.StructValueField{Name: f.Name, Value: LowerValue(f.Value, scope)}
		}
		return ast.Value{Kind: ast.ValStruct, StructVal: fields}
	case node.Tuple != nil:
		elems := node.Tuple.Elems()
		vals := make([]ast.Value, len(elems))
		for i, e := range elems {
			vals[i] = LowerValue(e, scope)
		}
		return ast.Value{Kind: ast.ValTuple, TupleVal: vals}
	case node.Dict != nil:
		entries := make([]ast.DictEntry, len(node.Dict.Entries))
		for i, e := range node.Dict.Entries {
			entries[i] = ast.DictEntry{Key: LowerValue(e.Key, scope), Value: LowerValue(e.Value, scope)}
		}
		return ast.Value{Kind: ast.ValDict, DictVal: entries}
	case node.List != nil:
		vals := make([]ast.Value, len(node.List.Elems))
		for i, e := range node.List.Elems {
			vals[i] = LowerValue(e, scope)
		}
		return ast.Value{Kind: ast.ValList, ListVal: vals}
	case node.Paren != nil:
		inner := LowerValue(node.Paren.Inner, scope)
		return ast.Value{Kind: ast.ValParenthesis, ParenVal: &inner}
	case node.Ident != nil:
		return lowerIdent(node.Ident, scope)
	}
	return ast.ErrValue()
}

func lowerCharLit(raw string) byte {
	inner := raw
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	if len(inner) == 0 {
		return 0
	}
	return inner[0]
}

func lowerStrLit(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func lowerIdent(node *parser.IdentExpr, scope *ast.Scope) ast.Value {
	switch {
	case node.Dot != nil:
		mode := ast.TupleAccessMode{Kind: ast.TupleAccessMember}
		if node.Dot.Member != nil {
			mode.Member = *node.Dot.Member
		} else {
			mode.Kind = ast.TupleAccessIndex
			mode.Index = *node.Dot.Index
		}
		return ast.Value{Kind: ast.ValTupleAccess, TupleAccessVal: &ast.TupleAccess{
			Name:        node.Name,
			Mode:        mode,
			NameRange:   ast.Range{Start: rng(node).Start, End: rng(node.Dot).Start},
			AccessRange: ast.Range{Start: rng(node).Start, End: rng(node.Dot).End},
		}}
	case node.Bracket != nil:
		return lowerListAccess(node, scope)
	case node.Call != nil:
		args, ok := checkCall(node.Name, node.Call.Args, rng(node), scope)
		if !ok {
			return ast.ErrValue()
		}
		return ast.Value{Kind: ast.ValCall, CallVal: &ast.Call{Name: node.Name, Args: args}}
	case node.Mod != nil:
		scope.Fail(errdefs.WithUnimplemented(rng(node), "module access"))
		return ast.ErrValue()
	case node.As != nil:
		scope.Fail(errdefs.WithUnimplemented(rng(node), "type conversion"))
		return ast.ErrValue()
	default:
		return ast.Value{Kind: ast.ValVar, VarVal: &ast.VarRef{Name: node.Name, Range: rng(node)}}
	}
}

func lowerListAccess(node *parser.IdentExpr, scope *ast.Scope) ast.Value {
	name := node.Name
	nameRange := rng(node)
	accessRange := ast.Range{Start: rng(node).Start, End: rng(node.Bracket).End}

	containerType, ok := scope.Lookup(name)
	if !ok {
		scope.Fail(errdefs.WithInvalidListOrDict(nameRange, name))
		return ast.ErrValue()
	}

	switch containerType.Kind {
	case ast.KindList:
		index, isIntLit := intLiteral(node.Bracket.Key)
		if !isIntLit {
			scope.Fail(errdefs.WithListAccessedAsDict(accessRange, name))
			return ast.ErrValue()
		}
		if index < 0 {
			scope.Fail(errdefs.WithNegativeIndex(accessRange, int(index)))
			return ast.ErrValue()
		}
		return ast.Value{Kind: ast.ValListAccess, ListAccessVal: &ast.ListAccess{
			Name:        name,
			Mode:        ast.ListAccessMode{Kind: ast.ListAccessIndex, ListIndex: int(index)},
			ElementType: *containerType.Elem,
			NameRange:   nameRange,
			AccessRange: accessRange,
		}}
	case ast.KindDict:
		keyVal := LowerValue(node.Bracket.Key, scope)
		if keyVal.IsErr() {
			return ast.ErrValue()
		}
		keyType := InferType(keyVal, scope)
		if keyType.IsErr() {
			return ast.ErrValue()
		}
		if !keyType.Equal(*containerType.Key) {
			scope.Fail(errdefs.WithWrongAccessType(accessRange, *containerType.Key, keyType))
			return ast.ErrValue()
		}
		return ast.Value{Kind: ast.ValListAccess, ListAccessVal: &ast.ListAccess{
			Name:        name,
			Mode:        ast.ListAccessMode{Kind: ast.ListAccessKey, DictKey: &keyVal},
			ElementType: *containerType.Value,
			NameRange:   nameRange,
			AccessRange: accessRange,
		}}
	default:
		scope.Fail(errdefs.WithNotListOrDict(accessRange, name))
		return ast.ErrValue()
	}
}

// intLiteral reports whether v reduces, syntactically, to a bare integer
// literal with no surrounding operators — the grammar-level test spec.md
// §4.3 calls for when deciding "List accessed by a non-integer-literal
// index".
func intLiteral(v *parser.Value) (int64, bool) {
	if len(v.Rest) != 0 {
		return 0, false
	}
	and := v.Left
	if len(and.Rest) != 0 {
		return 0, false
	}
	not := and.Left
	if not.Bang {
		return 0, false
	}
	cmp := not.Cmp
	if cmp.Tail != nil {
		return 0, false
	}
	sum := cmp.Left
	if len(sum.Rest) != 0 {
		return 0, false
	}
	product := sum.Left
	if len(product.Rest) != 0 {
		return 0, false
	}
	power := product.Left
	if len(power.Right) != 0 {
		return 0, false
	}
	if power.Left.Int == nil {
		return 0, false
	}
	return *power.Left.Int, true
}

// checkCall resolves a call's callee and argument types, per spec.md
// §4.4's Call dispatch plus the supplemented argument-count check of
// spec.md §12.
func checkCall(name string, argNodes []*parser.Value, callRng ast.Range, scope *ast.Scope) ([]ast.Value, bool) {
	sig, ok := scope.LookupFunc(name)
	if !ok {
		suggestion := diagnostic.Suggestion(name, scope.FuncNames())
		scope.Fail(errdefs.WithUndefinedFunction(callRng, name, suggestion))
		for _, a := range argNodes {
			LowerValue(a, scope)
		}
		return nil, false
	}
	if len(argNodes) != len(sig.Params) {
		scope.Fail(errdefs.WithNumArgs(callRng, name, len(sig.Params), len(argNodes)))
		for _, a := range argNodes {
			LowerValue(a, scope)
		}
		return nil, false
	}
	args := make([]ast.Value, len(argNodes))
	ok2 := true
	for i, a := range argNodes {
		v := LowerValue(a, scope)
		args[i] = v
		if v.IsErr() {
			ok2 = false
			continue
		}
		at := InferType(v, scope)
		if at.IsErr() {
			ok2 = false
			continue
		}
		if !at.Equal(sig.Params[i]) {
			scope.Fail(errdefs.WithWrongArgType(rng(a), sig.Params[i], at))
			ok2 = false
		}
	}
	return args, ok2
}
