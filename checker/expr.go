package checker

import (
	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/errdefs"
	"github.com/polyglotc/pgc/parser"
)

// LowerTopExpr dispatches a top-level grammar production to its checked
// ast.Expr (spec.md §4.4).
func LowerTopExpr(node *parser.TopExpr, src string, scope *ast.Scope) ast.Expr {
	switch {
	case node.Var != nil:
		return lowerVar(node.Var, src, scope)
	case node.Typedef != nil:
		return lowerTypedef(node.Typedef, src, scope)
	case node.Fn != nil:
		return lowerFn(node.Fn, src, scope)
	case node.Name != nil:
		return lowerName(node.Name, src, scope)
	case node.If != nil:
		scope.Fail(errdefs.WithUnimplemented(rng(node.If), "if"))
		return ast.ErrExpr()
	case node.Use != nil:
		scope.Fail(errdefs.WithUnimplemented(rng(node.Use), "use"))
		return ast.ErrExpr()
	case node.Ret != nil:
		scope.Fail(errdefs.WithUnimplemented(rng(node.Ret), "ret"))
		return ast.ErrExpr()
	}
	return ast.ErrExpr()
}

// lowerVar covers both Init (Value present) and Decl (Value absent),
// spec.md §4.4.
func lowerVar(node *parser.VarStmt, src string, scope *ast.Scope) ast.Expr {
	context := parser.Text(src, node)
	if node.Value == nil {
		if node.Type == nil {
			return ast.ErrExpr()
		}
		t := ParseType(node.Type, scope)
		if t.IsErr() {
			return ast.ErrExpr()
		}
		scope.Insert(node.Name, t)
		return ast.Expr{Kind: ast.ExprDecl, Decl: &ast.Decl{Name: node.Name, Type: t, Context: context}}
	}

	v := LowerValue(node.Value, scope)
	if v.IsErr() {
		return ast.ErrExpr()
	}
	inferred := InferType(v, scope)
	if inferred.IsErr() {
		return ast.ErrExpr()
	}
	t := inferred
	if node.Type != nil {
		declared := ParseType(node.Type, scope)
		if declared.IsErr() {
			return ast.ErrExpr()
		}
		if !declared.Equal(inferred) {
			scope.Fail(errdefs.WithWrongAssignmentType(rng(node.Value), declared, inferred))
			return ast.ErrExpr()
		}
		t = declared
	}
	scope.Insert(node.Name, t)
	return ast.Expr{Kind: ast.ExprInit, Init: &ast.Init{Name: node.Name, Type: t, Value: v, Context: context}}
}

func lowerTypedef(node *parser.TypedefStmt, src string, scope *ast.Scope) ast.Expr {
	t := ParseType(node.Type, scope)
	if t.IsErr() {
		return ast.ErrExpr()
	}
	scope.Insert(node.Name, t)
	return ast.Expr{Kind: ast.ExprTypedef, Typedef: &ast.Typedef{Name: node.Name, Type: t}}
}

func lowerFn(node *parser.FnStmt, src string, scope *ast.Scope) ast.Expr {
	context := parser.Text(src, node)

	ret := ast.Void()
	if node.Return != nil {
		ret = ParseType(node.Return, scope)
	}

	params := make([]ast.Param, len(node.Params))
	paramTypes := make([]ast.Type, len(node.Params))
	for i, p := range node.Params {
		pt := ParseType(p.Type, scope)
		params[i] = ast.Param{Name: p.Name, Type: pt}
		paramTypes[i] = pt
	}

	if !scope.InsertFunc(node.Name, ast.FuncSig{Return: ret, Params: paramTypes}) {
		scope.Fail(errdefs.WithDuplicateFunction(rng(node), node.Name, rng(node)))
		// body is still parsed/lowered for diagnostics, per spec.md §12, but
		// in a throwaway fork so its locals never pollute the outer scope.
		lowerFnBody(node.Body, src, scope.Fork(params))
		return ast.ErrExpr()
	}

	child := scope.Fork(params)
	body := lowerFnBody(node.Body, src, child)

	return ast.Expr{Kind: ast.ExprFn, Fn: &ast.Fn{
		Name:    node.Name,
		Return:  ret,
		Params:  params,
		Body:    body,
		Context: context,
	}}
}

func lowerFnBody(nodes []*parser.TopExpr, src string, scope *ast.Scope) []ast.Expr {
	body := make([]ast.Expr, len(nodes))
	for i, n := range nodes {
		body[i] = LowerTopExpr(n, src, scope)
	}
	return body
}

// lowerName dispatches the four identifier-led top-level forms: plain
// assignment, compound assignment, list-remove-all, and a bare call.
func lowerName(node *parser.NameStmt, src string, scope *ast.Scope) ast.Expr {
	context := parser.Text(src, node)
	switch {
	case node.Assig != nil:
		return lowerAssig(node.Name, node.Assig, context, scope)
	case node.OpAs != nil:
		return lowerOpAssig(node.Name, node.OpAs, context, scope)
	case node.ListRm != nil:
		return lowerListRemoveAll(node.Name, node.ListRm, context, scope)
	case node.Call != nil:
		args, ok := checkCall(node.Name, node.Call.Args, rng(node), scope)
		if !ok {
			return ast.ErrExpr()
		}
		return ast.Expr{Kind: ast.ExprCall, Call: &ast.CallExpr{Name: node.Name, Args: args}}
	}
	return ast.ErrExpr()
}

func lowerAssig(name string, node *parser.AssigTail, context string, scope *ast.Scope) ast.Expr {
	v := LowerValue(node.Value, scope)
	if v.IsErr() {
		return ast.ErrExpr()
	}
	declared, ok := scope.Lookup(name)
	if !ok {
		scope.Fail(errdefs.WithAssignToUndeclaredVariable(rng(node), name))
		return ast.ErrExpr()
	}
	inferred := InferType(v, scope)
	if inferred.IsErr() {
		return ast.ErrExpr()
	}
	if !declared.Equal(inferred) {
		scope.Fail(errdefs.WithWrongAssignmentType(rng(node.Value), declared, inferred))
		return ast.ErrExpr()
	}
	return ast.Expr{Kind: ast.ExprAssig, Assig: &ast.Assig{Name: name, Value: v, Context: context}}
}

// lowerOpAssig implements spec.md §12's compound-assignment lowering: the
// stored value is an Op whose left operand is a synthetic Var reference
// sharing the right-hand value's source range.
func lowerOpAssig(name string, node *parser.OpAssigTail, context string, scope *ast.Scope) ast.Expr {
	rhs := LowerValue(node.Value, scope)
	if rhs.IsErr() {
		return ast.ErrExpr()
	}
	declared, ok := scope.Lookup(name)
	if !ok {
		scope.Fail(errdefs.WithAssignToUndeclaredVariable(rng(node), name))
		return ast.ErrExpr()
	}
	rhsType := InferType(rhs, scope)
	if rhsType.IsErr() {
		return ast.ErrExpr()
	}
	if !declared.Equal(rhsType) {
		scope.Fail(errdefs.WithWrongAssignmentType(rng(node.Value), declared, rhsType))
		return ast.ErrExpr()
	}

	valueRange := rng(node.Value)
	left := ast.Value{Kind: ast.ValVar, VarVal: &ast.VarRef{Name: name, Range: valueRange}}
	op := ast.Value{Kind: ast.ValOp, OpVal: &ast.Op{Kind: opKindFromAssig(node.Op), Range: rng(node), Left: &left, Right: &rhs}}
	return ast.Expr{Kind: ast.ExprAssig, Assig: &ast.Assig{Name: name, Value: op, Context: context}}
}

func opKindFromAssig(op string) ast.OpKind {
	switch op {
	case "+=":
		return ast.OpAdd
	case "-=":
		return ast.OpSub
	case "*=":
		return ast.OpMul
	case "/=":
		return ast.OpDiv
	case "%=":
		return ast.OpMod
	case "**=":
		return ast.OpPow
	}
	return ast.OpAdd
}

// lowerListRemoveAll implements `NAME --= VALUE` (spec.md §4.4, §12): NAME
// must be a declared List(T) and VALUE must infer to T.
func lowerListRemoveAll(name string, node *parser.ListRmTail, context string, scope *ast.Scope) ast.Expr {
	v := LowerValue(node.Value, scope)
	if v.IsErr() {
		return ast.ErrExpr()
	}
	declared, ok := scope.Lookup(name)
	if !ok {
		scope.Fail(errdefs.WithRemoveFromNonexistentList(rng(node), name))
		return ast.ErrExpr()
	}
	if declared.Kind != ast.KindList {
		scope.Fail(errdefs.WithNotListOrDict(rng(node), name))
		return ast.ErrExpr()
	}
	elemType := InferType(v, scope)
	if elemType.IsErr() {
		return ast.ErrExpr()
	}
	if !declared.Elem.Equal(elemType) {
		scope.Fail(errdefs.WithWrongType(rng(node.Value), *declared.Elem, elemType))
		return ast.ErrExpr()
	}
	op := ast.Value{Kind: ast.ValOp, OpVal: &ast.Op{Kind: ast.OpListRemoveAll, Range: rng(node), Target: name, Elem: &v}}
	return ast.Expr{Kind: ast.ExprAssig, Assig: &ast.Assig{Name: name, Value: op, Context: context}}
}
