package checker

import (
	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/diagnostic"
	"github.com/polyglotc/pgc/errdefs"
	"github.com/polyglotc/pgc/parser"
)

// ParseType lowers a grammar type node into a checked ast.Type (spec.md
// §4.2's parse_type). A Custom name is looked up in the scope's variable
// table, since typedef'd names live there (spec.md §9).
func ParseType(node *parser.Type, scope *ast.Scope) ast.Type {
	switch {
	case node.Prim != nil:
		switch *node.Prim {
		case "int":
			return ast.Int()
		case "num":
			return ast.Num()
		case "bool":
			return ast.Bool()
		case "char":
			return ast.Char()
		case "str":
			return ast.Str()
		}
		return ast.ErrType()
	case node.Struct != nil:
		fields := make([]ast.StructField, len(node.Struct.Fields))
		for i, f := range node.Struct.Fields {
			fields[i] = ast.StructField{Name: f.Name, Type: ParseType(f.Type, scope)}
		}
		return ast.Struct(fields...)
	case node.Tuple != nil:
		elems := node.Tuple.Elems()
		types := make([]ast.Type, len(elems))
		for i, e := range elems {
			types[i] = ParseType(e, scope)
		}
		return ast.Tuple(types...)
	case node.Dict != nil:
		return ast.Dict(ParseType(node.Dict.Key, scope), ParseType(node.Dict.Value, scope))
	case node.List != nil:
		return ast.List(ParseType(node.List.Elem, scope))
	case node.Custom != nil:
		name := *node.Custom
		t, ok := scope.Lookup(name)
		if !ok {
			scope.Fail(errdefs.WithUndeclaredType(rng(node), name))
			return ast.ErrType()
		}
		return t
	}
	return ast.ErrType()
}

// InferType derives the type of an already-checked value (spec.md §4.2's
// infer_type).
func InferType(v ast.Value, scope *ast.Scope) ast.Type {
	switch v.Kind {
	case ast.ValInt:
		return ast.Int()
	case ast.ValNum:
		return ast.Num()
	case ast.ValBool:
		return ast.Bool()
	case ast.ValChar:
		return ast.Char()
	case ast.ValStr:
		return ast.Str()
	case ast.ValTuple:
		types := make([]ast.Type, len(v.TupleVal))
		for i, e := range v.TupleVal {
			types[i] = InferType(e, scope)
		}
		return ast.Tuple(types...)
	case ast.ValStruct:
		fields := make([]ast.StructField, len(v.StructVal))
		for i, f := range v.StructVal {
			fields[i] = ast.StructField{Name: f.Name, Type: InferType(f.Value, scope)}
		}
		return ast.Struct(fields...)
	case ast.ValList:
		if len(v.ListVal) == 0 {
			return ast.List(ast.Void())
		}
		return ast.List(InferType(v.ListVal[0], scope))
	case ast.ValDict:
		if len(v.DictVal) == 0 {
			return ast.Dict(ast.Void(), ast.Void())
		}
		return ast.Dict(InferType(v.DictVal[0].Key, scope), InferType(v.DictVal[0].Value, scope))
	case ast.ValVar:
		t, ok := scope.Lookup(v.VarVal.Name)
		if !ok {
			suggestion := diagnostic.Suggestion(v.VarVal.Name, scope.VarNames())
			scope.Fail(errdefs.WithUndefinedVariable(v.VarVal.Range, v.VarVal.Name, suggestion))
			return ast.ErrType()
		}
		return t
	case ast.ValTupleAccess:
		return inferTupleAccess(v.TupleAccessVal, scope)
	case ast.ValListAccess:
		return v.ListAccessVal.ElementType
	case ast.ValOp:
		op := v.OpVal
		if op.Kind == ast.OpListRemoveAll {
			scope.Fail(errdefs.WithListRemoveAllNotPermitted(op.Range))
			return ast.ErrType()
		}
		return InferType(*op.Left, scope)
	case ast.ValParenthesis:
		return InferType(*v.ParenVal, scope)
	case ast.ValCmp:
		return ast.Bool()
	case ast.ValCall:
		sig, ok := scope.LookupFunc(v.CallVal.Name)
		if !ok {
			return ast.ErrType()
		}
		return sig.Return
	case ast.ValErr:
		return ast.ErrType()
	}
	return ast.ErrType()
}

func inferTupleAccess(ta *ast.TupleAccess, scope *ast.Scope) ast.Type {
	t, ok := scope.Lookup(ta.Name)
	if !ok {
		scope.Fail(errdefs.WithInvalidTupleOrStruct(ta.AccessRange, ta.Name))
		return ast.ErrType()
	}
	switch ta.Mode.Kind {
	case ast.TupleAccessMember:
		switch t.Kind {
		case ast.KindStruct:
			field, ok := ast.CanonicalField(t.Fields, ta.Mode.Member)
			if !ok {
				scope.Fail(errdefs.WithMemberNotExist(ta.AccessRange, ta.Name, ta.Mode.Member))
				return ast.ErrType()
			}
			return field.Type
		case ast.KindTuple:
			scope.Fail(errdefs.WithTupleAccessedByMember(ta.AccessRange, ta.Name))
			return ast.ErrType()
		default:
			scope.Fail(errdefs.WithInvalidTupleOrStruct(ta.AccessRange, ta.Name))
			return ast.ErrType()
		}
	case ast.TupleAccessIndex:
		switch t.Kind {
		case ast.KindTuple:
			if ta.Mode.Index < 0 || ta.Mode.Index >= len(t.Elems) {
				scope.Fail(errdefs.WithIndexOutOfBounds(ta.AccessRange, ta.Mode.Index, len(t.Elems)))
				return ast.ErrType()
			}
			return t.Elems[ta.Mode.Index]
		case ast.KindStruct:
			scope.Fail(errdefs.WithStructAccessedByIndex(ta.AccessRange, ta.Name))
			return ast.ErrType()
		default:
			scope.Fail(errdefs.WithInvalidTupleOrStruct(ta.AccessRange, ta.Name))
			return ast.ErrType()
		}
	}
	return ast.ErrType()
}

// CanCompare implements spec.md §4.3's can_compare: both sides must infer
// to equal types, and Tuple/Struct/Void are never comparable. Err silently
// suppresses (an Err operand never reports a second diagnostic).
func CanCompare(l, r ast.Type) bool {
	if l.Kind == ast.KindErr || r.Kind == ast.KindErr {
		return false
	}
	if !l.Equal(r) {
		return false
	}
	if l.Kind == ast.KindTuple || l.Kind == ast.KindStruct {
		return false
	}
	if l.Kind == ast.KindVoid {
		return false
	}
	return true
}
