package checker_test

import (
	"bytes"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/checker"
	"github.com/polyglotc/pgc/parser"
)

func checkSrc(t *testing.T, src string) (*ast.Program, *ast.Scope, string) {
	t.Helper()
	src = dedent.Dedent(src)
	mod, err := parser.Parse("test.pg", src)
	require.NoError(t, err)
	var stderr bytes.Buffer
	scope := ast.NewScope("test.pg", src, &stderr, false)
	prog, ok := checker.Check(mod, src, scope, false)
	_ = ok
	return prog, scope, stderr.String()
}

func TestInferenceAndWidening(t *testing.T) {
	src := `
		var a = 1
		var b: num = 2
		var c: num = a
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 3)
	for _, e := range prog.Exprs {
		assert.Equal(t, ast.ExprInit, e.Kind)
	}
	assert.Empty(t, stderr)
	assert.False(t, scope.Failed())

	a, ok := scope.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ast.Int(), a)
	b, ok := scope.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, ast.Num(), b)
	c, ok := scope.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, ast.Num(), c)
}

func TestStructTupleEquivalence(t *testing.T) {
	src := `
		var p: (x: int, y: int) = (3, 4)
		var q: (int, int) = p
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.Equal(t, ast.ExprInit, prog.Exprs[0].Kind)
	assert.Equal(t, ast.ExprInit, prog.Exprs[1].Kind)
	assert.Empty(t, stderr)
	assert.False(t, scope.Failed())
}

func TestWrongAssignmentType(t *testing.T) {
	src := `
		var a: int = 1
		a = "hello"
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.Equal(t, ast.ExprInit, prog.Exprs[0].Kind)
	assert.True(t, prog.Exprs[1].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "wrong assignment type: expected 'int', found 'str'")
}

func TestFunctionSignatureAndCall(t *testing.T) {
	src := `
		fn add(x: int, y: int) -> int { var r = x }
		add(1, 2)
		add(1, "x")
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 3)
	assert.Equal(t, ast.ExprFn, prog.Exprs[0].Kind)
	assert.Equal(t, ast.ExprCall, prog.Exprs[1].Kind)
	assert.True(t, prog.Exprs[2].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "wrong argument type: expected 'int', found 'str'")

	sig, ok := scope.LookupFunc("add")
	require.True(t, ok)
	assert.Equal(t, ast.Int(), sig.Return)
	assert.Equal(t, []ast.Type{ast.Int(), ast.Int()}, sig.Params)
}

func TestTupleStructAccessDiagnostics(t *testing.T) {
	src := `
		var t: (int, int) = (1, 2)
		var s: (a: int, b: int) = (1, 2)
		var x = t.a
		var y = s.0
	`
	_, scope, stderr := checkSrc(t, src)

	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "accessed tuple")
	assert.Contains(t, stderr, "by member name")
	assert.Contains(t, stderr, "accessed struct")
	assert.Contains(t, stderr, "by index")
}

func TestListRemoveAndDictAccess(t *testing.T) {
	src := `
		var xs: [int] = [1, 2, 3]
		xs --= 2
		var d: [str -> int] = ["a": 1]
		var v = d["a"]
		var w = d[1]
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 5)
	for _, e := range prog.Exprs[:4] {
		assert.False(t, e.IsErr())
	}
	assert.True(t, prog.Exprs[4].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "wrong access type: expected str found int")
}

func TestAssignToUndeclaredVariable(t *testing.T) {
	src := `
		a = 1
		b += 1
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.True(t, prog.Exprs[0].IsErr())
	assert.True(t, prog.Exprs[1].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "assignment to inexistent variable")
}

func TestListRemoveAllWrongType(t *testing.T) {
	src := `
		var xs: [int] = [1, 2, 3]
		xs --= "a"
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.True(t, prog.Exprs[1].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "wrong type: expected 'int', found 'str'")
}

func TestDuplicateFunction(t *testing.T) {
	src := `
		fn f() { var a = 1 }
		fn f() { var b = 2 }
	`
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.Equal(t, ast.ExprFn, prog.Exprs[0].Kind)
	assert.True(t, prog.Exprs[1].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "already defined")
}

func TestUnimplementedFormsParseAndReject(t *testing.T) {
	src := "if 1 { var a = 1 }\n"
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 1)
	assert.True(t, prog.Exprs[0].IsErr())
	assert.True(t, scope.Failed())
	assert.Contains(t, stderr, "not implemented")
}

func TestCompoundAssignmentSharesRange(t *testing.T) {
	src := "var a: int = 1\na += 2\n"
	prog, scope, stderr := checkSrc(t, src)

	require.Len(t, prog.Exprs, 2)
	assert.False(t, scope.Failed())
	assert.Empty(t, stderr)

	assig := prog.Exprs[1].Assig
	require.NotNil(t, assig)
	op := assig.Value.OpVal
	require.NotNil(t, op)
	assert.Equal(t, ast.OpAdd, op.Kind)
	assert.Equal(t, "a", op.Left.VarVal.Name)
	assert.Equal(t, int64(2), op.Right.IntVal)
	// spec.md §12: the synthetic Var shares the rhs value's source range.
	assert.Equal(t, 20, op.Left.VarVal.Range.Start.Offset)
	assert.Equal(t, 21, op.Left.VarVal.Range.End.Offset)
}
