package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyglotc/pgc/ast"
)

func TestTypeEqualStructuralEquality(t *testing.T) {
	a := ast.Tuple(ast.Int(), ast.Str())
	b := ast.Tuple(ast.Int(), ast.Str())
	c := ast.Tuple(ast.Str(), ast.Int())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestTypeEqualStructTuplePrefixMatch(t *testing.T) {
	s := ast.Struct(ast.StructField{Name: "x", Type: ast.Int()}, ast.StructField{Name: "y", Type: ast.Int()})
	tup := ast.Tuple(ast.Int(), ast.Int())
	assert.True(t, s.Equal(tup))
	assert.True(t, tup.Equal(s))

	reordered := ast.Struct(ast.StructField{Name: "y", Type: ast.Int()}, ast.StructField{Name: "x", Type: ast.Int()})
	other := ast.Tuple(ast.Str(), ast.Int())
	assert.False(t, reordered.Equal(other))
}

func TestTypeEqualNumericWidening(t *testing.T) {
	assert.True(t, ast.Int().Equal(ast.Num()))
	assert.True(t, ast.Num().Equal(ast.Int()))
}

func TestTypeEqualErrNeverEqual(t *testing.T) {
	assert.False(t, ast.ErrType().Equal(ast.ErrType()))
	assert.False(t, ast.ErrType().Equal(ast.Int()))
}

func TestTypeEqualVoidNotComparableViaCustom(t *testing.T) {
	assert.False(t, ast.Void().Equal(ast.Custom("x")))
}

func TestTypeDisplay(t *testing.T) {
	cases := []struct {
		t    ast.Type
		want string
	}{
		{ast.Int(), "int"},
		{ast.Num(), "num"},
		{ast.Bool(), "bool"},
		{ast.Char(), "char"},
		{ast.Str(), "str"},
		{ast.Void(), "void"},
		{ast.ErrType(), "error"},
		{ast.Custom("Foo"), "Foo"},
		{ast.Tuple(ast.Int()), "(int)"},
		{ast.Tuple(ast.Int(), ast.Str()), "(int, str)"},
		{ast.Struct(ast.StructField{Name: "x", Type: ast.Int()}, ast.StructField{Name: "y", Type: ast.Str()}), "(x: int, y: str)"},
		{ast.List(ast.Int()), "[int]"},
		{ast.Dict(ast.Str(), ast.Int()), "[str -> int]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.t.Display())
	}
}

func TestCanonicalFieldFindsFirstMatchAndPreservesSourceOrder(t *testing.T) {
	fields := []ast.StructField{
		{Name: "b", Type: ast.Int()},
		{Name: "a", Type: ast.Str()},
	}
	f, ok := ast.CanonicalField(fields, "a")
	assert.True(t, ok)
	assert.Equal(t, ast.Str(), f.Type)

	_, ok = ast.CanonicalField(fields, "c")
	assert.False(t, ok)

	// The original slice's order must remain untouched — sorting is
	// internal to member lookup only (spec.md §9).
	assert.Equal(t, "b", fields[0].Name)
	assert.Equal(t, "a", fields[1].Name)
}

func TestTypeLessTotalOrder(t *testing.T) {
	assert.True(t, ast.Int().Less(ast.Num()))
	assert.False(t, ast.Num().Less(ast.Int()))
	assert.True(t, ast.Custom("a").Less(ast.Custom("b")))
}
