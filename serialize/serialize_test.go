package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/serialize"
)

func TestArtifactPathReplacesExtension(t *testing.T) {
	assert.Equal(t, "foo.pg.yml", serialize.ArtifactPath("foo.pg"))
	assert.Equal(t, "dir/bar.pg.yml", serialize.ArtifactPath("dir/bar.txt"))
}

func TestMarshalPreservesOrderAndRoundTrips(t *testing.T) {
	prog := &ast.Program{Exprs: []ast.Expr{
		{Kind: ast.ExprInit, Init: &ast.Init{Name: "a", Type: ast.Int(), Value: ast.Value{Kind: ast.ValInt, IntVal: 1}, Context: "var a = 1"}},
		{Kind: ast.ExprInit, Init: &ast.Init{
			Name: "p",
			Type: ast.Struct(ast.StructField{Name: "x", Type: ast.Int()}, ast.StructField{Name: "y", Type: ast.Int()}),
			Value: ast.Value{Kind: ast.ValStruct, StructVal: []ast.StructValueField{
				{Name: "y", Value: ast.Value{Kind: ast.ValInt, IntVal: 2}},
				{Name: "x", Value: ast.Value{Kind: ast.ValInt, IntVal: 1}},
			}},
			Context: "var p = (y: 2, x: 1)",
		}},
	}}

	out, err := serialize.Marshal(prog)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var roundTripped ast.Program
	require.NoError(t, yaml.Unmarshal(out, &roundTripped))
	assert.Equal(t, prog.Exprs[0].Init.Name, roundTripped.Exprs[0].Init.Name)

	// Struct literal field order must be preserved verbatim (source order,
	// never resorted) per spec.md §6.2.
	require.Len(t, roundTripped.Exprs[1].Init.Value.StructVal, 2)
	assert.Equal(t, "y", roundTripped.Exprs[1].Init.Value.StructVal[0].Name)
	assert.Equal(t, "x", roundTripped.Exprs[1].Init.Value.StructVal[1].Name)

	out2, err := yaml.Marshal(&roundTripped)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
}
