package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotc/pgc/parser"
)

func TestParseTopLevelForms(t *testing.T) {
	src := `var a = 1
var b: num = 2.5
c = 3
d += 1
e --= 2
type T = (x: int, y: int)
fn add(x: int, y: int) -> int { var r = x }
add(1, 2)
`
	mod, err := parser.Parse("test.pg", src)
	require.NoError(t, err)
	require.Len(t, mod.Exprs, 8)

	require.NotNil(t, mod.Exprs[0].Var)
	assert.Equal(t, "a", mod.Exprs[0].Var.Name)
	assert.Nil(t, mod.Exprs[0].Var.Type)
	require.NotNil(t, mod.Exprs[0].Var.Value)

	require.NotNil(t, mod.Exprs[1].Var)
	require.NotNil(t, mod.Exprs[1].Var.Type)

	require.NotNil(t, mod.Exprs[2].Name)
	assert.Equal(t, "c", mod.Exprs[2].Name.Name)
	require.NotNil(t, mod.Exprs[2].Name.Assig)

	require.NotNil(t, mod.Exprs[3].Name)
	require.NotNil(t, mod.Exprs[3].Name.OpAs)
	assert.Equal(t, "+=", mod.Exprs[3].Name.OpAs.Op)

	require.NotNil(t, mod.Exprs[4].Name)
	require.NotNil(t, mod.Exprs[4].Name.ListRm)

	require.NotNil(t, mod.Exprs[5].Typedef)
	assert.Equal(t, "T", mod.Exprs[5].Typedef.Name)
	require.NotNil(t, mod.Exprs[5].Typedef.Type.Struct)

	require.NotNil(t, mod.Exprs[6].Fn)
	assert.Equal(t, "add", mod.Exprs[6].Fn.Name)
	require.Len(t, mod.Exprs[6].Fn.Params, 2)
	require.NotNil(t, mod.Exprs[6].Fn.Return)

	require.NotNil(t, mod.Exprs[7].Name)
	require.NotNil(t, mod.Exprs[7].Name.Call)
	require.Len(t, mod.Exprs[7].Name.Call.Args, 2)
}

func TestParseCompositeValueLiterals(t *testing.T) {
	src := `var a = (1, 2, 3)
var b = (x: 1, y: 2)
var c = [1, 2, 3]
var d = ["a": 1, "b": 2]
var e = (1)
`
	mod, err := parser.Parse("test.pg", src)
	require.NoError(t, err)
	require.Len(t, mod.Exprs, 5)

	tuple := mod.Exprs[0].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Tuple
	require.NotNil(t, tuple)
	assert.Len(t, tuple.Elems(), 3)

	structLit := mod.Exprs[1].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Struct
	require.NotNil(t, structLit)
	assert.Len(t, structLit.Fields, 2)

	list := mod.Exprs[2].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.List
	require.NotNil(t, list)
	assert.Len(t, list.Elems, 3)

	dict := mod.Exprs[3].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Dict
	require.NotNil(t, dict)
	assert.Len(t, dict.Entries, 2)

	paren := mod.Exprs[4].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Paren
	require.NotNil(t, paren)
}

func TestParseTypes(t *testing.T) {
	src := `var a: int = 1
var b: [int] = [1]
var c: [str -> int] = ["x": 1]
var d: (int, str) = (1, "x")
var e: (x: int, y: str) = (x: 1, y: "x")
`
	mod, err := parser.Parse("test.pg", src)
	require.NoError(t, err)
	require.Len(t, mod.Exprs, 5)

	assert.Equal(t, "int", *mod.Exprs[0].Var.Type.Prim)
	assert.NotNil(t, mod.Exprs[1].Var.Type.List)
	assert.NotNil(t, mod.Exprs[2].Var.Type.Dict)
	assert.NotNil(t, mod.Exprs[3].Var.Type.Tuple)
	assert.NotNil(t, mod.Exprs[4].Var.Type.Struct)
}

func TestParseAccessForms(t *testing.T) {
	src := `var a = t.field
var b = t.0
var c = d[1]
`
	mod, err := parser.Parse("test.pg", src)
	require.NoError(t, err)
	require.Len(t, mod.Exprs, 3)

	ident := mod.Exprs[0].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Ident
	require.NotNil(t, ident)
	require.NotNil(t, ident.Dot)
	require.NotNil(t, ident.Dot.Member)
	assert.Equal(t, "field", *ident.Dot.Member)

	ident2 := mod.Exprs[1].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Ident
	require.NotNil(t, ident2)
	require.NotNil(t, ident2.Dot)
	require.NotNil(t, ident2.Dot.Index)
	assert.Equal(t, 0, *ident2.Dot.Index)

	ident3 := mod.Exprs[2].Var.Value.Left.Left.Cmp.Left.Left.Left.Left.Ident
	require.NotNil(t, ident3)
	require.NotNil(t, ident3.Bracket)
}

func TestResolvePathLeavesPlainPathUnchanged(t *testing.T) {
	resolved := parser.ResolvePath("a/b.pg")
	assert.Equal(t, "a/b.pg", resolved)
}
