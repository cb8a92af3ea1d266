// Package checker is the semantic analyzer: it consumes the parser
// package's concrete syntax tree and produces a checked *ast.Program,
// performing name resolution, type inference and equivalence checking,
// and well-formedness checking for operators, comparisons and access,
// emitting diagnostics as it goes (spec.md §2, §4).
package checker

import (
	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/parser"
)

// rng converts a parser CST node's span into an ast.Range — the node
// adapter capability of spec.md §4.1, collapsed to two calls since our
// own CST nodes already expose Position()/EndPosition() directly.
func rng(n parser.Node) ast.Range {
	return ast.Range{Start: n.Position(), End: n.EndPosition()}
}
