package checker

import "github.com/polyglotc/pgc/ast"
import "github.com/polyglotc/pgc/parser"

// Check drives spec.md §4.4's top-level loop: every top-level production
// is lowered strictly in source order against the shared scope, and
// diagnostics never abort the run — a failing expression lowers to
// Expr::Err and analysis continues with the next statement.
//
// The returned *ast.Program always holds one Expr per source production,
// including Err entries. The bool result reports overall success per
// spec.md §4.4's failure semantics: false once scope.Failed() is true,
// unless debug is set (debug mode still emits the artifact for
// inspection).
func Check(mod *parser.Module, src string, scope *ast.Scope, debug bool) (*ast.Program, bool) {
	prog := &ast.Program{Exprs: make([]ast.Expr, len(mod.Exprs))}
	for i, top := range mod.Exprs {
		prog.Exprs[i] = LowerTopExpr(top, src, scope)
	}
	ok := !scope.Failed() || debug
	return prog, ok
}
