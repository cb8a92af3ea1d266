// Package parser builds the concrete syntax tree: a participle/v2 grammar
// over the polyglot surface language (spec.md §6.3), with every node
// carrying its source span so the checker can diagnose by byte range.
package parser

import "github.com/alecthomas/participle/v2/lexer"

// Position is embedded (anonymously) by every CST node. participle
// auto-populates Pos/EndPos by field name, the way it does throughout the
// teacher's own grammars.
type Position struct {
	Pos    lexer.Position
	EndPos lexer.Position
}

func (p *Position) Position() lexer.Position    { return p.Pos }
func (p *Position) EndPosition() lexer.Position { return p.EndPos }

// Node is implemented by every CST struct via the embedded Position.
type Node interface {
	Position() lexer.Position
	EndPosition() lexer.Position
}

// Span returns the byte offsets of n.
func Span(n Node) (start, end int) {
	return n.Position().Offset, n.EndPosition().Offset
}

// Text returns the verbatim source slice covered by n.
func Text(src string, n Node) string {
	start, end := Span(n)
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	return src[start:end]
}

// Module is the root of the parse tree: an ordered sequence of top-level
// expressions.
type Module struct {
	Position
	Exprs []*TopExpr `parser:"@@*"`
}

// TopExpr dispatches on the keyword-led top-level forms, falling back to
// the identifier-led forms (assignment, compound assignment,
// list-remove-all, call). If/Use/Ret are parsed so well-formed-looking
// programs don't fail to parse, but the checker rejects all three as
// unimplemented (spec.md §9 / §12).
type TopExpr struct {
	Position
	Var     *VarStmt     `parser:"(  @@"`
	Typedef *TypedefStmt `parser:" | @@"`
	Fn      *FnStmt      `parser:" | @@"`
	If      *IfStmt      `parser:" | @@"`
	Use     *UseStmt     `parser:" | @@"`
	Ret     *RetStmt     `parser:" | @@"`
	Name    *NameStmt    `parser:" | @@ )"`
}

// IfStmt is `if COND { BODY } (else { BODY })?`. Unimplemented: see TopExpr.
type IfStmt struct {
	Position
	Cond *Value     `parser:"\"if\" @@"`
	Then []*TopExpr `parser:"\"{\" @@* \"}\""`
	Else []*TopExpr `parser:"(\"else\" \"{\" @@* \"}\")?"`
}

// UseStmt is `use "path"`. Unimplemented: see TopExpr.
type UseStmt struct {
	Position
	Path string `parser:"\"use\" @Str"`
}

// RetStmt is `ret [VALUE]`. Unimplemented: see TopExpr.
type RetStmt struct {
	Position
	Value *Value `parser:"\"ret\" @@?"`
}

// VarStmt covers both `var NAME : TYPE` and `var NAME [: TYPE] = VALUE`;
// the checker tells them apart by whether Value is nil.
type VarStmt struct {
	Position
	Name  string `parser:"\"var\" @Ident"`
	Type  *Type  `parser:"(\":\" @@)?"`
	Value *Value `parser:"(\"=\" @@)?"`
}

// TypedefStmt is `type NAME = TYPE`.
type TypedefStmt struct {
	Position
	Name string `parser:"\"type\" @Ident \"=\""`
	Type *Type  `parser:"@@"`
}

// Param is one `name: Type` function parameter.
type Param struct {
	Position
	Name string `parser:"@Ident \":\""`
	Type *Type  `parser:"@@"`
}

// FnStmt is `fn NAME(arg: T, …) [-> T] { EXPR* }`.
type FnStmt struct {
	Position
	Name   string     `parser:"\"fn\" @Ident \"(\""`
	Params []*Param   `parser:"(@@ (\",\" @@)*)? \")\""`
	Return *Type      `parser:"(\"->\" @@)?"`
	Body   []*TopExpr `parser:"\"{\" @@* \"}\""`
}

// NameStmt dispatches the four identifier-led top-level forms.
type NameStmt struct {
	Position
	Name   string       `parser:"@Ident"`
	Assig  *AssigTail   `parser:"(  @@"`
	OpAs   *OpAssigTail `parser:" | @@"`
	ListRm *ListRmTail  `parser:" | @@"`
	Call   *CallArgs    `parser:" | @@ )"`
}

// AssigTail is the `= VALUE` tail of `NAME = VALUE`.
type AssigTail struct {
	Position
	Value *Value `parser:"\"=\" @@"`
}

// OpAssigTail is the tail of a compound assignment `NAME <op>= VALUE`.
type OpAssigTail struct {
	Position
	Op    string `parser:"@(\"+=\" | \"-=\" | \"*=\" | \"/=\" | \"%=\" | \"**=\")"`
	Value *Value `parser:"@@"`
}

// ListRmTail is the tail of `NAME --= VALUE`.
type ListRmTail struct {
	Position
	Value *Value `parser:"\"--=\" @@"`
}

// CallArgs is the `(arg, …)` tail shared by call-statements and
// call-values.
type CallArgs struct {
	Position
	Args []*Value `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}
