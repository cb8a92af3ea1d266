package parser

// Value is the entry point of the value grammar: the lowest-precedence
// level (logical or). The chain below implements standard precedence
// climbing without left recursion, the idiomatic participle pattern for
// binary operator grammars: each level holds a Left operand and a
// zero-or-more Rest of (operator, operand) continuations.
type Value struct {
	Position
	Left *AndExpr   `parser:"@@"`
	Rest []*AndExpr `parser:"(\"||\" @@)*"`
}

type AndExpr struct {
	Position
	Left *NotExpr   `parser:"@@"`
	Rest []*NotExpr `parser:"(\"&&\" @@)*"`
}

// NotExpr is a comparison optionally prefixed by logical not.
type NotExpr struct {
	Position
	Bang bool     `parser:"@\"!\"?"`
	Cmp  *CmpExpr `parser:"@@"`
}

// CmpExpr is a non-chaining binary comparison: at most one relational
// operator per level (`a < b < c` is not a single comparison).
type CmpExpr struct {
	Position
	Left *Sum     `parser:"@@"`
	Tail *CmpTail `parser:"@@?"`
}

type CmpTail struct {
	Position
	Op    string `parser:"@(\"<=\" | \">=\" | \"==\" | \"!=\" | \"<\" | \">\")"`
	Right *Sum   `parser:"@@"`
}

type Sum struct {
	Position
	Left *Product   `parser:"@@"`
	Rest []*SumRHS  `parser:"@@*"`
}

type SumRHS struct {
	Position
	Op    string   `parser:"@(\"+\" | \"-\")"`
	Right *Product `parser:"@@"`
}

type Product struct {
	Position
	Left *Power        `parser:"@@"`
	Rest []*ProductRHS `parser:"@@*"`
}

type ProductRHS struct {
	Position
	Op    string `parser:"@(\"*\" | \"/\" | \"%\")"`
	Right *Power `parser:"@@"`
}

// Power is right-associative exponentiation, binding tighter than the
// other arithmetic operators. spec.md §3.3 lists only the arity-2
// operators (no unary minus), so this grammar has no unary level.
type Power struct {
	Position
	Left  *Atom   `parser:"@@"`
	Right []*Atom `parser:"(\"**\" @@)*"`
}

// Atom is the grammar's leaf level: literals, composite literals,
// parenthesized sub-values, and identifier-led forms (variable
// reference, tuple/struct access, list/dict access, call).
type Atom struct {
	Position
	Num    *float64   `parser:"(  @Num"`
	Int    *int64     `parser:" | @Int"`
	Bool   *string    `parser:" | @Bool"`
	Char   *string    `parser:" | @Char"`
	Str    *string    `parser:" | @Str"`
	Struct *StructLit `parser:" | @@"`
	Tuple  *TupleLit  `parser:" | @@"`
	Dict   *DictLit   `parser:" | @@"`
	List   *ListLit   `parser:" | @@"`
	Paren  *ParenLit  `parser:" | @@"`
	Ident  *IdentExpr `parser:" | @@ )"`
}

// ParenLit is a value wrapped in redundant parentheses, `(VALUE)` with no
// comma — distinct from TupleLit, which always contains at least one
// comma.
type ParenLit struct {
	Position
	Inner *Value `parser:"\"(\" @@ \")\""`
}

// StructLit is `(name: value, …)`, tried before TupleLit so the leading
// `name:` is consumed unambiguously.
type StructLit struct {
	Position
	Fields []*StructLitField `parser:"\"(\" @@ (\",\" @@)* \",\"? \")\""`
}

type StructLitField struct {
	Position
	Name  string `parser:"@Ident \":\""`
	Value *Value `parser:"@@"`
}

// TupleLit is `(v1, v2, …)`, requiring at least one comma (and so at
// least one `,` even for a single-element tuple literal `(v,)`) so it
// never collides with ParenLit.
type TupleLit struct {
	Position
	First *Value   `parser:"\"(\" @@ \",\""`
	Rest  []*Value `parser:"(@@ (\",\" @@)* \",\"?)? \")\""`
}

// Elems returns the tuple's elements in source order.
func (t *TupleLit) Elems() []*Value {
	return append([]*Value{t.First}, t.Rest...)
}

// DictLit is `[k1: v1, k2: v2, …]`, tried before ListLit so the colon is
// consumed unambiguously.
type DictLit struct {
	Position
	Entries []*DictLitEntry `parser:"\"[\" @@ (\",\" @@)* \",\"? \"]\""`
}

type DictLitEntry struct {
	Position
	Key   *Value `parser:"@@ \":\""`
	Value *Value `parser:"@@"`
}

// ListLit is `[v1, v2, …]`, possibly empty.
type ListLit struct {
	Position
	Elems []*Value `parser:"\"[\" (@@ (\",\" @@)* \",\"?)? \"]\""`
}

// IdentExpr is an identifier-led value: a bare variable reference, or one
// followed by a dot/bracket access, a call's argument list, a module
// access, or a type conversion. ModAccess/AsType are unimplemented: parsed
// so well-formed-looking programs don't fail to parse, but rejected by
// the checker (spec.md §9 / §12).
type IdentExpr struct {
	Position
	Name    string         `parser:"@Ident"`
	Dot     *DotAccess     `parser:"(  @@"`
	Bracket *BracketAccess `parser:" | @@"`
	Call    *CallArgs      `parser:" | @@"`
	Mod     *ModAccessTail `parser:" | @@"`
	As      *AsTypeTail    `parser:" | @@ )?"`
}

// ModAccessTail is `::item`, a module access.
type ModAccessTail struct {
	Position
	Item string `parser:"\"::\" @Ident"`
}

// AsTypeTail is `as TYPE`, a type conversion.
type AsTypeTail struct {
	Position
	Type *Type `parser:"\"as\" @@"`
}

// DotAccess is `.field` or `.0`, the two TupleAccessMode forms.
type DotAccess struct {
	Position
	Member *string `parser:"\".\" ( @Ident"`
	Index  *int    `parser:"       | @Int )"`
}

// BracketAccess is `[key]`, the ListAccessMode form (list index or dict
// key — the checker decides which from the declared container type).
type BracketAccess struct {
	Position
	Key *Value `parser:"\"[\" @@ \"]\""`
}
