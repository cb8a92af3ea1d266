package ast

// ValueKind tags the closed set of checked value shapes (spec.md §3.3).
type ValueKind int

const (
	ValInt ValueKind = iota
	ValNum
	ValBool
	ValChar
	ValStr
	ValTuple
	ValStruct
	ValList
	ValDict
	ValVar
	ValTupleAccess
	ValListAccess
	ValOp
	ValCmp
	ValParenthesis
	ValCall
	ValErr
)

// StructValueField is one (name, value) member of a Struct literal, in
// insertion order.
type StructValueField struct {
	Name  string `yaml:"name"`
	Value Value  `yaml:"value"`
}

// DictEntry is one (key, value) pair of a Dict literal, in insertion order.
type DictEntry struct {
	Key   Value `yaml:"key"`
	Value Value `yaml:"value"`
}

// VarRef is a reference-by-name value, carrying the source range of the
// identifier it was parsed from.
type VarRef struct {
	Name  string `yaml:"name"`
	Range Range  `yaml:"-"`
}

// TupleAccessModeKind distinguishes the two ways to reach into a tuple or
// struct value.
type TupleAccessModeKind int

const (
	TupleAccessMember TupleAccessModeKind = iota
	TupleAccessIndex
)

// TupleAccessMode is Member(name) | Index(nonnegative integer).
type TupleAccessMode struct {
	Kind   TupleAccessModeKind `yaml:"kind"`
	Member string              `yaml:"member,omitempty"`
	Index  int                 `yaml:"index,omitempty"`
}

// TupleAccess resolves NAME.field or NAME.0 against a tuple/struct-typed
// variable. NameRange spans just the identifier; AccessRange spans the
// whole `name.field` expression.
type TupleAccess struct {
	Name        string          `yaml:"name"`
	Mode        TupleAccessMode `yaml:"mode"`
	NameRange   Range           `yaml:"-"`
	AccessRange Range           `yaml:"-"`
}

// ListAccessModeKind distinguishes list-index access from dict-key access.
type ListAccessModeKind int

const (
	ListAccessIndex ListAccessModeKind = iota
	ListAccessKey
)

// ListAccessMode is List(nonnegative integer index) | Dict(key value).
type ListAccessMode struct {
	Kind      ListAccessModeKind `yaml:"kind"`
	ListIndex int                `yaml:"list_index,omitempty"`
	DictKey   *Value             `yaml:"dict_key,omitempty"`
}

// ListAccess resolves NAME[k] against a list/dict-typed variable.
// ElementType is the declared element (List) or value (Dict) type.
type ListAccess struct {
	Name        string          `yaml:"name"`
	Mode        ListAccessMode  `yaml:"mode"`
	ElementType Type            `yaml:"element_type"`
	NameRange   Range           `yaml:"-"`
	AccessRange Range           `yaml:"-"`
}

// OpKind is an arity-2 operator, plus the synthetic ListRemoveAll produced
// only by the compound-assignment form `--=`.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpListRemoveAll
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpListRemoveAll:
		return "--="
	default:
		return "?"
	}
}

// Op is a binary operator value. Left/Right hold the two operands for
// Add..Pow. ListRemoveAll instead carries a bare target name (Target) and
// the element value being removed (Elem) — it is never wrapped in a Var
// the way compound-assignment's arithmetic forms are.
type Op struct {
	Kind   OpKind `yaml:"kind"`
	Range  Range  `yaml:"-"`
	Left   *Value `yaml:"left,omitempty"`
	Right  *Value `yaml:"right,omitempty"`
	Target string `yaml:"target,omitempty"`
	Elem   *Value `yaml:"elem,omitempty"`
}

// CmpKind is a comparison form.
type CmpKind int

const (
	CmpLess CmpKind = iota
	CmpGreater
	CmpLessEq
	CmpGreatEq
	CmpEqual
	CmpNotEq
	CmpNot
	CmpAnd
	CmpOr
	CmpErr
)

// Cmp is a comparison value. Not is unary (Right is nil); the rest are
// binary.
type Cmp struct {
	Kind  CmpKind `yaml:"kind"`
	Range Range   `yaml:"-"`
	Left  *Value  `yaml:"left,omitempty"`
	Right *Value  `yaml:"right,omitempty"`
}

// Call is a call used as a value: the callee name and its already-checked
// argument values.
type Call struct {
	Name string  `yaml:"name"`
	Args []Value `yaml:"args"`
}

// Value is the tagged union of spec.md §3.3: exactly one payload field is
// populated per Kind. Bool only ever carries a literal primitive — a
// comparison lowers to its own ValCmp rather than an embedded Bool, per
// the dispatch in spec.md §4.3 ("Bool literal or comparison. If the
// lexeme is `true` or `false`, produce Bool primitive; otherwise lower
// the wrapped comparison").
type Value struct {
	Kind ValueKind `yaml:"kind"`

	IntVal         int64              `yaml:"int,omitempty"`
	NumVal         float64            `yaml:"num,omitempty"`
	BoolVal        bool               `yaml:"bool,omitempty"`
	CharVal        byte               `yaml:"char,omitempty"`
	StrVal         string             `yaml:"str,omitempty"`
	TupleVal       []Value            `yaml:"tuple,omitempty"`
	StructVal      []StructValueField `yaml:"struct,omitempty"`
	ListVal        []Value            `yaml:"list,omitempty"`
	DictVal        []DictEntry        `yaml:"dict,omitempty"`
	VarVal         *VarRef            `yaml:"var,omitempty"`
	TupleAccessVal *TupleAccess       `yaml:"tuple_access,omitempty"`
	ListAccessVal  *ListAccess        `yaml:"list_access,omitempty"`
	OpVal          *Op                `yaml:"op,omitempty"`
	CmpVal         *Cmp               `yaml:"cmp,omitempty"`
	ParenVal       *Value             `yaml:"parenthesis,omitempty"`
	CallVal        *Call              `yaml:"call,omitempty"`
}

func ErrValue() Value { return Value{Kind: ValErr} }

func (v Value) IsErr() bool { return v.Kind == ValErr }
