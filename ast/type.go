package ast

import (
	"sort"
	"strings"
)

// TypeKind tags the closed set of type shapes (spec.md §3.4).
type TypeKind int

const (
	KindInt TypeKind = iota
	KindNum
	KindBool
	KindChar
	KindStr
	KindTuple
	KindStruct
	KindList
	KindDict
	KindVoid
	KindCustom
	KindErr
)

func (k TypeKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindNum:
		return "num"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindStr:
		return "str"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindVoid:
		return "void"
	case KindCustom:
		return "custom"
	case KindErr:
		return "error"
	default:
		return "unknown"
	}
}

// StructField is one (name, type) member of a Struct type, in source order.
type StructField struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
}

// Type is the tagged union of spec.md §3.4: exactly one payload field is
// populated per Kind, mirroring the variant-record style the parser CST
// itself uses for its own productions.
type Type struct {
	Kind TypeKind `yaml:"kind"`

	Elems  []Type        `yaml:"elems,omitempty"`  // Tuple
	Fields []StructField `yaml:"fields,omitempty"`  // Struct
	Elem   *Type         `yaml:"elem,omitempty"`    // List
	Key    *Type         `yaml:"key,omitempty"`     // Dict
	Value  *Type         `yaml:"value,omitempty"`   // Dict
	Name   string        `yaml:"name,omitempty"`    // Custom
}

func Int() Type    { return Type{Kind: KindInt} }
func Num() Type    { return Type{Kind: KindNum} }
func Bool() Type   { return Type{Kind: KindBool} }
func Char() Type   { return Type{Kind: KindChar} }
func Str() Type    { return Type{Kind: KindStr} }
func Void() Type   { return Type{Kind: KindVoid} }
func ErrType() Type { return Type{Kind: KindErr} }

func Tuple(elems ...Type) Type { return Type{Kind: KindTuple, Elems: elems} }
func Struct(fields ...StructField) Type {
	return Type{Kind: KindStruct, Fields: fields}
}
func List(elem Type) Type         { return Type{Kind: KindList, Elem: &elem} }
func Dict(key, value Type) Type   { return Type{Kind: KindDict, Key: &key, Value: &value} }
func Custom(name string) Type     { return Type{Kind: KindCustom, Name: name} }

func (t Type) IsErr() bool { return t.Kind == KindErr }

// Equal implements the equivalence rules of spec.md §3.4: structural
// equality, Struct≡Tuple prefix match in either direction, and Int≡Num
// numeric widening in either direction. Err is unequal to everything,
// including another Err.
func (a Type) Equal(b Type) bool {
	if a.Kind == KindErr || b.Kind == KindErr {
		return false
	}
	if a.Kind == b.Kind {
		switch a.Kind {
		case KindTuple:
			return equalTypeSlice(a.Elems, b.Elems)
		case KindStruct:
			return equalFields(a.Fields, b.Fields)
		case KindList:
			return a.Elem.Equal(*b.Elem)
		case KindDict:
			return a.Key.Equal(*b.Key) && a.Value.Equal(*b.Value)
		case KindCustom:
			return a.Name == b.Name
		default:
			return true
		}
	}
	if a.Kind == KindInt && b.Kind == KindNum || a.Kind == KindNum && b.Kind == KindInt {
		return true
	}
	if a.Kind == KindStruct && b.Kind == KindTuple {
		return structTuplePrefixMatch(a.Fields, b.Elems)
	}
	if a.Kind == KindTuple && b.Kind == KindStruct {
		return structTuplePrefixMatch(b.Fields, a.Elems)
	}
	return false
}

func equalTypeSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b []StructField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].Type.Equal(b[i].Type) {
			return false
		}
	}
	return true
}

// structTuplePrefixMatch reports whether a struct's field types equal a
// tuple's element types in order (the struct is compatible with the tuple
// of its field types).
func structTuplePrefixMatch(fields []StructField, elems []Type) bool {
	if len(fields) != len(elems) {
		return false
	}
	for i := range fields {
		if !fields[i].Type.Equal(elems[i]) {
			return false
		}
	}
	return true
}

// Less defines an order over types: lexicographic on tag then on payload.
// CanonicalField does not use it; it sorts struct members by name.
func (a Type) Less(b Type) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case KindCustom:
		return a.Name < b.Name
	case KindTuple:
		return lessTypeSlice(a.Elems, b.Elems)
	case KindStruct:
		return lessFields(a.Fields, b.Fields)
	case KindList:
		return a.Elem.Less(*b.Elem)
	case KindDict:
		if !a.Key.Equal(*b.Key) {
			return a.Key.Less(*b.Key)
		}
		return a.Value.Less(*b.Value)
	default:
		return false
	}
}

func lessTypeSlice(a, b []Type) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Less(b[i]) {
			return true
		}
		if b[i].Less(a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

func lessFields(a, b []StructField) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Name != b[i].Name {
			return a[i].Name < b[i].Name
		}
		if a[i].Type.Less(b[i].Type) {
			return true
		}
		if b[i].Type.Less(a[i].Type) {
			return false
		}
	}
	return len(a) < len(b)
}

// Display renders a type the way spec.md §4.2 prescribes: int/num/bool/
// char/str/void, (T, …) for tuples, (name: T, …) for structs, [T] for
// lists, [K -> V] for dicts, the verbatim name for Custom, "error" for Err.
func (t Type) Display() string {
	switch t.Kind {
	case KindInt, KindNum, KindBool, KindChar, KindStr, KindVoid, KindErr:
		return t.Kind.String()
	case KindCustom:
		return t.Name
	case KindTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.Display()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindStruct:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Name + ": " + f.Type.Display()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindList:
		return "[" + t.Elem.Display() + "]"
	case KindDict:
		return "[" + t.Key.Display() + " -> " + t.Value.Display() + "]"
	default:
		return "?"
	}
}

func (t Type) String() string { return t.Display() }

// CanonicalField finds the first field matching name by sorting a cloned
// copy of fields by name and binary-searching, mirroring the original
// implementation's sort+binary-search member lookup (spec.md §9). The
// returned order is never observable: the type's own Fields slice, used
// for serialization, is untouched.
func CanonicalField(fields []StructField, name string) (StructField, bool) {
	clone := make([]StructField, len(fields))
	copy(clone, fields)
	sort.Slice(clone, func(i, j int) bool { return clone[i].Name < clone[j].Name })
	i := sort.Search(len(clone), func(i int) bool { return clone[i].Name >= name })
	if i < len(clone) && clone[i].Name == name {
		return clone[i], true
	}
	return StructField{}, false
}
