// Package errdefs collects one diagnostic constructor per header in
// spec.md §7's error taxonomy, each building a span-annotated error the
// way the teacher's errdefs.WithXxx functions do.
package errdefs

import (
	"fmt"

	"github.com/polyglotc/pgc/ast"
	"github.com/polyglotc/pgc/diagnostic"
)

// --- Resolution ---

func WithUndefinedVariable(rng ast.Range, name string, suggestion string) error {
	msg := fmt.Sprintf("variable '%s' does not exist", name)
	opts := []diagnostic.Option{rng.Spanf(diagnostic.Primary, msg)}
	if suggestion != "" {
		opts = append(opts, rng.Spanf(diagnostic.Secondary, "did you mean '%s'?", suggestion))
	}
	return rng.WithError(fmt.Errorf(msg), opts...)
}

func WithInvalidListOrDict(rng ast.Range, name string) error {
	msg := fmt.Sprintf("accessed invalid list/dictionary '%s'", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithInvalidTupleOrStruct(rng ast.Range, name string) error {
	msg := fmt.Sprintf("accessed invalid tuple/struct '%s'", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithUndefinedFunction(rng ast.Range, name string, suggestion string) error {
	msg := fmt.Sprintf("call to non declared function '%s'", name)
	opts := []diagnostic.Option{rng.Spanf(diagnostic.Primary, msg)}
	if suggestion != "" {
		opts = append(opts, rng.Spanf(diagnostic.Secondary, "did you mean '%s'?", suggestion))
	}
	return rng.WithError(fmt.Errorf(msg), opts...)
}

func WithUndeclaredType(rng ast.Range, name string) error {
	msg := fmt.Sprintf("'%s' is not a declared type", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithRemoveFromNonexistentList(rng ast.Range, name string) error {
	msg := fmt.Sprintf("removing from inexistent list '%s'", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithAssignToUndeclaredVariable(rng ast.Range, name string) error {
	msg := "assignment to inexistent variable"
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

// --- Kind mismatch ---

func WithNotListOrDict(rng ast.Range, name string) error {
	msg := fmt.Sprintf("'%s' exists but is not a list/dictionary", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithTupleAccessedByMember(rng ast.Range, name string) error {
	msg := fmt.Sprintf("accessed tuple '%s' by member name — use index instead: '%s.0'", name, name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithStructAccessedByIndex(rng ast.Range, name string) error {
	msg := fmt.Sprintf("accessed struct '%s' by index — use a member name instead", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithListAccessedAsDict(rng ast.Range, name string) error {
	msg := fmt.Sprintf("accessing list '%s' as a dictionary", name)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

// --- Type mismatch ---

func WithWrongAssignmentType(rng ast.Range, expected, actual ast.Type) error {
	msg := fmt.Sprintf("wrong assignment type: expected '%s', found '%s'", expected.Display(), actual.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithWrongArgType(rng ast.Range, expected, actual ast.Type) error {
	msg := fmt.Sprintf("wrong argument type: expected '%s', found '%s'", expected.Display(), actual.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithWrongAccessType(rng ast.Range, expected, actual ast.Type) error {
	msg := fmt.Sprintf("wrong access type: expected %s found %s", expected.Display(), actual.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithWrongType(rng ast.Range, expected, actual ast.Type) error {
	msg := fmt.Sprintf("wrong type: expected '%s', found '%s'", expected.Display(), actual.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithWrongNegationType(rng ast.Range, actual ast.Type) error {
	msg := fmt.Sprintf("wrong negation type: expected 'bool', found '%s'", actual.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithComparingDifferentTypes(rng ast.Range, left, right ast.Type) error {
	msg := fmt.Sprintf("comparing values of different types: '%s' and '%s'", left.Display(), right.Display())
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

// --- Value constraints ---

func WithNegativeIndex(rng ast.Range, index int) error {
	msg := fmt.Sprintf("negative index %d", index)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithIndexOutOfBounds(rng ast.Range, index, length int) error {
	msg := fmt.Sprintf("index out of bounds: %d (length %d)", index, length)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithMemberNotExist(rng ast.Range, name, member string) error {
	msg := fmt.Sprintf("member '%s.%s' does not exist", name, member)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

// --- Context ---

func WithComparingTupleOrStruct(rng ast.Range) error {
	msg := "tuples/structs cannot be compared"
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithComparingVoid(rng ast.Range) error {
	msg := "trying to compare void expressions"
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithDuplicateFunction(rng ast.Range, name string, original ast.Range) error {
	msg := fmt.Sprintf("function '%s' with the same name is already defined", name)
	return rng.WithError(
		fmt.Errorf(msg),
		rng.Spanf(diagnostic.Primary, msg),
		original.Spanf(diagnostic.Secondary, "first defined here"),
	)
}

func WithListRemoveAllNotPermitted(rng ast.Range) error {
	msg := "operation not permitted: only use as an expression, 'name --= ...'"
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

// --- Supplemented (spec.md §9 / §12 additions) ---

func WithNumArgs(rng ast.Range, callee string, expected, actual int) error {
	msg := fmt.Sprintf("'%s' expected %d args, found %d", callee, expected, actual)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}

func WithUnimplemented(rng ast.Range, form string) error {
	msg := fmt.Sprintf("'%s' is not implemented", form)
	return rng.WithError(fmt.Errorf(msg), rng.Spanf(diagnostic.Primary, msg))
}
