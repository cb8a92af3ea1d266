// Package ast defines the checked-tree data model: the tagged unions for
// expressions, values and types, the lexical scope, and the type system
// operations over them.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/polyglotc/pgc/diagnostic"
)

// Range is a half-open byte interval [Start,End) into the original source
// text. Ranges on checked nodes must be preserved verbatim from the parse
// tree; synthetic ranges for composite access widen the inner range.
type Range struct {
	Start lexer.Position
	End   lexer.Position
}

// Spanf builds a diagnostic annotation option anchored at r.
func (r Range) Spanf(severity diagnostic.Severity, format string, a ...interface{}) diagnostic.Option {
	return diagnostic.Spanf(severity, r.Start, r.End, format, a...)
}

// WithError wraps err into a span-annotated diagnostic error anchored at r,
// plus any secondary annotations supplied in opts.
func (r Range) WithError(err error, opts ...diagnostic.Option) error {
	return diagnostic.WithError(err, r.Start, r.End, opts...)
}
