// Package diagnostic renders ranged source annotations: the single-file,
// colorized excerpt view that backs every diagnostic the checker emits.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/logrusorgru/aurora"
)

// Severity distinguishes the primary cause of a diagnostic from secondary,
// supporting context.
type Severity int

const (
	Primary Severity = iota
	Secondary
)

// Span is one annotated excerpt of source: a byte range plus a message and
// a severity controlling how it is underlined and colored.
type Span struct {
	Message  string
	Severity Severity
	Start    lexer.Position
	End      lexer.Position
}

// Option mutates a SpanError being constructed; used to attach one or more
// Spans via Spanf.
type Option func(*SpanError)

// Spanf returns an Option appending a formatted Span to a SpanError.
func Spanf(severity Severity, start, end lexer.Position, format string, a ...interface{}) Option {
	msg := format
	if len(a) > 0 {
		msg = fmt.Sprintf(format, a...)
	}
	return func(e *SpanError) {
		e.Spans = append(e.Spans, Span{
			Message:  msg,
			Severity: severity,
			Start:    start,
			End:      end,
		})
	}
}

// SpanError is a diagnostic error anchored at a primary byte range, with any
// number of additional Span annotations layered on top.
type SpanError struct {
	Err   error
	Start lexer.Position
	End   lexer.Position
	Spans []Span
}

// WithError builds a *SpanError wrapping err, anchored at [start,end), with
// any additional annotations from opts applied in order.
func WithError(err error, start, end lexer.Position, opts ...Option) error {
	e := &SpanError{Err: err, Start: start, End: end}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *SpanError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if len(e.Spans) > 0 {
		return e.Spans[0].Message
	}
	return "diagnostic error"
}

func (e *SpanError) Unwrap() error {
	return e.Err
}

// Pretty renders a colored, annotated excerpt of src around e's primary
// range plus numContext lines of surrounding context, with one underline
// per Span.
func (e *SpanError) Pretty(src string, color bool, numContext int) string {
	au := aurora.NewAurora(color)
	lines := strings.Split(src, "\n")

	header := fmt.Sprintf("%s: %s", au.Bold(au.Red("error")), e.Error())

	primaryLine := e.Start.Line
	startLine := primaryLine - numContext
	if startLine < 1 {
		startLine = 1
	}
	endLine := primaryLine + numContext
	if endLine > len(lines) {
		endLine = len(lines)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", e.Start.Filename, e.Start.Line, e.Start.Column)

	gutter := len(fmt.Sprintf("%d", endLine))
	for ln := startLine; ln <= endLine; ln++ {
		text := ""
		if ln-1 < len(lines) {
			text = lines[ln-1]
		}
		fmt.Fprintf(&b, "%*d | %s\n", gutter, ln, text)
		for _, span := range e.Spans {
			if span.Start.Line != ln {
				continue
			}
			col := span.Start.Column
			width := span.End.Column - span.Start.Column
			if width < 1 {
				width = 1
			}
			underline := strings.Repeat(" ", col-1)
			marker := "^"
			paint := au.Red
			if span.Severity == Secondary {
				marker = "-"
				paint = au.Cyan
			}
			underline += strings.Repeat(marker, width)
			fmt.Fprintf(&b, "%*s | %s %s\n", gutter, "", paint(underline), span.Message)
		}
	}
	return b.String()
}
