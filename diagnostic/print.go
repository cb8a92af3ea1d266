package diagnostic

import (
	"errors"
	"fmt"
	"io"
)

// Print renders err to w. If err wraps a *SpanError it is rendered as a
// colored, annotated source excerpt; otherwise its plain message is
// written. Print is the sole place diagnostics reach stderr, matching the
// rule that emission itself is never suppressible.
func Print(w io.Writer, src string, err error, color bool) {
	var span *SpanError
	if errors.As(err, &span) {
		fmt.Fprintln(w, span.Pretty(src, color, 2))
		return
	}
	fmt.Fprintf(w, "error: %s\n", err.Error())
}
