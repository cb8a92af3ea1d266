package ast

import (
	"io"

	"github.com/polyglotc/pgc/diagnostic"
)

// Scope is the per-compilation mutable environment of spec.md §3.6: two
// maps keyed by name (variable types, function signatures) plus the
// source file's path and full text, carried for diagnostic rendering.
// Grounded on the teacher's parser.Scope / checker.Scope pair, collapsed
// into one type since this language has no nested lexical blocks beyond
// function bodies.
type Scope struct {
	Vars  map[string]Type
	Funcs map[string]FuncSig

	File string
	Text string

	out       io.Writer
	color     bool
	errored   bool
	diagCount int
}

// FuncSig is a function signature: return type plus ordered parameter
// types. Parameter names are not part of its identity (spec.md §3.5).
type FuncSig struct {
	Return Type
	Params []Type
}

// NewScope builds the root scope for one compilation unit.
func NewScope(file, text string, out io.Writer, color bool) *Scope {
	return &Scope{
		Vars:  map[string]Type{},
		Funcs: map[string]FuncSig{},
		File:  file,
		Text:  text,
		out:   out,
		color: color,
	}
}

// Fork implements the fork rule of spec.md §3.6: entering a function body
// gets a fresh variable table seeded only with the function's own
// parameters (outer locals are shadowed away) and a function table cloned
// from the parent, so sibling functions remain visible.
func (s *Scope) Fork(params []Param) *Scope {
	child := &Scope{
		Vars:  make(map[string]Type, len(params)),
		Funcs: make(map[string]FuncSig, len(s.Funcs)),
		File:  s.File,
		Text:  s.Text,
		out:   s.out,
		color: s.color,
	}
	for name, sig := range s.Funcs {
		child.Funcs[name] = sig
	}
	for _, p := range params {
		child.Vars[p.Name] = p.Type
	}
	return child
}

// Lookup returns the declared type of name and whether it was found.
func (s *Scope) Lookup(name string) (Type, bool) {
	t, ok := s.Vars[name]
	return t, ok
}

// Insert binds name to t in the variable table (used by Init, Decl,
// Typedef and, implicitly, Fork for parameters).
func (s *Scope) Insert(name string, t Type) {
	s.Vars[name] = t
}

// LookupFunc returns the signature of name and whether it was found.
func (s *Scope) LookupFunc(name string) (FuncSig, bool) {
	sig, ok := s.Funcs[name]
	return sig, ok
}

// InsertFunc registers a function signature, reporting false if name was
// already registered (spec.md §4.4's Fn duplicate check: the insert
// itself reports the collision so the caller can decide whether to keep
// parsing the duplicate's body without touching the table).
func (s *Scope) InsertFunc(name string, sig FuncSig) bool {
	if _, exists := s.Funcs[name]; exists {
		return false
	}
	s.Funcs[name] = sig
	return true
}

// VarNames returns the variable table's keys, used for "did you mean"
// suggestions on undefined-identifier diagnostics.
func (s *Scope) VarNames() []string {
	names := make([]string, 0, len(s.Vars))
	for name := range s.Vars {
		names = append(names, name)
	}
	return names
}

// FuncNames returns the function table's keys, used for "did you mean"
// suggestions on undefined-callee diagnostics.
func (s *Scope) FuncNames() []string {
	names := make([]string, 0, len(s.Funcs))
	for name := range s.Funcs {
		names = append(names, name)
	}
	return names
}

// Writer returns the diagnostic output stream.
func (s *Scope) Writer() io.Writer { return s.out }

// Color reports whether diagnostics should be rendered with ANSI color.
func (s *Scope) Color() bool { return s.color }

// Fail renders err to the scope's writer and marks the scope as having
// produced at least one diagnostic. It returns err unchanged so call sites
// can use it inline: `return ast.ErrValue(), scope.Fail(err)`.
func (s *Scope) Fail(err error) error {
	s.errored = true
	s.diagCount++
	diagnostic.Print(s.out, s.Text, err, s.color)
	return err
}

// Failed reports whether Fail has been called at least once during this
// compilation.
func (s *Scope) Failed() bool { return s.errored }

// DiagnosticCount reports how many times Fail has been called during this
// compilation, for run-summary logging.
func (s *Scope) DiagnosticCount() int { return s.diagCount }
