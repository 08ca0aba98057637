// Package perrors is the diagnostic taxonomy and sink every typecheck
// handler reports through.
package perrors

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
)

// Kind is one of the four diagnostic categories the pass reports.
type Kind string

const (
	// TypeMismatch: operands incompatible with an operator or a
	// declared type.
	TypeMismatch Kind = "type mismatch"
	// ArityError: wrong number/naming of arguments in a call.
	ArityError Kind = "arity error"
	// DomainError: attribute applied to an invalid kind, forbidden
	// cast, integral width out of range, bit-concat overflow, a sized
	// array type used where only an unsized one is legal.
	DomainError Kind = "domain error"
	// ICE: an internal compiler error — an invariant the pass itself
	// violated, reported distinctly from user-facing diagnostics.
	ICE Kind = "internal compiler error"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Kind    Kind
	Message string
	Loc     ast.Location
	// Stack is populated only for ICE diagnostics, via pkg/errors.
	Stack error
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", d.Kind, d.Message)
	if d.Loc.File != "" || d.Loc.Line != 0 {
		fmt.Fprintf(&sb, " (at %s:%d:%d)", d.Loc.File, d.Loc.Line, d.Loc.Column)
	}
	return sb.String()
}

// Sink is the pluggable diagnostic output every pass reports through.
// It must never abort the process: the pass aggregates errors via a
// counter and keeps going so multiple diagnostics can be collected in
// one run.
type Sink interface {
	Report(d Diagnostic)
}

// CollectingSink appends every diagnostic it receives, in report order.
// Used by every test and by the demonstration CLI.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (s *CollectingSink) Report(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// Errorf reports a user-facing diagnostic of the given kind at loc.
func Errorf(sink Sink, kind Kind, loc ast.Location, format string, args ...any) {
	sink.Report(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// ICEf reports an internal compiler error: an unreachable switch arm
// reached, or an invariant the pass itself was supposed to maintain.
// The message is wrapped with pkg/errors so the diagnostic carries a
// captured stack trace — the one case in this module where that is
// worth the cost, since an ICE is a bug in the pass, not in the
// program being checked.
func ICEf(sink Sink, loc ast.Location, format string, args ...any) {
	err := pkgerrors.WithStack(fmt.Errorf(format, args...))
	sink.Report(Diagnostic{Kind: ICE, Message: err.Error(), Loc: loc, Stack: err})
}
