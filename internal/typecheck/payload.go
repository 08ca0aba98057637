// Package typecheck implements typify-1 (bottom-up type assignment and
// isa compile-time folding) and typify-2 (completeness and
// contextual validity) over the ast package's trees.
package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/perrors"
)

// Payload is the explicit context threaded through every call in this
// package — no module-level mutable state. Errors counts every
// diagnostic reported through Sink; a non-zero count at the end of a
// phase marks that phase failed, and typify-2 is skipped if typify-1
// failed.
type Payload struct {
	Sink   perrors.Sink
	Errors int
}

// NewPayload builds a Payload reporting through sink.
func NewPayload(sink perrors.Sink) *Payload {
	return &Payload{Sink: sink}
}

// Failed reports whether this payload has accumulated any diagnostic.
func (p *Payload) Failed() bool { return p.Errors > 0 }

func (p *Payload) typeMismatch(loc ast.Location, format string, args ...any) {
	p.Errors++
	perrors.Errorf(p.Sink, perrors.TypeMismatch, loc, format, args...)
}

func (p *Payload) arityError(loc ast.Location, format string, args ...any) {
	p.Errors++
	perrors.Errorf(p.Sink, perrors.ArityError, loc, format, args...)
}

func (p *Payload) domainError(loc ast.Location, format string, args ...any) {
	p.Errors++
	perrors.Errorf(p.Sink, perrors.DomainError, loc, format, args...)
}

func (p *Payload) ice(loc ast.Location, format string, args ...any) {
	p.Errors++
	perrors.ICEf(p.Sink, loc, format, args...)
}
