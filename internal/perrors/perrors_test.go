package perrors

import (
	"strings"
	"testing"

	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
)

func TestCollectingSinkAppendsInOrder(t *testing.T) {
	sink := &CollectingSink{}
	loc := ast.Location{File: "x.pkl", Line: 1}
	Errorf(sink, TypeMismatch, loc, "first")
	Errorf(sink, ArityError, loc, "second")

	if len(sink.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(sink.Diagnostics))
	}
	if sink.Diagnostics[0].Message != "first" || sink.Diagnostics[1].Message != "second" {
		t.Errorf("diagnostics out of order: %+v", sink.Diagnostics)
	}
}

func TestErrorfFormatsMessage(t *testing.T) {
	sink := &CollectingSink{}
	Errorf(sink, DomainError, ast.Location{}, "width %d out of range", 65)
	if got := sink.Diagnostics[0].Message; got != "width 65 out of range" {
		t.Errorf("got %q", got)
	}
	if sink.Diagnostics[0].Kind != DomainError {
		t.Errorf("got kind %q, want %q", sink.Diagnostics[0].Kind, DomainError)
	}
}

func TestICEfCapturesStack(t *testing.T) {
	sink := &CollectingSink{}
	ICEf(sink, ast.Location{File: "x.pkl", Line: 3}, "unreachable: %T", 0)

	d := sink.Diagnostics[0]
	if d.Kind != ICE {
		t.Errorf("got kind %q, want %q", d.Kind, ICE)
	}
	if d.Stack == nil {
		t.Error("ICE diagnostics should carry a captured stack")
	}
}

func TestDiagnosticStringIncludesLocation(t *testing.T) {
	d := Diagnostic{Kind: TypeMismatch, Message: "bad operand", Loc: ast.Location{File: "a.pkl", Line: 4, Column: 2}}
	got := d.String()
	if !strings.Contains(got, "bad operand") {
		t.Errorf("String() = %q, missing message", got)
	}
	if !strings.Contains(got, "a.pkl:4:2") {
		t.Errorf("String() = %q, missing location", got)
	}
}

func TestDiagnosticStringOmitsEmptyLocation(t *testing.T) {
	d := Diagnostic{Kind: TypeMismatch, Message: "bad operand"}
	got := d.String()
	if strings.Contains(got, "(at") {
		t.Errorf("String() = %q, should not render a location when none is set", got)
	}
}
