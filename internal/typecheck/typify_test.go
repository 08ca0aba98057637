package typecheck_test

import (
	"testing"

	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/fixtures"
	"github.com/timb-machine-mirrors/gnu-poke/internal/perrors"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
	"github.com/timb-machine-mirrors/gnu-poke/internal/typecheck"
)

// run builds fixture name, runs both passes, and returns the program
// together with every diagnostic collected.
func run(t *testing.T, name string) (*ast.Program, []perrors.Diagnostic) {
	t.Helper()
	program, ok := fixtures.Build(name)
	if !ok {
		t.Fatalf("no such fixture %q", name)
	}
	sink := &perrors.CollectingSink{}
	payload := typecheck.NewPayload(sink)
	typecheck.Typify1(program, payload)
	typecheck.Typify2(program, payload)
	return program, sink.Diagnostics
}

func lastExprType(t *testing.T, program *ast.Program) ptype.Type {
	t.Helper()
	last := program.Stmts[len(program.Stmts)-1]
	es, ok := last.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("last statement is %T, want *ast.ExprStmt", last)
	}
	return es.Expr.Type()
}

func TestLiteralScenariosAcceptedCases(t *testing.T) {
	tests := []struct {
		name     string
		fixture  string
		wantType ptype.Type
	}{
		{"simple integer addition", "simple_add", ptype.MustIntegral(32, true)},
		{"unsigned promotion is contagious", "promotion", ptype.MustIntegral(16, false)},
		{"offset subtraction keeps the base width", "offset_sub", ptype.Offset{Base: ptype.MustIntegral(32, false), Unit: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			program, diags := run(t, test.fixture)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			got := lastExprType(t, program)
			if !ptype.Equal(got, test.wantType) {
				t.Errorf("got type %s, want %s", got, test.wantType)
			}
		})
	}
}

func TestNamedArgumentsReorderedAndAccepted(t *testing.T) {
	program, diags := run(t, "named_args")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	call := program.Stmts[1].(*ast.ExprStmt).Expr.(*ast.FuncCall)
	if len(call.Args) != 2 {
		t.Fatalf("got %d reordered arguments, want 2", len(call.Args))
	}
	if name := *call.Args[0].Name; name != "a" {
		t.Errorf("first reordered argument is %q, want \"a\"", name)
	}
	if name := *call.Args[1].Name; name != "c" {
		t.Errorf("second reordered argument is %q, want \"c\"", name)
	}
}

func TestVoidCallInExpressionContextIsAnError(t *testing.T) {
	_, diags := run(t, "void_call_error")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for calling a void function inside an expression")
	}
	if diags[0].Kind != perrors.TypeMismatch {
		t.Errorf("got kind %q, want %q", diags[0].Kind, perrors.TypeMismatch)
	}
}

func TestIntegralWidthOutOfRangeIsADomainError(t *testing.T) {
	_, diags := run(t, "width_error")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for uint<65>")
	}
	if diags[0].Kind != perrors.DomainError {
		t.Errorf("got kind %q, want %q", diags[0].Kind, perrors.DomainError)
	}
}

func TestIsaAnyFoldsToTrueLiteral(t *testing.T) {
	program, diags := run(t, "isa_fold")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	es := program.Stmts[0].(*ast.ExprStmt)
	lit, ok := es.Expr.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("isa-any did not fold: got %T", es.Expr)
	}
	if lit.Value != 1 {
		t.Errorf("folded value = %d, want 1", lit.Value)
	}
}

func TestIsaStaticComparisonFoldsToLiteral(t *testing.T) {
	tests := []struct {
		fixture string
		want    int64
	}{
		{"isa_static_true", 1},
		{"isa_static_false", 0},
	}
	for _, test := range tests {
		t.Run(test.fixture, func(t *testing.T) {
			program, diags := run(t, test.fixture)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			es := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt)
			lit, ok := es.Expr.(*ast.IntLiteral)
			if !ok {
				t.Fatalf("static isa did not fold: got %T", es.Expr)
			}
			if lit.Value != test.want {
				t.Errorf("folded value = %d, want %d", lit.Value, test.want)
			}
		})
	}
}

func TestIsaOnAnyOperandIsLeftForRuntime(t *testing.T) {
	program, diags := run(t, "isa_runtime")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	es := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt)
	isa, ok := es.Expr.(*ast.IsaExpr)
	if !ok {
		t.Fatalf("isa on an any-typed operand should keep its shape, got %T", es.Expr)
	}
	if !ptype.Equal(isa.Type(), ptype.MustIntegral(32, true)) {
		t.Errorf("isa type = %s, want int<32>", isa.Type())
	}
}

func TestOffsetAdditionUsesCommonUnit(t *testing.T) {
	program, diags := run(t, "offset_add_units")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	got := lastExprType(t, program)
	want := ptype.Offset{Base: ptype.MustIntegral(32, false), Unit: 1}
	if !ptype.Equal(got, want) {
		t.Errorf("got type %s, want %s", got, want)
	}
}

func TestTypify1IsIdempotentOnAcceptedPrograms(t *testing.T) {
	// Running typify-1 a second time over an already-annotated tree
	// must leave the same type attributes behind and report nothing
	// new; the isa rewrites reach a fixed point after one run.
	for _, fixture := range []string{"promotion", "offset_sub", "isa_fold"} {
		program, ok := fixtures.Build(fixture)
		if !ok {
			t.Fatalf("no such fixture %q", fixture)
		}
		sink := &perrors.CollectingSink{}
		payload := typecheck.NewPayload(sink)
		typecheck.Typify1(program, payload)
		if len(sink.Diagnostics) != 0 {
			t.Fatalf("%s: unexpected diagnostics: %v", fixture, sink.Diagnostics)
		}
		first := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt).Expr.Type()

		typecheck.Typify1(program, payload)
		if len(sink.Diagnostics) != 0 {
			t.Fatalf("%s: second run reported diagnostics: %v", fixture, sink.Diagnostics)
		}
		second := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt).Expr.Type()
		if !ptype.Equal(first, second) {
			t.Errorf("%s: type changed across runs: %s then %s", fixture, first, second)
		}
	}
}

func TestSizedArrayForbiddenAsFunctionArgument(t *testing.T) {
	_, diags := run(t, "sized_array_in_funcarg")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a sized array function-argument type")
	}
	if diags[0].Kind != perrors.DomainError {
		t.Errorf("got kind %q, want %q", diags[0].Kind, perrors.DomainError)
	}
}

func TestSizeofAlwaysYieldsBitsOffset(t *testing.T) {
	want := ptype.Offset{Base: ptype.MustIntegral(64, false), Unit: 1}
	for _, fixture := range []string{"sizeof_value_ok", "sizeof_type_complete"} {
		program, diags := run(t, fixture)
		if len(diags) != 0 {
			t.Fatalf("%s: unexpected diagnostics: %v", fixture, diags)
		}
		got := lastExprType(t, program)
		if !ptype.Equal(got, want) {
			t.Errorf("%s: got type %s, want %s", fixture, got, want)
		}
	}
}

func TestSizeofTypeCompleteness(t *testing.T) {
	tests := []struct {
		fixture      string
		wantComplete bool
	}{
		{"sizeof_type_complete", true},
		{"sizeof_type_incomplete", false},
	}
	for _, test := range tests {
		t.Run(test.fixture, func(t *testing.T) {
			program, diags := run(t, test.fixture)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			last := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt)
			sz := last.Expr.(*ast.SizeofTypeExpr)
			arr, ok := sz.Target.Resolved().(ptype.Array)
			if !ok {
				t.Fatalf("operand type resolved to %T, want ptype.Array", sz.Target.Resolved())
			}
			if arr.Complete != test.wantComplete {
				t.Errorf("operand array Complete = %v, want %v", arr.Complete, test.wantComplete)
			}
		})
	}
}

func TestTypify2SkippedWhenTypify1Failed(t *testing.T) {
	program, ok := fixtures.Build("width_error")
	if !ok {
		t.Fatal("no such fixture")
	}
	sink := &perrors.CollectingSink{}
	payload := typecheck.NewPayload(sink)
	typecheck.Typify1(program, payload)
	before := len(sink.Diagnostics)
	typecheck.Typify2(program, payload)
	if len(sink.Diagnostics) != before {
		t.Errorf("typify-2 should be a no-op after typify-1 failed, got %d new diagnostics", len(sink.Diagnostics)-before)
	}
}

func TestBareVarDeclWithoutInitializer(t *testing.T) {
	decl := &ast.VarDeclStmt{
		Decl: &ast.Decl{Name: "a"},
		Type: &ast.IntegralTypeExpr{Size: 16, Signed: false},
	}
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	sink := &perrors.CollectingSink{}
	payload := typecheck.NewPayload(sink)
	typecheck.Typify1(program, payload)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics for a bare declaration with a type annotation: %v", sink.Diagnostics)
	}
	if decl.Decl.Typ == nil {
		t.Fatal("Decl.Typ should be inferred from the declared type")
	}
	if !ptype.Equal(decl.Decl.Typ, ptype.MustIntegral(16, false)) {
		t.Errorf("got %s, want uint<16>", decl.Decl.Typ)
	}
}

func TestFixturesAreIndependentAcrossRuns(t *testing.T) {
	// Running the same fixture twice must not leak mutated state between
	// the two trees: each Build call returns a fresh program.
	_, diagsFirst := run(t, "promotion")
	_, diagsSecond := run(t, "promotion")
	if len(diagsFirst) != 0 || len(diagsSecond) != 0 {
		t.Fatalf("unexpected diagnostics: %v / %v", diagsFirst, diagsSecond)
	}
}
