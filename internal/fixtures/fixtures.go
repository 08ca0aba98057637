// Package fixtures builds internal/ast trees directly with Go
// constructors, the way a hand-written recursive-descent parser would.
// There is no Poke lexer/parser in this repository (out of scope); the
// demonstration CLI and the typecheck package's tests both exercise the
// same named fixtures defined here.
package fixtures

import "github.com/timb-machine-mirrors/gnu-poke/internal/ast"

func loc(line int) ast.Location { return ast.Location{File: "fixture.pkl", Line: line} }

func sp(s string) *string { return &s }

func intType(line, size int, signed bool) *ast.IntegralTypeExpr {
	return &ast.IntegralTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}, Size: size, Signed: signed}
}

func stringType(line int) *ast.StringTypeExpr {
	return &ast.StringTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}}
}

func voidType(line int) *ast.VoidTypeExpr {
	return &ast.VoidTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}}
}

func anyType(line int) *ast.AnyTypeExpr {
	return &ast.AnyTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}}
}

func offsetType(line int, base ast.TypeExpr, unitBits int64, unitName string) *ast.OffsetTypeExpr {
	return &ast.OffsetTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}, Base: base, UnitBits: unitBits, UnitName: unitName}
}

func arrayType(line int, elem ast.TypeExpr, nelem ast.Expr) *ast.ArrayTypeExpr {
	return &ast.ArrayTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}, Elem: elem, NElem: nelem}
}

func intLit(line int, v int64) *ast.IntLiteral {
	return &ast.IntLiteral{BaseExpr: ast.BaseExpr{Location: loc(line)}, Value: v}
}

func strLit(line int, s string) *ast.StringLiteral {
	return &ast.StringLiteral{BaseExpr: ast.BaseExpr{Location: loc(line)}, Value: s}
}

func varRef(line int, name string, decl *ast.Decl) *ast.VarRef {
	return &ast.VarRef{BaseExpr: ast.BaseExpr{Location: loc(line)}, Name: name, Decl: decl}
}

func binary(line int, op ast.BinaryOp, l, r ast.Expr) *ast.Binary {
	return &ast.Binary{BaseExpr: ast.BaseExpr{Location: loc(line)}, Op: op, Left: l, Right: r}
}

func relational(line int, op ast.RelOp, l, r ast.Expr) *ast.Relational {
	return &ast.Relational{BaseExpr: ast.BaseExpr{Location: loc(line)}, Op: op, Left: l, Right: r}
}

func logical(line int, op ast.LogicalOp, l, r ast.Expr) *ast.Logical {
	return &ast.Logical{BaseExpr: ast.BaseExpr{Location: loc(line)}, Op: op, Left: l, Right: r}
}

func shift(line int, op ast.ShiftOp, l, r ast.Expr) *ast.Shift {
	return &ast.Shift{BaseExpr: ast.BaseExpr{Location: loc(line)}, Op: op, Left: l, Right: r}
}

func unary(line int, op ast.UnaryOp, operand ast.Expr) *ast.Unary {
	return &ast.Unary{BaseExpr: ast.BaseExpr{Location: loc(line)}, Op: op, Operand: operand}
}

func bitConcat(line int, l, r ast.Expr) *ast.BitConcat {
	return &ast.BitConcat{BaseExpr: ast.BaseExpr{Location: loc(line)}, Left: l, Right: r}
}

func castExpr(line int, operand ast.Expr, target ast.TypeExpr) *ast.CastExpr {
	return &ast.CastExpr{BaseExpr: ast.BaseExpr{Location: loc(line)}, Operand: operand, Target: target}
}

func offsetLit(line int, magnitude ast.Expr, unitBits int64, unitName string) *ast.OffsetLiteral {
	return &ast.OffsetLiteral{BaseExpr: ast.BaseExpr{Location: loc(line)}, Magnitude: magnitude, UnitBits: unitBits, UnitName: unitName}
}

func arrayLit(line int, elems ...ast.Expr) *ast.ArrayLiteral {
	return &ast.ArrayLiteral{BaseExpr: ast.BaseExpr{Location: loc(line)}, Elements: elems}
}

func sizeofExpr(line int, operand ast.Expr) *ast.SizeofExpr {
	return &ast.SizeofExpr{BaseExpr: ast.BaseExpr{Location: loc(line)}, Operand: operand}
}

func sizeofType(line int, target ast.TypeExpr) *ast.SizeofTypeExpr {
	return &ast.SizeofTypeExpr{BaseExpr: ast.BaseExpr{Location: loc(line)}, Target: target}
}

func indexer(line int, container, index ast.Expr) *ast.Indexer {
	return &ast.Indexer{BaseExpr: ast.BaseExpr{Location: loc(line)}, Container: container, Index: index}
}

func trimmer(line int, container, low, high ast.Expr) *ast.Trimmer {
	return &ast.Trimmer{BaseExpr: ast.BaseExpr{Location: loc(line)}, Container: container, Low: low, High: high}
}

func structElem(line int, name *string, value ast.Expr) *ast.StructElem {
	return &ast.StructElem{BaseExpr: ast.BaseExpr{Location: loc(line)}, Name: name, Value: value}
}

func structLit(line int, elems ...*ast.StructElem) *ast.StructLiteral {
	return &ast.StructLiteral{BaseExpr: ast.BaseExpr{Location: loc(line)}, Elems: elems}
}

func structCtor(line int, annotation ast.TypeExpr, elems ...*ast.StructElem) *ast.StructCtor {
	return &ast.StructCtor{BaseExpr: ast.BaseExpr{Location: loc(line)}, Annotation: annotation, Elems: elems}
}

func fieldAccess(line int, receiver ast.Expr, field string) *ast.FieldAccess {
	return &ast.FieldAccess{BaseExpr: ast.BaseExpr{Location: loc(line)}, Receiver: receiver, Field: field}
}

func attribute(line int, operand ast.Expr, name ast.Attr) *ast.Attribute {
	return &ast.Attribute{BaseExpr: ast.BaseExpr{Location: loc(line)}, Operand: operand, Name: name}
}

func mapExpr(line int, target ast.TypeExpr, offset ast.Expr) *ast.MapExpr {
	return &ast.MapExpr{BaseExpr: ast.BaseExpr{Location: loc(line)}, TargetType: target, Offset: offset}
}

func structType(line int, fields ...ast.FieldDecl) *ast.StructTypeExpr {
	return &ast.StructTypeExpr{BaseTypeExpr: ast.BaseTypeExpr{Location: loc(line)}, Fields: fields}
}

func printStmt(line int, e ast.Expr) *ast.PrintStmt {
	return &ast.PrintStmt{BaseStmt: ast.BaseStmt{Location: loc(line)}, Expr: e}
}

func raiseStmt(line int, e ast.Expr) *ast.RaiseStmt {
	return &ast.RaiseStmt{BaseStmt: ast.BaseStmt{Location: loc(line)}, Expr: e}
}

func returnStmt(line int, e ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{BaseStmt: ast.BaseStmt{Location: loc(line)}, Expr: e}
}

func exprStmt(line int, e ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{BaseStmt: ast.BaseStmt{Location: loc(line)}, Expr: e}
}

// varDecl builds a VarDeclStmt together with the Decl cell its VarRefs
// will share; init may be nil for a bare `T name;` declaration.
func varDecl(line int, name string, typ ast.TypeExpr, init ast.Expr) (*ast.VarDeclStmt, *ast.Decl) {
	decl := &ast.Decl{Name: name}
	return &ast.VarDeclStmt{BaseStmt: ast.BaseStmt{Location: loc(line)}, Decl: decl, Type: typ, Init: init}, decl
}

// registry maps a fixture name to the program it builds. Each call
// returns a fresh tree, so building the same fixture more than once
// never shares mutable state between the resulting trees.
var registry = map[string]func() *ast.Program{
	"simple_add":                simpleAdd,
	"promotion":                  promotion,
	"offset_sub":                 offsetSub,
	"named_args":                 namedArgs,
	"void_call_error":            voidCallError,
	"width_error":                widthError,
	"isa_fold":                   isaFold,
	"isa_static_true":            isaStaticTrue,
	"isa_static_false":           isaStaticFalse,
	"isa_runtime":                isaRuntime,
	"offset_add_units":           offsetAddUnits,
	"sized_array_in_funcarg":     sizedArrayInFuncArg,
	"relational_ok":              relationalOK,
	"logical_ok":                 logicalOK,
	"shift_ok":                   shiftOK,
	"bitwise_ok":                 bitwiseOK,
	"mul_div_mod_ok":             mulDivModOK,
	"bit_concat_overflow":        bitConcatOverflow,
	"bit_concat_boundary_ok":     bitConcatBoundaryOK,
	"cast_to_string_ok":          castToStringOK,
	"cast_to_string_error":       castToStringError,
	"array_literal_mismatch":     arrayLiteralMismatch,
	"indexer_ok":                 indexerOK,
	"indexer_bad_index":          indexerBadIndex,
	"trimmer_ok":                 trimmerOK,
	"struct_literal_ok":          structLiteralOK,
	"struct_ctor_ok":             structCtorOK,
	"struct_ctor_bad_annotation": structCtorBadAnnotation,
	"field_access_ok":            fieldAccessOK,
	"field_access_unknown":       fieldAccessUnknown,
	"sizeof_value_ok":            sizeofValueOK,
	"sizeof_type_complete":       sizeofTypeComplete,
	"sizeof_type_incomplete":     sizeofTypeIncomplete,
	"attribute_table_ok":         attributeTableOK,
	"attribute_invalid_operand":  attributeInvalidOperand,
	"map_ok":                     mapOK,
	"map_bad_offset":             mapBadOffset,
	"loop_for_in_ok":             loopForInOK,
	"loop_while_ok":              loopWhileOK,
	"loop_cond_not_bool32":       loopCondNotBool32,
	"try_catch_ok":               tryCatchOK,
	"print_ok":                   printOK,
	"raise_ok":                   raiseOK,
	"return_ok":                  returnOK,
	"funcall_too_few_args":       funcallTooFewArgs,
	"funcall_too_many_args":      funcallTooManyArgs,
	"funcall_vararg_ok":          funcallVarargOK,
	"funcall_named_vararg_ok":    funcallNamedVarargOK,
	"funcall_no_named_args":      funcallNoNamedArgs,
	"funcall_missing_required":   funcallMissingRequired,
}

// Names returns every registered fixture name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Build returns a fresh program for name, and whether name is registered.
func Build(name string) (*ast.Program, bool) {
	build, ok := registry[name]
	if !ok {
		return nil, false
	}
	return build(), true
}
