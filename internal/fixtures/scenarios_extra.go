package fixtures

import "github.com/timb-machine-mirrors/gnu-poke/internal/ast"

// relationalOK is `1 == 2`, accepted with the canonical Bool32 result
// type regardless of the comparison's runtime outcome.
func relationalOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, relational(1, ast.RelEq, intLit(1, 1), intLit(1, 2))),
	}}
}

// logicalOK is `1 && 2`; typify-1 defers operand validation, so any
// operand types are accepted here.
func logicalOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, logical(1, ast.LogAnd, intLit(1, 1), intLit(1, 2))),
	}}
}

// shiftOK is `a << 1`; the result type is the shifted (left) operand's
// own type, not a promoted one.
func shiftOK() *ast.Program {
	aStmt, aDecl := varDecl(1, "a", intType(1, 16, false), nil)
	sh := exprStmt(2, shift(2, ast.ShiftLeft, varRef(2, "a", aDecl), intLit(2, 1)))
	return &ast.Program{Stmts: []ast.Stmt{aStmt, sh}}
}

// bitwiseOK exercises '|', '^' and '&' over integral operands.
func bitwiseOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, binary(1, ast.OpBitOr, intLit(1, 1), intLit(1, 2))),
		exprStmt(2, binary(2, ast.OpBitXor, intLit(2, 1), intLit(2, 2))),
		exprStmt(3, binary(3, ast.OpBitAnd, intLit(3, 1), intLit(3, 2))),
	}}
}

// mulDivModOK exercises '*', '/' and '%' over integral operands.
func mulDivModOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, binary(1, ast.OpMul, intLit(1, 6), intLit(1, 7))),
		exprStmt(2, binary(2, ast.OpDiv, intLit(2, 6), intLit(2, 7))),
		exprStmt(3, binary(3, ast.OpMod, intLit(3, 6), intLit(3, 7))),
	}}
}

// bitConcatOverflow is `a :: b` for `uint<33> a; uint<32> b`: the
// concatenated width (65) exceeds the 64-bit limit, a domain error.
func bitConcatOverflow() *ast.Program {
	aStmt, aDecl := varDecl(1, "a", intType(1, 33, false), nil)
	bStmt, bDecl := varDecl(2, "b", intType(2, 32, false), nil)
	concat := exprStmt(3, bitConcat(3, varRef(3, "a", aDecl), varRef(3, "b", bDecl)))
	return &ast.Program{Stmts: []ast.Stmt{aStmt, bStmt, concat}}
}

// bitConcatBoundaryOK is `a :: b` for two uint<32> operands: the
// concatenated width (64) sits exactly at the limit and is accepted.
func bitConcatBoundaryOK() *ast.Program {
	aStmt, aDecl := varDecl(1, "a", intType(1, 32, false), nil)
	bStmt, bDecl := varDecl(2, "b", intType(2, 32, false), nil)
	concat := exprStmt(3, bitConcat(3, varRef(3, "a", aDecl), varRef(3, "b", bDecl)))
	return &ast.Program{Stmts: []ast.Stmt{aStmt, bStmt, concat}}
}

// castToStringOK is `(string) c` for `uint<8> c`: the one integral
// shape a cast-to-string accepts.
func castToStringOK() *ast.Program {
	cStmt, cDecl := varDecl(1, "c", intType(1, 8, false), nil)
	cast := exprStmt(2, castExpr(2, varRef(2, "c", cDecl), stringType(2)))
	return &ast.Program{Stmts: []ast.Stmt{cStmt, cast}}
}

// castToStringError is `(string) c` for `int<8> c`: signed, so it
// crosses the uint<8>-only boundary a cast-to-string requires.
func castToStringError() *ast.Program {
	cStmt, cDecl := varDecl(1, "c", intType(1, 8, true), nil)
	cast := exprStmt(2, castExpr(2, varRef(2, "c", cDecl), stringType(2)))
	return &ast.Program{Stmts: []ast.Stmt{cStmt, cast}}
}

// arrayLiteralMismatch is `[1, "x"]`: elements of different types.
func arrayLiteralMismatch() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, arrayLit(1, intLit(1, 1), strLit(1, "x"))),
	}}
}

// indexerOK is `arr[0]` for `int<8>[] arr`.
func indexerOK() *ast.Program {
	arrStmt, arrDecl := varDecl(1, "arr", arrayType(1, intType(1, 8, true), nil), nil)
	idx := exprStmt(2, indexer(2, varRef(2, "arr", arrDecl), intLit(2, 0)))
	return &ast.Program{Stmts: []ast.Stmt{arrStmt, idx}}
}

// indexerBadIndex is `arr["x"]`: a string index isn't integral.
func indexerBadIndex() *ast.Program {
	arrStmt, arrDecl := varDecl(1, "arr", arrayType(1, intType(1, 8, true), nil), nil)
	idx := exprStmt(2, indexer(2, varRef(2, "arr", arrDecl), strLit(2, "x")))
	return &ast.Program{Stmts: []ast.Stmt{arrStmt, idx}}
}

// trimmerOK is `s[0:2]` for `string s`.
func trimmerOK() *ast.Program {
	sStmt, sDecl := varDecl(1, "s", stringType(1), nil)
	trim := exprStmt(2, trimmer(2, varRef(2, "s", sDecl), intLit(2, 0), intLit(2, 2)))
	return &ast.Program{Stmts: []ast.Stmt{sStmt, trim}}
}

// structLiteralOK is `{ a = 1, b = "x" }`.
func structLiteralOK() *ast.Program {
	lit := structLit(1,
		structElem(1, sp("a"), intLit(1, 1)),
		structElem(1, sp("b"), strLit(1, "x")),
	)
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, lit)}}
}

// structCtorOK is `T { a = 1 }` against a one-field struct annotation.
func structCtorOK() *ast.Program {
	annotation := structType(1, ast.FieldDecl{Name: sp("a"), Type: intType(1, 32, true)})
	ctor := structCtor(1, annotation, structElem(1, sp("a"), intLit(1, 1)))
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, ctor)}}
}

// structCtorBadAnnotation is `T { a = 1 }` where T names an integral
// type rather than a struct type.
func structCtorBadAnnotation() *ast.Program {
	ctor := structCtor(1, intType(1, 32, true), structElem(1, sp("a"), intLit(1, 1)))
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, ctor)}}
}

// fieldAccessOK is `s.a` for `s : struct { a: int<32>; }`.
func fieldAccessOK() *ast.Program {
	st := structType(1, ast.FieldDecl{Name: sp("a"), Type: intType(1, 32, true)})
	sStmt, sDecl := varDecl(1, "s", st, nil)
	fa := exprStmt(2, fieldAccess(2, varRef(2, "s", sDecl), "a"))
	return &ast.Program{Stmts: []ast.Stmt{sStmt, fa}}
}

// fieldAccessUnknown is `s.b` for a struct type with no `b` field.
func fieldAccessUnknown() *ast.Program {
	st := structType(1, ast.FieldDecl{Name: sp("a"), Type: intType(1, 32, true)})
	sStmt, sDecl := varDecl(1, "s", st, nil)
	fa := exprStmt(2, fieldAccess(2, varRef(2, "s", sDecl), "b"))
	return &ast.Program{Stmts: []ast.Stmt{sStmt, fa}}
}

// sizeofValueOK is `sizeof(1)`: the result is an offset in bits
// whatever the operand's own type.
func sizeofValueOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, sizeofExpr(1, intLit(1, 1))),
	}}
}

// sizeofTypeComplete is `sizeof(int<8>[4])`: the element count is a
// constant, so typify-2 marks the operand type complete.
func sizeofTypeComplete() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, sizeofType(1, arrayType(1, intType(1, 8, true), intLit(1, 4)))),
	}}
}

// sizeofTypeIncomplete is `sizeof(int<8>[n])` for a variable `n`: the
// count isn't a constant, so the operand type stays incomplete.
func sizeofTypeIncomplete() *ast.Program {
	nStmt, nDecl := varDecl(1, "n", intType(1, 32, false), nil)
	sz := exprStmt(2, sizeofType(2, arrayType(2, intType(2, 8, true), varRef(2, "n", nDecl))))
	return &ast.Program{Stmts: []ast.Stmt{nStmt, sz}}
}

// attributeTableOK exercises every attribute name against a valid
// operand kind each.
func attributeTableOK() *ast.Program {
	iStmt, iDecl := varDecl(1, "i", intType(1, 32, true), nil)
	oStmt, oDecl := varDecl(2, "o", offsetType(2, intType(2, 32, false), 8, "B"), nil)
	st := structType(3, ast.FieldDecl{Name: sp("a"), Type: intType(3, 8, true)})
	sStmt, sDecl := varDecl(3, "s", st, nil)

	return &ast.Program{Stmts: []ast.Stmt{
		iStmt, oStmt, sStmt,
		exprStmt(4, attribute(4, varRef(4, "i", iDecl), ast.AttrSize)),
		exprStmt(5, attribute(5, varRef(5, "i", iDecl), ast.AttrSigned)),
		exprStmt(6, attribute(6, varRef(6, "o", oDecl), ast.AttrMagnitude)),
		exprStmt(7, attribute(7, varRef(7, "o", oDecl), ast.AttrUnit)),
		exprStmt(8, attribute(8, varRef(8, "s", sDecl), ast.AttrLength)),
		exprStmt(9, attribute(9, varRef(9, "s", sDecl), ast.AttrAlignment)),
		exprStmt(10, attribute(10, varRef(10, "s", sDecl), ast.AttrOffset)),
		exprStmt(11, attribute(11, varRef(11, "i", iDecl), ast.AttrMapped)),
	}}
}

// attributeInvalidOperand is `i'magnitude` for an integral `i`:
// 'magnitude is only valid on an offset operand.
func attributeInvalidOperand() *ast.Program {
	iStmt, iDecl := varDecl(1, "i", intType(1, 32, true), nil)
	attr := exprStmt(2, attribute(2, varRef(2, "i", iDecl), ast.AttrMagnitude))
	return &ast.Program{Stmts: []ast.Stmt{iStmt, attr}}
}

// mapOK is `uint<32> @ off` where off is a literal offset value.
func mapOK() *ast.Program {
	m := exprStmt(1, mapExpr(1, intType(1, 32, false), offsetLit(1, intLit(1, 4), 8, "B")))
	return &ast.Program{Stmts: []ast.Stmt{m}}
}

// mapBadOffset is `uint<32> @ 4`: the right-hand side of '@' must be an
// offset, not a bare integral.
func mapBadOffset() *ast.Program {
	m := exprStmt(1, mapExpr(1, intType(1, 32, false), intLit(1, 4)))
	return &ast.Program{Stmts: []ast.Stmt{m}}
}

// loopForInOK is `for (x in [1, 2, 3]) print "x";`, the one construct
// typify-1 handles with its subpass mechanism: the iterator's type is
// derived from the container's element type before the body is typified.
func loopForInOK() *ast.Program {
	iterDecl := &ast.Decl{Name: "x"}
	loop := &ast.Loop{
		BaseStmt:  ast.BaseStmt{Location: loc(1)},
		Container: arrayLit(1, intLit(1, 1), intLit(1, 2), intLit(1, 3)),
		Iterator:  iterDecl,
		Body:      []ast.Stmt{printStmt(2, strLit(2, "x"))},
	}
	return &ast.Program{Stmts: []ast.Stmt{loop}}
}

// loopWhileOK is `while (1) { print "x"; }`: the condition carries the
// canonical int<32> boolean type.
func loopWhileOK() *ast.Program {
	loop := &ast.Loop{
		BaseStmt: ast.BaseStmt{Location: loc(1)},
		Cond:     intLit(1, 1),
		Body:     []ast.Stmt{printStmt(2, strLit(2, "x"))},
	}
	return &ast.Program{Stmts: []ast.Stmt{loop}}
}

// loopCondNotBool32 is `while (c) { ... }` for `uint<64> c`: a loop
// condition must be exactly int<32>, not just any integral.
func loopCondNotBool32() *ast.Program {
	cStmt, cDecl := varDecl(1, "c", intType(1, 64, false), nil)
	loop := &ast.Loop{
		BaseStmt: ast.BaseStmt{Location: loc(2)},
		Cond:     varRef(2, "c", cDecl),
		Body:     []ast.Stmt{printStmt(3, strLit(3, "x"))},
	}
	return &ast.Program{Stmts: []ast.Stmt{cStmt, loop}}
}

// tryCatchOK is `try { print "a"; } catch (e) if 1 { print "b"; }`.
func tryCatchOK() *ast.Program {
	try := &ast.TryStmt{
		BaseStmt:  ast.BaseStmt{Location: loc(1)},
		TryBody:   []ast.Stmt{printStmt(1, strLit(1, "a"))},
		CatchDecl: &ast.Decl{Name: "e"},
		CatchCond: intLit(2, 1),
		CatchBody: []ast.Stmt{printStmt(2, strLit(2, "b"))},
	}
	return &ast.Program{Stmts: []ast.Stmt{try}}
}

// printOK is `print "hello";`.
func printOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{printStmt(1, strLit(1, "hello"))}}
}

// raiseOK is `raise 1;`: raise takes an integral operand.
func raiseOK() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{raiseStmt(1, intLit(1, 1))}}
}

// returnOK is `fun f(): int<32> = { return 1; }`.
func returnOK() *ast.Program {
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "f",
		Decl:     &ast.Decl{Name: "f"},
		RetType:  intType(1, 32, true),
		Body:     []ast.Stmt{returnStmt(1, intLit(1, 1))},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def)}}
}

// funcDefArgs builds a two-parameter function `f(a: int<32>, b: int<32>)`
// shared by the funcall arity fixtures below.
func funcDefArgs(line int) (*ast.FuncDef, *ast.Decl) {
	fDecl := &ast.Decl{Name: "f"}
	params := []*ast.Param{
		{Name: "a", Type: intType(line, 32, true), Decl: &ast.Decl{Name: "a"}},
		{Name: "b", Type: intType(line, 32, true), Decl: &ast.Decl{Name: "b"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(line)},
		Name:     "f",
		Decl:     fDecl,
		Params:   params,
		RetType:  voidType(line),
	}
	return def, fDecl
}

// funcallTooFewArgs is `f()` against `fun f(a: int<32>, b: int<32>)`.
func funcallTooFewArgs() *ast.Program {
	def, fDecl := funcDefArgs(1)
	call := &ast.FuncCall{BaseExpr: ast.BaseExpr{Location: loc(2)}, Callee: varRef(2, "f", fDecl)}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}

// funcallTooManyArgs is `f(1, 2, 3)` against `fun f(a: int<32>, b: int<32>)`.
func funcallTooManyArgs() *ast.Program {
	def, fDecl := funcDefArgs(1)
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args: []ast.Argument{
			{Value: intLit(2, 1)}, {Value: intLit(2, 2)}, {Value: intLit(2, 3)},
		},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}

// funcallVarargOK is `f(1, 2, 3)` against `fun f(a: int<32>, rest: int<32>...)`:
// any number of trailing arguments is accepted once a vararg parameter
// is reached.
func funcallVarargOK() *ast.Program {
	fDecl := &ast.Decl{Name: "f"}
	params := []*ast.Param{
		{Name: "a", Type: intType(1, 32, true), Decl: &ast.Decl{Name: "a"}},
		{Name: "rest", Type: intType(1, 32, true), Vararg: true, Decl: &ast.Decl{Name: "rest"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "f",
		Decl:     fDecl,
		Params:   params,
		RetType:  voidType(1),
	}
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args: []ast.Argument{
			{Value: intLit(2, 1)}, {Value: intLit(2, 2)}, {Value: intLit(2, 3)},
		},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}

// funcallNamedVarargOK is `f(a: 1, rest: "x")` against
// `fun f(a: int<32>, rest: int<32>...)`: an actual matched by name to
// the vararg formal joins the variadic pack, so its type is never
// checked against the formal's.
func funcallNamedVarargOK() *ast.Program {
	fDecl := &ast.Decl{Name: "f"}
	params := []*ast.Param{
		{Name: "a", Type: intType(1, 32, true), Decl: &ast.Decl{Name: "a"}},
		{Name: "rest", Type: intType(1, 32, true), Vararg: true, Decl: &ast.Decl{Name: "rest"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "f",
		Decl:     fDecl,
		Params:   params,
		RetType:  voidType(1),
	}
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args: []ast.Argument{
			{Name: sp("a"), Value: intLit(2, 1)},
			{Name: sp("rest"), Value: strLit(2, "x")},
		},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}

// funcallNoNamedArgs is `f(a: 1)` against a function whose parameters
// carry no names to match against.
func funcallNoNamedArgs() *ast.Program {
	fDecl := &ast.Decl{Name: "f"}
	params := []*ast.Param{
		{Type: intType(1, 32, true), Decl: &ast.Decl{Name: ""}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "f",
		Decl:     fDecl,
		Params:   params,
		RetType:  voidType(1),
	}
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args:     []ast.Argument{{Name: sp("a"), Value: intLit(2, 1)}},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}

// funcallMissingRequired is `f(a: 1)` against `fun f(a: int<32>, b: int<32>)`:
// b is mandatory and never supplied.
func funcallMissingRequired() *ast.Program {
	def, fDecl := funcDefArgs(1)
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args:     []ast.Argument{{Name: sp("a"), Value: intLit(2, 1)}},
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def), exprStmt(2, call)}}
}
