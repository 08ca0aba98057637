package fixtures

import "github.com/timb-machine-mirrors/gnu-poke/internal/ast"

// simpleAdd is `1 + 2`, accepted with type int<32>.
func simpleAdd() *ast.Program {
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, binary(1, ast.OpAdd, intLit(1, 1), intLit(1, 2))),
	}}
}

// promotion is `uint<16> a; int<8> b; a + b`, accepted with type
// uint<16>: the width widens and the unsignedness is contagious.
func promotion() *ast.Program {
	aDecl1, aDecl := varDecl(1, "a", intType(1, 16, false), nil)
	bDecl1, bDecl := varDecl(2, "b", intType(2, 8, true), nil)
	sum := exprStmt(3, binary(3, ast.OpAdd, varRef(3, "a", aDecl), varRef(3, "b", bDecl)))
	return &ast.Program{Stmts: []ast.Stmt{aDecl1, bDecl1, sum}}
}

// offsetSub is `offset<uint<32>,B> x; offset<uint<32>,B> y; x - y`:
// the difference comes back in bits, whatever the operand units.
func offsetSub() *ast.Program {
	xStmt, xDecl := varDecl(1, "x", offsetType(1, intType(1, 32, false), 8, "B"), nil)
	yStmt, yDecl := varDecl(2, "y", offsetType(2, intType(2, 32, false), 8, "B"), nil)
	diff := exprStmt(3, binary(3, ast.OpSub, varRef(3, "x", xDecl), varRef(3, "y", yDecl)))
	return &ast.Program{Stmts: []ast.Stmt{xStmt, yStmt, diff}}
}

// namedArgs is `f(a: 1, c: "x")` against
// `fun f(a:int<32>, b:int<32>=0, c:string)`, reordered and accepted.
func namedArgs() *ast.Program {
	fDecl := &ast.Decl{Name: "f"}
	params := []*ast.Param{
		{Name: "a", Type: intType(1, 32, true), Decl: &ast.Decl{Name: "a"}},
		{Name: "b", Type: intType(1, 32, true), Optional: true, Default: intLit(1, 0), Decl: &ast.Decl{Name: "b"}},
		{Name: "c", Type: stringType(1), Decl: &ast.Decl{Name: "c"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "f",
		Decl:     fDecl,
		Params:   params,
		RetType:  voidType(1),
		Body:     nil,
	}
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "f", fDecl),
		Args: []ast.Argument{
			{Name: sp("a"), Value: intLit(2, 1)},
			{Name: sp("c"), Value: strLit(2, "x")},
		},
	}
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, def),
		exprStmt(2, call),
	}}
}

// voidCallError is
// `fun g(x:int<32>):void = { … }; 1 + g(0)` → error
// "function doesn't return a value".
func voidCallError() *ast.Program {
	gDecl := &ast.Decl{Name: "g"}
	params := []*ast.Param{
		{Name: "x", Type: intType(1, 32, true), Decl: &ast.Decl{Name: "x"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "g",
		Decl:     gDecl,
		Params:   params,
		RetType:  voidType(1),
		Body:     nil,
	}
	call := &ast.FuncCall{
		BaseExpr: ast.BaseExpr{Location: loc(2)},
		Callee:   varRef(2, "g", gDecl),
		Args:     []ast.Argument{{Value: intLit(2, 0)}},
	}
	sum := binary(2, ast.OpAdd, intLit(2, 1), call)
	return &ast.Program{Stmts: []ast.Stmt{
		exprStmt(1, def),
		exprStmt(2, sum),
	}}
}

// widthError is `uint<65> z` → error "width of an
// integral type should be in the [1,64] range".
func widthError() *ast.Program {
	zStmt, _ := varDecl(1, "z", intType(1, 65, false), nil)
	return &ast.Program{Stmts: []ast.Stmt{zStmt}}
}

// isaFold exercises the `e isa any` compile-time simplification: the
// IsaExpr node is rewritten in place into the literal `1`.
func isaFold() *ast.Program {
	isa := &ast.IsaExpr{BaseExpr: ast.BaseExpr{Location: loc(1)}, Operand: intLit(1, 1), Target: anyType(1)}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, isa)}}
}

// isaStaticTrue is `1 isa int<32>`: the operand's static type equals the
// target, so the whole node folds to the literal `1`.
func isaStaticTrue() *ast.Program {
	isa := &ast.IsaExpr{BaseExpr: ast.BaseExpr{Location: loc(1)}, Operand: intLit(1, 1), Target: intType(1, 32, true)}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, isa)}}
}

// isaStaticFalse is `1 isa string`: statically unequal types and the
// operand isn't `any`, so the node folds to the literal `0` (no
// diagnostic, the comparison is simply decided at compile time).
func isaStaticFalse() *ast.Program {
	isa := &ast.IsaExpr{BaseExpr: ast.BaseExpr{Location: loc(1)}, Operand: intLit(1, 1), Target: stringType(1)}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, isa)}}
}

// isaRuntime is `v isa int<32>` for `any v`: the operand's static type
// is `any`, so the comparison is left for the runtime and the node
// keeps its shape.
func isaRuntime() *ast.Program {
	vStmt, vDecl := varDecl(1, "v", anyType(1), nil)
	isa := &ast.IsaExpr{BaseExpr: ast.BaseExpr{Location: loc(2)}, Operand: varRef(2, "v", vDecl), Target: intType(2, 32, true)}
	return &ast.Program{Stmts: []ast.Stmt{vStmt, exprStmt(2, isa)}}
}

// offsetAddUnits is `x + y` for offsets in bytes and bits: addition
// settles on the common denominator of the two units.
func offsetAddUnits() *ast.Program {
	xStmt, xDecl := varDecl(1, "x", offsetType(1, intType(1, 32, false), 8, "B"), nil)
	yStmt, yDecl := varDecl(2, "y", offsetType(2, intType(2, 32, false), 1, "b"), nil)
	sum := exprStmt(3, binary(3, ast.OpAdd, varRef(3, "x", xDecl), varRef(3, "y", yDecl)))
	return &ast.Program{Stmts: []ast.Stmt{xStmt, yStmt, sum}}
}

// sizedArrayInFuncArg exercises typify-2's contextual-validity check:
// `fun h(arr: int<8>[4]): void = { … }` → "sized array types not allowed
// in this context".
func sizedArrayInFuncArg() *ast.Program {
	arrType := arrayType(1, intType(1, 8, true), intLit(1, 4))
	params := []*ast.Param{
		{Name: "arr", Type: arrType, Decl: &ast.Decl{Name: "arr"}},
	}
	def := &ast.FuncDef{
		BaseExpr: ast.BaseExpr{Location: loc(1)},
		Name:     "h",
		Decl:     &ast.Decl{Name: "h"},
		Params:   params,
		RetType:  voidType(1),
		Body:     nil,
	}
	return &ast.Program{Stmts: []ast.Stmt{exprStmt(1, def)}}
}
