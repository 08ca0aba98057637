package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// completer is typify-2's visitor. It is a separate type from Driver
// because Go doesn't let one type implement ast.ExprVisitor (and its
// StmtVisitor/TypeExprVisitor siblings) twice with different bodies, and
// typify-2's completeness/contextual-validity walk is semantically
// distinct from typify-1's type assignment.
type completer struct {
	Payload *Payload
}

var (
	_ ast.ExprVisitor     = (*completer)(nil)
	_ ast.StmtVisitor     = (*completer)(nil)
	_ ast.TypeExprVisitor = (*completer)(nil)
)

// Typify2 runs the completeness and contextual-validity pass over a
// program typify-1 has already annotated. It is a no-op if typify-1 left
// any diagnostic behind, matching Payload's "a later phase doesn't run
// over a tree its predecessor couldn't finish" discipline.
func Typify2(program *ast.Program, payload *Payload) {
	if payload.Failed() {
		return
	}
	c := &completer{Payload: payload}
	for _, s := range program.Stmts {
		c.completeStmt(s)
	}
}

// completeize recomputes an Array or Struct type's Complete flag from its
// element/field types, recursing bottom-up; every other kind passes
// through unchanged, since only Array and Struct carry a mutable
// completeness flag.
func completeize(t ptype.Type) ptype.Type {
	switch v := t.(type) {
	case ptype.Array:
		elem := completeize(v.Elem)
		complete := v.NElem != nil && v.NElem.IsConstant() && ptype.IsComplete(elem)
		return ptype.Array{Elem: elem, NElem: v.NElem, Complete: complete}
	case ptype.Struct:
		fields := make([]ptype.StructField, len(v.Fields))
		allComplete := true
		for i, f := range v.Fields {
			ft := completeize(f.Type)
			fields[i] = ptype.StructField{Name: f.Name, Type: ft}
			if !ptype.IsComplete(ft) {
				allComplete = false
			}
		}
		return ptype.Struct{Fields: fields, Complete: allComplete}
	default:
		return t
	}
}

func sizedArray(t ptype.Type) bool {
	a, ok := t.(ptype.Array)
	return ok && a.NElem != nil
}

func (c *completer) completeStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(c)
}

func (c *completer) completeExpr(e ast.Expr) {
	if e == nil {
		return
	}
	e.Accept(c)
	if t := e.Type(); t != nil {
		e.SetType(completeize(t))
	}
}

// completeTypeExpr recurses into a type-expression tree, recomputing the
// completeness of every Array/Struct it resolves to, and enforcing the
// one contextual-validity rule this pass owns: a sized array type is
// illegal as a function-type argument's type.
func (c *completer) completeTypeExpr(te ast.TypeExpr) {
	if te == nil {
		return
	}
	te.Accept(c)
	if rt := te.Resolved(); rt != nil {
		te.SetResolved(completeize(rt))
	}
}

func (c *completer) VisitExprStmt(n *ast.ExprStmt) any {
	c.completeExpr(n.Expr)
	return nil
}

func (c *completer) VisitVarDecl(n *ast.VarDeclStmt) any {
	if n.Type != nil {
		c.completeTypeExpr(n.Type)
	}
	c.completeExpr(n.Init)
	if n.Decl != nil && n.Decl.Typ != nil {
		n.Decl.Typ = completeize(n.Decl.Typ)
	}
	return nil
}

func (c *completer) VisitPrint(n *ast.PrintStmt) any {
	c.completeExpr(n.Expr)
	return nil
}

func (c *completer) VisitRaise(n *ast.RaiseStmt) any {
	if n.Expr != nil {
		c.completeExpr(n.Expr)
	}
	return nil
}

func (c *completer) VisitTry(n *ast.TryStmt) any {
	for _, s := range n.TryBody {
		c.completeStmt(s)
	}
	if n.CatchCond != nil {
		c.completeExpr(n.CatchCond)
	}
	for _, s := range n.CatchBody {
		c.completeStmt(s)
	}
	return nil
}

func (c *completer) VisitReturn(n *ast.ReturnStmt) any {
	if n.Expr != nil {
		c.completeExpr(n.Expr)
	}
	return nil
}

func (c *completer) VisitLoop(n *ast.Loop) any {
	if n.Init != nil {
		c.completeStmt(n.Init)
	}
	if n.Container != nil {
		c.completeExpr(n.Container)
	}
	if n.Cond != nil {
		c.completeExpr(n.Cond)
	}
	if n.Update != nil {
		c.completeExpr(n.Update)
	}
	if n.Iterator != nil && n.Iterator.Typ != nil {
		n.Iterator.Typ = completeize(n.Iterator.Typ)
	}
	for _, s := range n.Body {
		c.completeStmt(s)
	}
	return nil
}

func (c *completer) VisitBreak(n *ast.BreakStmt) any    { return nil }
func (c *completer) VisitContinue(n *ast.ContinueStmt) any { return nil }

func (c *completer) VisitBlock(n *ast.Block) any {
	for _, s := range n.Stmts {
		c.completeStmt(s)
	}
	return nil
}

func (c *completer) VisitIntLiteral(n *ast.IntLiteral) any       { return nil }
func (c *completer) VisitStringLiteral(n *ast.StringLiteral) any { return nil }
func (c *completer) VisitVarRef(n *ast.VarRef) any               { return nil }

func (c *completer) VisitBinary(n *ast.Binary) any {
	c.completeExpr(n.Left)
	c.completeExpr(n.Right)
	return nil
}

func (c *completer) VisitRelational(n *ast.Relational) any {
	c.completeExpr(n.Left)
	c.completeExpr(n.Right)
	return nil
}

func (c *completer) VisitLogical(n *ast.Logical) any {
	c.completeExpr(n.Left)
	c.completeExpr(n.Right)
	return nil
}

func (c *completer) VisitShift(n *ast.Shift) any {
	c.completeExpr(n.Left)
	c.completeExpr(n.Right)
	return nil
}

func (c *completer) VisitUnary(n *ast.Unary) any {
	c.completeExpr(n.Operand)
	return nil
}

func (c *completer) VisitBitConcat(n *ast.BitConcat) any {
	c.completeExpr(n.Left)
	c.completeExpr(n.Right)
	return nil
}

func (c *completer) VisitSizeof(n *ast.SizeofExpr) any {
	c.completeExpr(n.Operand)
	return nil
}

// VisitSizeofType recomputes the completeness of the operand type;
// later phases consult the flag to decide whether sizeof(T) can be
// evaluated at all.
func (c *completer) VisitSizeofType(n *ast.SizeofTypeExpr) any {
	c.completeTypeExpr(n.Target)
	return nil
}

func (c *completer) VisitIsa(n *ast.IsaExpr) any {
	c.completeExpr(n.Operand)
	c.completeTypeExpr(n.Target)
	return nil
}

func (c *completer) VisitCast(n *ast.CastExpr) any {
	c.completeExpr(n.Operand)
	c.completeTypeExpr(n.Target)
	return nil
}

func (c *completer) VisitOffsetLiteral(n *ast.OffsetLiteral) any {
	c.completeExpr(n.Magnitude)
	return nil
}

func (c *completer) VisitArrayLiteral(n *ast.ArrayLiteral) any {
	for i := range n.Elements {
		c.completeExpr(n.Elements[i])
	}
	return nil
}

func (c *completer) VisitIndexer(n *ast.Indexer) any {
	c.completeExpr(n.Container)
	c.completeExpr(n.Index)
	return nil
}

func (c *completer) VisitTrimmer(n *ast.Trimmer) any {
	c.completeExpr(n.Container)
	c.completeExpr(n.Low)
	c.completeExpr(n.High)
	return nil
}

func (c *completer) VisitStructElem(n *ast.StructElem) any {
	c.completeExpr(n.Value)
	return nil
}

func (c *completer) VisitStructLiteral(n *ast.StructLiteral) any {
	for _, el := range n.Elems {
		c.completeExpr(el)
	}
	return nil
}

func (c *completer) VisitStructCtor(n *ast.StructCtor) any {
	c.completeTypeExpr(n.Annotation)
	for _, el := range n.Elems {
		c.completeExpr(el)
	}
	return nil
}

func (c *completer) VisitFieldAccess(n *ast.FieldAccess) any {
	c.completeExpr(n.Receiver)
	return nil
}

func (c *completer) VisitAttribute(n *ast.Attribute) any {
	c.completeExpr(n.Operand)
	return nil
}

func (c *completer) VisitMap(n *ast.MapExpr) any {
	c.completeTypeExpr(n.TargetType)
	c.completeExpr(n.Offset)
	return nil
}

func (c *completer) VisitAssign(n *ast.Assign) any {
	c.completeExpr(n.Target)
	c.completeExpr(n.Value)
	return nil
}

func (c *completer) VisitFuncDef(n *ast.FuncDef) any {
	for _, p := range n.Params {
		c.completeTypeExpr(p.Type)
		if p.Type != nil && sizedArray(p.Type.Resolved()) {
			c.Payload.domainError(p.Type.Loc(), "sized array types not allowed in this context")
		}
		if p.Default != nil {
			c.completeExpr(p.Default)
		}
	}
	if n.RetType != nil {
		c.completeTypeExpr(n.RetType)
	}
	for _, s := range n.Body {
		c.completeStmt(s)
	}
	return nil
}

func (c *completer) VisitFuncCall(n *ast.FuncCall) any {
	c.completeExpr(n.Callee)
	for i := range n.Args {
		c.completeExpr(n.Args[i].Value)
	}
	return nil
}

func (c *completer) VisitIntegralType(n *ast.IntegralTypeExpr) any { return nil }
func (c *completer) VisitStringType(n *ast.StringTypeExpr) any    { return nil }
func (c *completer) VisitAnyType(n *ast.AnyTypeExpr) any          { return nil }
func (c *completer) VisitVoidType(n *ast.VoidTypeExpr) any        { return nil }

func (c *completer) VisitArrayType(n *ast.ArrayTypeExpr) any {
	c.completeTypeExpr(n.Elem)
	if n.NElem != nil {
		c.completeExpr(n.NElem)
	}
	return nil
}

func (c *completer) VisitStructType(n *ast.StructTypeExpr) any {
	for _, f := range n.Fields {
		c.completeTypeExpr(f.Type)
	}
	return nil
}

func (c *completer) VisitOffsetType(n *ast.OffsetTypeExpr) any {
	c.completeTypeExpr(n.Base)
	return nil
}

func (c *completer) VisitFunctionType(n *ast.FunctionTypeExpr) any {
	c.completeTypeExpr(n.Ret)
	for _, a := range n.Args {
		c.completeTypeExpr(a.Type)
		if a.Type != nil && sizedArray(a.Type.Resolved()) {
			c.Payload.domainError(a.Type.Loc(), "sized array types not allowed in this context")
		}
	}
	return nil
}

// VisitNamedType is a no-op: the binding's type is kept as bound, and
// its Complete flag is not recomputed here.
func (c *completer) VisitNamedType(n *ast.NamedTypeExpr) any { return nil }
