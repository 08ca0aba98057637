package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// VisitExprStmt dispatches the wrapped expression in statement position,
// the one place a void-returning function call is legal.
func (d *Driver) VisitExprStmt(n *ast.ExprStmt) any {
	n.Expr = d.typifyExpr(n.Expr, true)
	return n
}

func (d *Driver) VisitPrint(n *ast.PrintStmt) any {
	n.Expr = d.typifyExpr(n.Expr, false)
	if t := n.Expr.Type(); t != nil {
		if _, ok := t.(ptype.String); !ok {
			d.Payload.typeMismatch(n.Expr.Loc(), "print requires a string-typed operand, got %s", t)
		}
	}
	return n
}

func (d *Driver) VisitRaise(n *ast.RaiseStmt) any {
	if n.Expr == nil {
		return n
	}
	n.Expr = d.typifyExpr(n.Expr, false)
	if t := n.Expr.Type(); t != nil {
		if _, ok := t.(ptype.Integral); !ok {
			d.Payload.typeMismatch(n.Expr.Loc(), "raise requires an integral operand, got %s", t)
		}
	}
	return n
}

func (d *Driver) VisitTry(n *ast.TryStmt) any {
	d.typifyStmts(n.TryBody)
	if n.CatchDecl != nil {
		n.CatchDecl.Typ = ptype.Bool32()
	}
	if n.CatchCond != nil {
		n.CatchCond = d.typifyExpr(n.CatchCond, false)
		if t := n.CatchCond.Type(); t != nil {
			if _, ok := t.(ptype.Integral); !ok {
				d.Payload.typeMismatch(n.CatchCond.Loc(), "a catch condition must be integral, got %s", t)
			}
		}
	}
	d.typifyStmts(n.CatchBody)
	return n
}

func (d *Driver) VisitReturn(n *ast.ReturnStmt) any {
	if !d.fn.hasEnclose {
		d.Payload.ice(n.Loc(), "typify1: return statement outside any function")
		return n
	}
	if d.fn.isVoid {
		if n.Expr != nil {
			d.Payload.typeMismatch(n.Loc(), "cannot return a value from a void function")
		}
		return n
	}
	if n.Expr == nil {
		d.Payload.typeMismatch(n.Loc(), "missing return value")
		return n
	}
	n.Expr = d.typifyExpr(n.Expr, false)
	rt := n.Expr.Type()
	if rt == nil || d.fn.retType == nil {
		return n
	}
	if !promotionCompatible(d.fn.retType, rt) {
		d.Payload.typeMismatch(n.Expr.Loc(), "return type %s does not match the enclosing function's declared return type %s", rt, d.fn.retType)
	}
	return n
}

// VisitLoop is the one construct the driver handles with the subpass
// mechanism instead of a plain post-order walk: the container (if any) is
// typified first, the iterator's type is derived from it, then the
// condition, then the body.
func (d *Driver) VisitLoop(n *ast.Loop) any {
	if n.Init != nil {
		n.Init = d.typifyStmt(n.Init)
	}

	if n.Container != nil {
		n.Container = d.typifyExpr(n.Container, false)
		ct := n.Container.Type()
		if ct != nil && n.Iterator != nil {
			switch c := ct.(type) {
			case ptype.Array:
				n.Iterator.Typ = c.Elem
			case ptype.String:
				n.Iterator.Typ = ptype.Size8U()
			default:
				d.Payload.typeMismatch(n.Container.Loc(), "a for-in loop requires an array or string container, got %s", ct)
			}
		}
	}

	if n.Cond != nil {
		n.Cond = d.typifyExpr(n.Cond, false)
		if t := n.Cond.Type(); t != nil {
			if !ptype.Equal(t, ptype.Bool32()) {
				d.Payload.typeMismatch(n.Cond.Loc(), "a loop condition must be int<32>, got %s", t)
			}
		}
	}

	if n.Update != nil {
		n.Update = d.typifyExpr(n.Update, false)
	}

	d.typifyStmts(n.Body)
	return n
}

func (d *Driver) VisitBreak(n *ast.BreakStmt) any { return n }

func (d *Driver) VisitContinue(n *ast.ContinueStmt) any { return n }

func (d *Driver) VisitBlock(n *ast.Block) any {
	d.typifyStmts(n.Stmts)
	return n
}

// VisitVarRef copies the bound declaration's type; the declaration's
// initializer must already have been typified by the time any VarRef
// naming it is reached, since the binder only wires a VarRef to a Decl
// that already exists in program order.
func (d *Driver) VisitVarRef(n *ast.VarRef) any {
	if n.Decl == nil || n.Decl.Typ == nil {
		d.Payload.ice(n.Loc(), "typify1: variable reference %q has no resolved declaration type", n.Name)
		return n
	}
	n.SetType(n.Decl.Typ)
	return n
}
