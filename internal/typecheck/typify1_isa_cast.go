package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// VisitIsa types the type-tag comparison, including its compile-time
// simplifications. A successful fold replaces the IsaExpr node with a
// fresh IntLiteral carrying the folded value — the expression-level
// "restart": the caller assigns this return value into whatever field
// held the original IsaExpr.
func (d *Driver) VisitIsa(n *ast.IsaExpr) any {
	n.Operand = d.typifyExpr(n.Operand, false)
	target := d.typifyTypeExpr(n.Target)
	ot := n.Operand.Type()
	if ot == nil || target == nil {
		n.SetType(ptype.Bool32())
		return n
	}

	if target.Kind() == ptype.KindAny {
		return foldIsa(n, 1)
	}
	if ot.Kind() != ptype.KindAny {
		if ptype.Equal(ot, target) {
			return foldIsa(n, 1)
		}
		return foldIsa(n, 0)
	}
	// Operand type is `any` and the target isn't: left for the runtime.
	n.SetType(ptype.Bool32())
	return n
}

func foldIsa(n *ast.IsaExpr, value int64) ast.Expr {
	lit := &ast.IntLiteral{BaseExpr: ast.BaseExpr{Location: n.Loc()}, Value: value}
	lit.SetType(ptype.Bool32())
	return lit
}

// VisitCast gives a cast the target type, after checking the forbidden
// target/source combinations. It never rewrites the cast node.
func (d *Driver) VisitCast(n *ast.CastExpr) any {
	n.Operand = d.typifyExpr(n.Operand, false)
	target := d.typifyTypeExpr(n.Target)
	ot := n.Operand.Type()
	if ot == nil || target == nil {
		return n
	}

	if target.Kind() == ptype.KindAny {
		d.Payload.domainError(n.Loc(), "casting to 'any' is forbidden")
		n.SetType(target)
		return n
	}
	if target.Kind() == ptype.KindFunction || ot.Kind() == ptype.KindFunction {
		d.Payload.domainError(n.Loc(), "casting to or from a function type is forbidden")
		n.SetType(target)
		return n
	}
	if target.Kind() == ptype.KindString {
		if i, ok := ot.(ptype.Integral); !ok || i.Size != 8 || i.Signed {
			d.Payload.typeMismatch(n.Loc(), "casting to 'string' requires a uint<8> operand, got %s", ot)
		}
	}
	n.SetType(target)
	return n
}
