package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// VisitIntLiteral gives every IntLiteral, whether written by the
// program or synthesized by isa folding, the canonical 32-bit
// signed integral type.
func (d *Driver) VisitIntLiteral(n *ast.IntLiteral) any {
	n.SetType(ptype.Bool32())
	return n
}

func (d *Driver) VisitStringLiteral(n *ast.StringLiteral) any {
	n.SetType(ptype.String{})
	return n
}

func (d *Driver) VisitOffsetLiteral(n *ast.OffsetLiteral) any {
	n.Magnitude = d.typifyExpr(n.Magnitude, false)
	mt := n.Magnitude.Type()
	mi, ok := mt.(ptype.Integral)
	if !ok {
		d.Payload.typeMismatch(n.Loc(), "an offset literal's magnitude must be integral, got %s", mt)
		return n
	}
	n.SetType(ptype.Offset{Base: mi, Unit: n.UnitBits})
	return n
}

func (d *Driver) VisitArrayLiteral(n *ast.ArrayLiteral) any {
	var elemType ptype.Type
	for i, e := range n.Elements {
		n.Elements[i] = d.typifyExpr(e, false)
		et := n.Elements[i].Type()
		if et == nil {
			continue
		}
		if elemType == nil {
			elemType = et
			continue
		}
		if !ptype.Equal(elemType, et) {
			d.Payload.typeMismatch(n.Elements[i].Loc(), "array literal elements must all have the same type: expected %s, got %s", elemType, et)
		}
	}
	if elemType == nil {
		d.Payload.ice(n.Loc(), "typify1: empty array literal has no element type")
		return n
	}
	n.SetType(ptype.Array{Elem: elemType})
	return n
}

func (d *Driver) VisitSizeof(n *ast.SizeofExpr) any {
	n.Operand = d.typifyExpr(n.Operand, false)
	// sizeof's result is always an offset in bits, regardless of the
	// operand's own type.
	n.SetType(ptype.Offset{Base: ptype.Size64(), Unit: 1})
	return n
}

// VisitSizeofType handles sizeof applied to a type. The result type is
// the same bits offset a value sizeof produces; whether the operand
// type is complete enough to actually have a size is typify-2's call.
func (d *Driver) VisitSizeofType(n *ast.SizeofTypeExpr) any {
	d.typifyTypeExpr(n.Target)
	n.SetType(ptype.Offset{Base: ptype.Size64(), Unit: 1})
	return n
}
