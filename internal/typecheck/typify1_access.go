package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

func (d *Driver) VisitIndexer(n *ast.Indexer) any {
	n.Container = d.typifyExpr(n.Container, false)
	n.Index = d.typifyExpr(n.Index, false)
	ct, it := n.Container.Type(), n.Index.Type()
	if ct == nil || it == nil {
		return n
	}
	if _, ok := it.(ptype.Integral); !ok {
		d.Payload.typeMismatch(n.Index.Loc(), "an index must be integral, got %s", it)
	}
	switch c := ct.(type) {
	case ptype.Array:
		n.SetType(c.Elem)
	case ptype.String:
		n.SetType(ptype.Size8U())
	default:
		d.Payload.typeMismatch(n.Container.Loc(), "cannot index a value of type %s", ct)
	}
	return n
}

func (d *Driver) VisitTrimmer(n *ast.Trimmer) any {
	n.Container = d.typifyExpr(n.Container, false)
	n.Low = d.typifyExpr(n.Low, false)
	n.High = d.typifyExpr(n.High, false)
	ct, lt, ht := n.Container.Type(), n.Low.Type(), n.High.Type()
	if _, ok := lt.(ptype.Integral); lt != nil && !ok {
		d.Payload.typeMismatch(n.Low.Loc(), "a trimmer bound must be integral, got %s", lt)
	}
	if _, ok := ht.(ptype.Integral); ht != nil && !ok {
		d.Payload.typeMismatch(n.High.Loc(), "a trimmer bound must be integral, got %s", ht)
	}
	if ct != nil {
		n.SetType(ct)
	}
	return n
}

func (d *Driver) VisitStructElem(n *ast.StructElem) any {
	n.Value = d.typifyExpr(n.Value, false)
	n.SetType(n.Value.Type())
	return n
}

func (d *Driver) VisitStructLiteral(n *ast.StructLiteral) any {
	fields := make([]ptype.StructField, 0, len(n.Elems))
	for i, elem := range n.Elems {
		n.Elems[i] = d.typifyExpr(elem, false).(*ast.StructElem)
		fields = append(fields, ptype.StructField{Name: n.Elems[i].Name, Type: n.Elems[i].Type()})
	}
	n.SetType(ptype.Struct{Fields: fields})
	return n
}

func (d *Driver) VisitStructCtor(n *ast.StructCtor) any {
	annotation := d.typifyTypeExpr(n.Annotation)
	for i, elem := range n.Elems {
		n.Elems[i] = d.typifyExpr(elem, false).(*ast.StructElem)
	}
	if annotation == nil {
		return n
	}
	st, ok := annotation.(ptype.Struct)
	if !ok {
		d.Payload.typeMismatch(n.Annotation.Loc(), "struct constructor annotation must be a struct type, got %s", annotation)
		return n
	}
	n.SetType(st)
	return n
}

func (d *Driver) VisitFieldAccess(n *ast.FieldAccess) any {
	n.Receiver = d.typifyExpr(n.Receiver, false)
	rt := n.Receiver.Type()
	if rt == nil {
		return n
	}
	st, ok := rt.(ptype.Struct)
	if !ok {
		d.Payload.typeMismatch(n.Receiver.Loc(), "'.%s' requires a struct receiver, got %s", n.Field, rt)
		return n
	}
	field, found := st.FieldByName(n.Field)
	if !found {
		d.Payload.domainError(n.Loc(), "struct type %s has no field named %q", rt, n.Field)
		return n
	}
	n.SetType(field.Type)
	return n
}

func (d *Driver) VisitMap(n *ast.MapExpr) any {
	target := d.typifyTypeExpr(n.TargetType)
	n.Offset = d.typifyExpr(n.Offset, false)
	ot := n.Offset.Type()
	if ot != nil {
		if _, ok := ot.(ptype.Offset); !ok {
			d.Payload.typeMismatch(n.Offset.Loc(), "the right-hand side of '@' must be an offset, got %s", ot)
		}
	}
	if target != nil {
		n.SetType(target)
	}
	return n
}

// VisitAttribute checks which operand kinds are valid for each
// attribute name and what type the attribute expression has.
func (d *Driver) VisitAttribute(n *ast.Attribute) any {
	n.Operand = d.typifyExpr(n.Operand, false)
	ot := n.Operand.Type()
	if ot == nil {
		return n
	}
	k := ot.Kind()
	valid := func(kinds ...ptype.Kind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
	switch n.Name {
	case ast.AttrSize:
		if !valid(ptype.KindIntegral, ptype.KindString, ptype.KindArray, ptype.KindStruct, ptype.KindOffset) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Offset{Base: ptype.Size64(), Unit: 1})
	case ast.AttrSigned:
		if !valid(ptype.KindIntegral) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Bool32())
	case ast.AttrMagnitude, ast.AttrUnit:
		if !valid(ptype.KindOffset) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Size64())
	case ast.AttrLength:
		if !valid(ptype.KindArray, ptype.KindStruct, ptype.KindString) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Size64())
	case ast.AttrAlignment:
		if !valid(ptype.KindStruct) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Size64())
	case ast.AttrOffset:
		if !valid(ptype.KindArray, ptype.KindStruct) {
			d.invalidAttr(n, ot)
			return n
		}
		n.SetType(ptype.Offset{Base: ptype.Size64(), Unit: 1})
	case ast.AttrMapped:
		// 'mapped is valid on any operand kind.
		n.SetType(ptype.Bool32())
	default:
		d.Payload.ice(n.Loc(), "typify1: unreachable attribute %q", n.Name)
	}
	return n
}

func (d *Driver) invalidAttr(n *ast.Attribute, ot ptype.Type) {
	d.Payload.domainError(n.Loc(), "attribute '%s is not valid on operand type %s", n.Name, ot)
}
