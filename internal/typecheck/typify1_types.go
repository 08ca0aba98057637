package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// VisitIntegralType validates the declared width against the [1,64]
// range and interns the resulting type so structurally equal integral
// types share one value.
func (d *Driver) VisitIntegralType(n *ast.IntegralTypeExpr) any {
	t, err := ptype.NewIntegral(n.Size, n.Signed)
	if err != nil {
		d.Payload.domainError(n.Loc(), "%v", err)
		return nil
	}
	r := ptype.Intern(t)
	n.SetResolved(r)
	return r
}

func (d *Driver) VisitStringType(n *ast.StringTypeExpr) any {
	n.SetResolved(ptype.String{})
	return ptype.String{}
}

func (d *Driver) VisitAnyType(n *ast.AnyTypeExpr) any {
	n.SetResolved(ptype.Any{})
	return ptype.Any{}
}

func (d *Driver) VisitVoidType(n *ast.VoidTypeExpr) any {
	n.SetResolved(ptype.Void{})
	return ptype.Void{}
}

func (d *Driver) VisitArrayType(n *ast.ArrayTypeExpr) any {
	elem := d.typifyTypeExpr(n.Elem)
	var nelem ptype.ConstSizeExpr
	if n.NElem != nil {
		n.NElem = d.typifyExpr(n.NElem, false)
		if nt := n.NElem.Type(); nt != nil {
			_, isInt := nt.(ptype.Integral)
			_, isOff := nt.(ptype.Offset)
			if !isInt && !isOff {
				d.Payload.typeMismatch(n.NElem.Loc(), "an array type's element count must be integral or offset, got %s", nt)
			}
		}
		nelem = ast.WrapConstSize(n.NElem)
	}
	arr := ptype.Array{Elem: elem, NElem: nelem}
	n.SetResolved(arr)
	return arr
}

func (d *Driver) VisitStructType(n *ast.StructTypeExpr) any {
	fields := make([]ptype.StructField, 0, len(n.Fields))
	for i := range n.Fields {
		ft := d.typifyTypeExpr(n.Fields[i].Type)
		if ft != nil && ft.Kind() == ptype.KindFunction {
			d.Payload.domainError(n.Fields[i].Type.Loc(), "a struct field may not have a function type")
		}
		fields = append(fields, ptype.StructField{Name: n.Fields[i].Name, Type: ft})
	}
	st := ptype.Struct{Fields: fields}
	n.SetResolved(st)
	return st
}

func (d *Driver) VisitOffsetType(n *ast.OffsetTypeExpr) any {
	base := d.typifyTypeExpr(n.Base)
	bi, ok := base.(ptype.Integral)
	if !ok {
		if base != nil {
			d.Payload.typeMismatch(n.Base.Loc(), "an offset type's base must be integral, got %s", base)
		}
		return nil
	}
	off := ptype.Offset{Base: bi, Unit: n.UnitBits}
	n.SetResolved(off)
	return off
}

func (d *Driver) VisitFunctionType(n *ast.FunctionTypeExpr) any {
	ret := d.typifyTypeExpr(n.Ret)
	args := make([]ptype.FunctionArg, 0, len(n.Args))
	for i := range n.Args {
		at := d.typifyTypeExpr(n.Args[i].Type)
		args = append(args, ptype.FunctionArg{
			Type: at, Name: n.Args[i].Name,
			Optional: n.Args[i].Optional, Vararg: n.Args[i].Vararg,
		})
	}
	ft := ptype.Function{Ret: ret, Args: args}
	n.SetResolved(ft)
	return ft
}

// VisitNamedType reads the type resolved at the struct's own declaration
// site; the binder guarantees Binding is wired before any reference to
// it is typified.
func (d *Driver) VisitNamedType(n *ast.NamedTypeExpr) any {
	if n.Binding == nil || n.Binding.Typ == nil {
		d.Payload.ice(n.Loc(), "typify1: named type referenced before it was resolved")
		return nil
	}
	n.SetResolved(n.Binding.Typ)
	return n.Binding.Typ
}
