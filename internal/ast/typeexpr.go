package ast

import "github.com/timb-machine-mirrors/gnu-poke/internal/ptype"

// TypeExpr is a type as written in source (`int<32>`, `T[10]`,
// `struct {...}`, ...). Typify-1's job on a TypeExpr is to validate it
// and produce the ptype.Type it denotes, stored via SetResolved.
type TypeExpr interface {
	Accept(v TypeExprVisitor) any
	Loc() Location
	Resolved() ptype.Type
	SetResolved(ptype.Type)
}

// BaseTypeExpr is embedded by every concrete TypeExpr.
type BaseTypeExpr struct {
	Location     Location
	ResolvedType ptype.Type
}

func (b *BaseTypeExpr) Loc() Location            { return b.Location }
func (b *BaseTypeExpr) Resolved() ptype.Type     { return b.ResolvedType }
func (b *BaseTypeExpr) SetResolved(t ptype.Type) { b.ResolvedType = t }

// IntegralTypeExpr is `int<size>` or `uint<size>`.
type IntegralTypeExpr struct {
	BaseTypeExpr
	Size   int
	Signed bool
}

func (n *IntegralTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitIntegralType(n) }

// StringTypeExpr is `string`.
type StringTypeExpr struct{ BaseTypeExpr }

func (n *StringTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitStringType(n) }

// AnyTypeExpr is `any`.
type AnyTypeExpr struct{ BaseTypeExpr }

func (n *AnyTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitAnyType(n) }

// VoidTypeExpr is `void`.
type VoidTypeExpr struct{ BaseTypeExpr }

func (n *VoidTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitVoidType(n) }

// ArrayTypeExpr is `T[]` (NElem nil) or `T[n]` (sized).
type ArrayTypeExpr struct {
	BaseTypeExpr
	Elem  TypeExpr
	NElem Expr // nil => unsized
}

func (n *ArrayTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitArrayType(n) }

// FieldDecl is one field of a StructTypeExpr.
type FieldDecl struct {
	Name *string
	Type TypeExpr
}

// StructTypeExpr is `struct { field; field; ... }`.
type StructTypeExpr struct {
	BaseTypeExpr
	Fields []FieldDecl
}

func (n *StructTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitStructType(n) }

// OffsetTypeExpr is `offset<base,unit>`.
type OffsetTypeExpr struct {
	BaseTypeExpr
	Base     TypeExpr
	UnitBits int64
	UnitName string
}

func (n *OffsetTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitOffsetType(n) }

// ArgDecl is one formal argument of a FunctionTypeExpr.
type ArgDecl struct {
	Name     *string
	Type     TypeExpr
	Optional bool
	Vararg   bool
}

// FunctionTypeExpr is `fun (args...): ret`.
type FunctionTypeExpr struct {
	BaseTypeExpr
	Ret  TypeExpr
	Args []ArgDecl
}

func (n *FunctionTypeExpr) Accept(v TypeExprVisitor) any { return v.VisitFunctionType(n) }

// TypeExprVisitor dispatches on type-expression node kind.
type TypeExprVisitor interface {
	VisitIntegralType(n *IntegralTypeExpr) any
	VisitStringType(n *StringTypeExpr) any
	VisitAnyType(n *AnyTypeExpr) any
	VisitVoidType(n *VoidTypeExpr) any
	VisitArrayType(n *ArrayTypeExpr) any
	VisitStructType(n *StructTypeExpr) any
	VisitOffsetType(n *OffsetTypeExpr) any
	VisitFunctionType(n *FunctionTypeExpr) any
	VisitNamedType(n *NamedTypeExpr) any
}
