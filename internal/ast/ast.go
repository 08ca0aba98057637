// Package ast defines the AST node shapes the typecheck package consumes
// and annotates. Lexing, parsing and AST construction from source text are
// out of scope for this module (the type pass is fed an already-built
// tree); tests and the demonstration CLI build these nodes directly with
// Go constructors, the way a hand-written parser would.
package ast

import "github.com/timb-machine-mirrors/gnu-poke/internal/ptype"

// Location is a source position, attached to every node for diagnostics.
type Location struct {
	File   string
	Line   int
	Column int
}

// Expr is implemented by every expression node. Accept dispatches to the
// matching ExprVisitor method (the "handler table keyed by node kind"
// the traversal driver exposes, expressed the idiomatic Go way as a
// method-set dispatch rather than a literal map).
type Expr interface {
	Accept(v ExprVisitor) any
	Loc() Location
	Type() ptype.Type
	SetType(ptype.Type)
}

// BaseExpr is embedded by every concrete Expr; it carries location and
// the type attribute that typify-1 populates.
type BaseExpr struct {
	Location Location
	Typ      ptype.Type
}

func (b *BaseExpr) Loc() Location        { return b.Location }
func (b *BaseExpr) Type() ptype.Type     { return b.Typ }
func (b *BaseExpr) SetType(t ptype.Type) { b.Typ = t }

// Decl is a shared cell a variable binding's declaration writes its type
// into once computed, and that every VarRef naming that binding reads
// from. Symbol resolution (linking a VarRef to its Decl) is assumed to
// already have happened by the time this pass runs, the same way a
// parser resolves names to scopes before a later pass runs over the
// result; nothing in this module re-derives scoping.
type Decl struct {
	Name string
	Typ  ptype.Type
}

// TypeBinding is Decl's counterpart for named struct types: the cell
// holding the resolved ptype.Struct that a NamedTypeExpr reads from
// wherever the source names that type (a struct constructor's
// annotation, a map expression's target type, ...). Typ must be filled
// in by whoever builds the tree; no handler in this module writes it.
type TypeBinding struct {
	Name string
	Typ  ptype.Type
}

// constSizeExpr adapts an ast.Expr to ptype.ConstSizeExpr, so
// ptype.Array can classify its NElem as constant without importing ast.
type constSizeExpr struct{ e Expr }

func (w constSizeExpr) IsConstant() bool { return IsConstantExpr(w.e) }

// WrapConstSize wraps an (optional) array-size expression for storage in
// ptype.Array.NElem. A nil e yields a nil ConstSizeExpr, matching
// "NElem is nil for an unsized array type".
func WrapConstSize(e Expr) ptype.ConstSizeExpr {
	if e == nil {
		return nil
	}
	return constSizeExpr{e}
}

// IsConstantExpr gives a deliberately conservative, syntactic notion of
// "constant expression": only literals qualify. Matches what a
// single-pass, non-folding checker can know without a general
// constant-evaluator (out of scope here).
func IsConstantExpr(e Expr) bool {
	switch e.(type) {
	case *IntLiteral:
		return true
	default:
		return false
	}
}
