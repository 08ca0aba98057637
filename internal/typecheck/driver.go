package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// funcCtx is the enclosing-function context typify1 needs to check
// return statements and void-call placement.
type funcCtx struct {
	retType    ptype.Type
	isVoid     bool
	hasEnclose bool
}

// Driver is typify-1's visitor: it implements ast.ExprVisitor,
// ast.StmtVisitor and ast.TypeExprVisitor, so dispatch on node kind
// goes through each node's own Accept method rather than a parallel
// type switch. It also carries the Payload plus the small bit of
// traversal context (the enclosing function, for return-statement
// checking; whether the current expression sits in statement position,
// for void-call placement) that would otherwise require walking back up
// parent pointers.
type Driver struct {
	Payload *Payload
	fn      funcCtx
	// stmtPos is true exactly while the expression being dispatched
	// sits directly in statement position, the one context where a
	// void-returning function call is legal. The traversal is
	// single-threaded, so a plain field is enough; typifyExpr saves and
	// restores it around each dispatch so nested children never see
	// their parent's statement position.
	stmtPos bool
}

var (
	_ ast.ExprVisitor     = (*Driver)(nil)
	_ ast.StmtVisitor     = (*Driver)(nil)
	_ ast.TypeExprVisitor = (*Driver)(nil)
)

// NewDriver builds a Driver over payload, with no enclosing function.
func NewDriver(payload *Payload) *Driver {
	return &Driver{Payload: payload}
}

// Typify1 runs typify-1 over the whole program: bottom-up type
// assignment, diagnostics, and isa constant folding. Casts are checked
// and typed but never folded.
func Typify1(program *ast.Program, payload *Payload) {
	d := NewDriver(payload)
	for i, stmt := range program.Stmts {
		program.Stmts[i] = d.typifyStmt(stmt)
	}
}

// typifyStmt dispatches a single statement through its Accept method and
// returns its (possibly unchanged) replacement; statements don't
// currently get rewritten the way isa expressions do, but returning
// the node keeps every call site uniform with typifyExpr's discipline.
func (d *Driver) typifyStmt(s ast.Stmt) ast.Stmt {
	if s == nil {
		return s
	}
	return s.Accept(d).(ast.Stmt)
}

func (d *Driver) typifyStmts(stmts []ast.Stmt) {
	for i, s := range stmts {
		stmts[i] = d.typifyStmt(s)
	}
}

// typifyExpr dispatches e through its Accept method. stmtPos is true
// exactly when e sits directly in statement position; it is stashed on
// the Driver around the call so VisitFuncCall can read it without
// threading it through every ExprVisitor method's signature. A handler
// that needs to rewrite its own node (isa folding) does so by
// returning the replacement here; the caller — whichever parent field
// held the original e — assigns the returned value back, which is the
// "restart" signal applied without a second mutation channel.
func (d *Driver) typifyExpr(e ast.Expr, stmtPos bool) ast.Expr {
	if e == nil {
		return e
	}
	prev := d.stmtPos
	d.stmtPos = stmtPos
	result := e.Accept(d).(ast.Expr)
	d.stmtPos = prev
	return result
}

// typifyTypeExpr resolves te through its Accept method into the
// ptype.Type it denotes, or nil if te is nil or malformed (a diagnostic
// having already been reported).
func (d *Driver) typifyTypeExpr(te ast.TypeExpr) ptype.Type {
	if te == nil {
		return nil
	}
	t, _ := te.Accept(d).(ptype.Type)
	return t
}
