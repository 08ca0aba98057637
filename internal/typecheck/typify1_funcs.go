package typecheck

import (
	"github.com/timb-machine-mirrors/gnu-poke/internal/ast"
	"github.com/timb-machine-mirrors/gnu-poke/internal/ptype"
)

// VisitFuncDef attaches the function's own type pre-order — before its
// body is typified — so a recursive call inside the body resolves
// against a Decl that already carries the right Function type.
func (d *Driver) VisitFuncDef(n *ast.FuncDef) any {
	args := make([]ptype.FunctionArg, 0, len(n.Params))
	for _, p := range n.Params {
		pt := d.typifyTypeExpr(p.Type)
		p.Decl.Typ = pt
		args = append(args, ptype.FunctionArg{
			Type: pt, Name: strPtr(p.Name), Optional: p.Optional, Vararg: p.Vararg,
		})
	}
	ret := d.typifyTypeExpr(n.RetType)
	if ret == nil {
		ret = ptype.Void{}
	}
	ft := ptype.Function{Ret: ret, Args: args}
	n.SetType(ft)
	if n.Decl != nil {
		n.Decl.Typ = ft
	}

	for _, p := range n.Params {
		if p.Default != nil {
			p.Default = d.typifyExpr(p.Default, false)
		}
	}

	outerFn := d.fn
	_, isVoid := ret.(ptype.Void)
	d.fn = funcCtx{retType: ret, isVoid: isVoid, hasEnclose: true}
	d.typifyStmts(n.Body)
	d.fn = outerFn

	return n
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// VisitFuncCall checks a call's arity, reorders named arguments into
// formal order, type-checks each aligned (formal, actual) pair, and
// rejects a void call outside statement position. It reads d.stmtPos
// (stashed by typifyExpr) rather than taking the position as a
// parameter, since ExprVisitor's signature is fixed.
func (d *Driver) VisitFuncCall(n *ast.FuncCall) any {
	stmtPos := d.stmtPos
	n.Callee = d.typifyExpr(n.Callee, false)
	for i := range n.Args {
		n.Args[i].Value = d.typifyExpr(n.Args[i].Value, false)
	}

	ct := n.Callee.Type()
	if ct == nil {
		return n
	}
	ft, ok := ct.(ptype.Function)
	if !ok {
		d.Payload.typeMismatch(n.Callee.Loc(), "callee must have a function type, got %s", ct)
		return n
	}

	mandatory := 0
	for mandatory < len(ft.Args) && !ft.Args[mandatory].Optional && !ft.Args[mandatory].Vararg {
		mandatory++
	}
	varargIdx := -1
	for i, a := range ft.Args {
		if a.Vararg {
			varargIdx = i
			break
		}
	}

	named := false
	for _, a := range n.Args {
		if a.Name != nil {
			named = true
			break
		}
	}

	if named {
		hasNames := false
		for _, a := range ft.Args {
			if a.Name != nil {
				hasNames = true
				break
			}
		}
		if !hasNames {
			d.Payload.arityError(n.Loc(), "function doesn't take named arguments")
			n.SetType(ft.Ret)
			return n
		}
		formalNames := make(map[string]bool, len(ft.Args))
		for _, fa := range ft.Args {
			if fa.Name != nil {
				formalNames[*fa.Name] = true
			}
		}
		byName := make(map[string]ast.Argument, len(n.Args))
		for _, a := range n.Args {
			if a.Name != nil {
				if !formalNames[*a.Name] {
					d.Payload.arityError(a.Value.Loc(), "argument name %q does not match any parameter", *a.Name)
					continue
				}
				byName[*a.Name] = a
			}
		}
		reordered := make([]ast.Argument, 0, len(ft.Args))
		for _, fa := range ft.Args {
			if fa.Name == nil {
				continue
			}
			actual, found := byName[*fa.Name]
			if !found {
				if fa.Optional || fa.Vararg {
					continue
				}
				d.Payload.arityError(n.Loc(), "required argument %s not specified", *fa.Name)
				continue
			}
			reordered = append(reordered, actual)
			if fa.Vararg {
				// belongs to the variadic pack: any type is accepted.
				continue
			}
			d.typifyCallArg(fa, actual)
		}
		n.Args = reordered
		n.SetType(ft.Ret)
		d.checkVoidCallContext(n, ft.Ret, stmtPos)
		return n
	}

	if len(n.Args) < mandatory {
		d.Payload.arityError(n.Loc(), "too few arguments: expected at least %d, got %d", mandatory, len(n.Args))
	}
	if varargIdx < 0 && len(n.Args) > len(ft.Args) {
		d.Payload.arityError(n.Loc(), "too many arguments: expected %d, got %d", len(ft.Args), len(n.Args))
	}

	for i, actual := range n.Args {
		if varargIdx >= 0 && i >= varargIdx {
			// belongs to the variadic pack: any type is accepted.
			continue
		}
		if i >= len(ft.Args) {
			break
		}
		d.typifyCallArg(ft.Args[i], actual)
	}

	n.SetType(ft.Ret)
	d.checkVoidCallContext(n, ft.Ret, stmtPos)
	return n
}

func (d *Driver) typifyCallArg(formal ptype.FunctionArg, actual ast.Argument) {
	at := actual.Value.Type()
	if at == nil || formal.Type == nil {
		return
	}
	if !promotionCompatible(formal.Type, at) {
		d.Payload.typeMismatch(actual.Value.Loc(), "argument type mismatch: expected %s, got %s", formal.Type, at)
	}
}

func (d *Driver) checkVoidCallContext(n *ast.FuncCall, ret ptype.Type, stmtPos bool) {
	if ret == nil {
		return
	}
	if _, isVoid := ret.(ptype.Void); isVoid && !stmtPos {
		d.Payload.typeMismatch(n.Loc(), "function doesn't return a value")
	}
}

// VisitAssign handles both a binding's first assignment (when target is
// a VarRef whose Decl has no type yet, the type is inferred from value)
// and reassignment, where target and value must agree up to the same
// promotion exceptions as a funcall argument.
func (d *Driver) VisitAssign(n *ast.Assign) any {
	n.Value = d.typifyExpr(n.Value, false)
	vt := n.Value.Type()

	if ref, ok := n.Target.(*ast.VarRef); ok && ref.Decl != nil && ref.Decl.Typ == nil {
		ref.Decl.Typ = vt
		ref.SetType(vt)
		n.SetType(vt)
		return n
	}

	n.Target = d.typifyExpr(n.Target, false)
	tt := n.Target.Type()
	if tt == nil || vt == nil {
		return n
	}
	if !promotionCompatible(tt, vt) {
		d.Payload.typeMismatch(n.Loc(), "cannot assign %s to a target of type %s", vt, tt)
	}
	n.SetType(tt)
	return n
}

// VisitVarDecl infers Decl.Typ either from an explicit type annotation
// (checked for agreement with Init's type, when Init is present) or,
// lacking one, directly from Init's type. Init is nil for a bare
// declaration with no initializer (`uint<16> a;`), which requires an
// explicit Type annotation — there is no value to infer from.
func (d *Driver) VisitVarDecl(n *ast.VarDeclStmt) any {
	var it ptype.Type
	if n.Init != nil {
		n.Init = d.typifyExpr(n.Init, false)
		it = n.Init.Type()
	}

	if n.Type == nil {
		if it == nil {
			d.Payload.ice(n.Loc(), "typify1: variable declaration has neither an initializer nor a declared type")
		}
		n.Decl.Typ = it
		return n
	}

	declared := d.typifyTypeExpr(n.Type)
	if declared == nil {
		n.Decl.Typ = it
		return n
	}
	if it != nil && !promotionCompatible(declared, it) {
		d.Payload.typeMismatch(n.Init.Loc(), "initializer type %s does not match declared type %s", it, declared)
	}
	n.Decl.Typ = declared
	return n
}
