package analyzer

import (
	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
	"github.com/soypat/fortran-asr/internal/intrinsic"
	"github.com/soypat/fortran-asr/internal/ir"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// lowerCallExpr resolves a call in value position: a Function, a
// GenericProcedure overload, or a lazily-materialized intrinsic.
func (a *Analyzer) lowerCallExpr(n *ast.CallExpr, scope *symbol.Scope) ir.Expression {
	args := a.lowerArgs(n.Args, scope)
	callee, retTy, err := a.resolveCallee(n.Position, n.Callee, scope, args, true)
	if err != nil {
		a.Diags.Add(diagnostics.New(n.Position, "%s", err))
		return &ir.ConstantInt{Position: n.Position, Typ: types.New(types.Integer, 4)}
	}
	return &ir.CallExpr{Position: n.Position, Callee: callee, Args: args, Typ: retTy}
}

// lowerCallStmt resolves `call sub(args)`, returning the resolved call
// preceded by any implicit-deallocate statements spec.md §4.2 item 6
// requires: an allocatable actual bound to an intent(out) formal is
// deallocated immediately before the call executes.
func (a *Analyzer) lowerCallStmt(n *ast.CallStmt, scope *symbol.Scope) []symbol.StmtNode {
	args := a.lowerArgs(n.Args, scope)
	callee, _, err := a.resolveCallee(n.Position, n.Callee, scope, args, false)
	if err != nil {
		a.Diags.Add(diagnostics.New(n.Position, "%s", err))
		return []symbol.StmtNode{&ir.CallStmt{Position: n.Position, Args: args}}
	}
	out := make([]symbol.StmtNode, 0, 2)
	if dealloc := deallocateOutArgs(n.Position, callee, args); dealloc != nil {
		out = append(out, dealloc)
	}
	out = append(out, &ir.CallStmt{Position: n.Position, Callee: callee, Args: args})
	return out
}

// deallocateOutArgs implements spec.md §4.2 item 6 at a call site: for each
// actual that is a bare reference to an allocatable Variable bound to an
// intent(out) formal, the actual is deallocated before the call runs.
func deallocateOutArgs(pos token.Position, callee symbol.Declaration, args []ir.Expression) *ir.ImplicitDeallocateStmt {
	params := candidateParams(callee)
	var targets []*symbol.Variable
	for i, p := range params {
		if i >= len(args) || p.Intent != symbol.IntentOut {
			continue
		}
		vr, ok := args[i].(*ir.VarRef)
		if !ok || !vr.Decl.IsAllocatable() {
			continue
		}
		targets = append(targets, vr.Decl)
	}
	if len(targets) == 0 {
		return nil
	}
	return &ir.ImplicitDeallocateStmt{Position: pos, Targets: targets}
}

func (a *Analyzer) lowerArgs(args []ast.Arg, scope *symbol.Scope) []ir.Expression {
	out := make([]ir.Expression, len(args))
	for i, arg := range args {
		out[i] = a.lowerExpr(arg.Value, scope)
	}
	return out
}

// resolveCallee looks name up in scope, materializing an intrinsic lazily
// if it is not yet resident. When name resolves to a GenericProcedure, it
// picks the candidate whose formal parameter types equal args' types
// pairwise (spec.md §4.2 item 3), raising ArgumentsDoNotMatch when no
// candidate matches. When name resolves to the return variable of the
// function currently being lowered — spec.md §4.1 promotes a function's
// own name to that variable inside its body scope, shadowing the Function
// declaration in the enclosing scope — call position is resolved through
// the return variable's owner scope instead, so a function can call itself
// by name (SPEC_FULL.md §7's self-recursive call disambiguation). Once a
// Subroutine or Function candidate is settled, its formals are checked for
// omitted non-optional actuals (SPEC_FULL.md §7's optional-argument
// presence check). wantValue selects whether the callee must be a
// Function (value position) or may be either a Subroutine or Function
// (call-statement position).
func (a *Analyzer) resolveCallee(pos token.Position, name string, scope *symbol.Scope, args []ir.Expression, wantValue bool) (symbol.Declaration, types.Type, error) {
	decl, ok := scope.Lookup(name)
	if !ok {
		if mod, found := intrinsic.OwningModule(name); found {
			return a.materializeIntrinsic(scope, mod, name)
		}
		return nil, types.Type{}, &diagnostics.Diagnostic{Position: pos, Message: "Symbol '" + name + "' not declared"}
	}
	decl = unwrapExternal(decl)

	if v, ok := decl.(*symbol.Variable); ok && v.Intent == symbol.IntentReturn && v.OwnerScope != nil && v.OwnerScope.Parent != nil {
		if outer, ok := v.OwnerScope.Parent.Lookup(name); ok {
			decl = unwrapExternal(outer)
		}
	}

	if gp, ok := decl.(*symbol.GenericProcedure); ok {
		chosen := pickOverload(gp, args)
		if chosen == nil {
			return nil, types.Type{}, diagnostics.ArgumentsDoNotMatch(pos)
		}
		decl = unwrapExternal(chosen)
	}

	switch d := decl.(type) {
	case *symbol.Function:
		if diag := checkArgumentPresence(pos, d.Name, d.Params, args); diag != nil {
			a.Diags.Add(diag)
		}
		return d, d.ReturnVar.Type, nil
	case *symbol.Subroutine:
		if wantValue {
			return nil, types.Type{}, diagnostics.ArgumentsDoNotMatch(pos)
		}
		if diag := checkArgumentPresence(pos, d.Name, d.Params, args); diag != nil {
			a.Diags.Add(diag)
		}
		return d, types.Type{}, nil
	default:
		return nil, types.Type{}, diagnostics.ArgumentsDoNotMatch(pos)
	}
}

// checkArgumentPresence is SPEC_FULL.md §7's supplemented optional-argument
// presence check, consulted right after overload resolution settles on a
// candidate: a positional actual missing for a formal not marked optional
// is diagnosed instead of silently lowering to a short argument list.
func checkArgumentPresence(pos token.Position, calleeName string, params []*symbol.Variable, args []ir.Expression) *diagnostics.Diagnostic {
	for i := len(args); i < len(params); i++ {
		if params[i].Presence != symbol.Optional {
			return diagnostics.MissingRequiredArgument(pos, calleeName, params[i].Name)
		}
	}
	return nil
}

// pickOverload selects the first candidate, in declaration order, whose
// formal parameter types equal args' types pairwise — base type and kind,
// per spec.md §9 — returning nil when no candidate matches (spec.md §4.2
// item 3: "pick the candidate whose formal parameter types equal the
// argument types pairwise ... no match is an error").
func pickOverload(gp *symbol.GenericProcedure, args []ir.Expression) symbol.Declaration {
	for _, c := range gp.Candidates {
		params := candidateParams(unwrapExternal(c))
		if params == nil || len(params) != len(args) || !paramsMatchArgs(params, args) {
			continue
		}
		return c
	}
	return nil
}

// candidateParams returns d's formal parameter list, or nil if d is
// neither a Subroutine nor a Function.
func candidateParams(d symbol.Declaration) []*symbol.Variable {
	switch d := d.(type) {
	case *symbol.Subroutine:
		return d.Params
	case *symbol.Function:
		return d.Params
	default:
		return nil
	}
}

// paramsMatchArgs reports whether every arg's type equals the
// correspondingly-positioned param's type by base and kind.
func paramsMatchArgs(params []*symbol.Variable, args []ir.Expression) bool {
	for i, p := range params {
		at := args[i].Type()
		if at.Base() != p.Type.Base() || at.Kind() != p.Type.Kind() {
			return false
		}
	}
	return true
}

// materializeIntrinsic brings an intrinsic module's member into existence
// the first time it is referenced (spec.md §6.3), caching it in the
// owning intrinsic module's member scope so a second reference in the
// same run reuses the same *symbol.Function.
func (a *Analyzer) materializeIntrinsic(scope *symbol.Scope, moduleName, name string) (symbol.Declaration, types.Type, error) {
	mod, err := a.Loader.LoadModule(a.Arena, scope, moduleName, token.Position{}, true)
	if err != nil {
		return nil, types.Type{}, err
	}
	if existing, ok := mod.MemberScope.LookupLocal(name); ok {
		fn := existing.(*symbol.Function)
		return fn, fn.ReturnVar.Type, nil
	}

	var sig intrinsic.Signature
	if intrinsic.IsElementary(name) {
		sig = intrinsic.ElementarySignature()
	} else {
		r4 := types.New(types.Real, 4)
		sig = intrinsic.Signature{Module: moduleName, Params: []types.Type{r4}, Returns: r4}
	}

	retVar := &symbol.Variable{Name: name, Type: sig.Returns, Intent: symbol.IntentReturn, OwnerScope: mod.MemberScope}
	params := make([]*symbol.Variable, len(sig.Params))
	for i, pt := range sig.Params {
		params[i] = &symbol.Variable{Name: "arg", Type: pt, Intent: symbol.IntentIn, OwnerScope: mod.MemberScope}
	}
	fn := &symbol.Function{
		Name:       name,
		OwnerScope: mod.MemberScope,
		Params:     params,
		ABI:        symbol.ABIIntrinsic,
		Access:     symbol.Public,
		ReturnVar:  retVar,
	}
	mod.MemberScope.ForceDefine(name, fn)
	scope.ForceDefine(name, fn)
	return fn, fn.ReturnVar.Type, nil
}
