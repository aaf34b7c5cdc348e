package analyzer

import (
	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
	"github.com/soypat/fortran-asr/internal/modules"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// pass1Module builds a Module declaration and its member scope, processes
// its `use` statements, declarations, derived types, and interfaces, in
// the textual order spec.md §4.1 requires.
func (a *Analyzer) pass1Module(n *ast.ModuleUnit) {
	scope := symbol.NewScope(a.Arena.Global)
	mod := &symbol.Module{Name: n.Name, OwnerScope: a.Arena.Global, MemberScope: scope}
	if err := a.Arena.Global.Define(n.Name, mod); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Module"))
	}
	a.units[n] = &unitInfo{scope: scope, decl: mod}

	for _, u := range n.Uses {
		a.importUse(scope, mod, u)
	}
	for _, d := range n.Declarations {
		a.pass1Declaration(d, scope, mod)
	}
	for _, dt := range n.DerivedTypes {
		a.pass1DerivedType(dt, scope)
	}
	for _, iface := range n.Interfaces {
		a.pass1Interface(iface, scope)
	}
}

// pass1Program mirrors pass1Module for a PROGRAM unit, which additionally
// carries an executable body lowered in pass 2.
func (a *Analyzer) pass1Program(n *ast.ProgramMain) {
	scope := symbol.NewScope(a.Arena.Global)
	prog := &symbol.Program{Name: n.Name, OwnerScope: a.Arena.Global, MemberScope: scope}
	if err := a.Arena.Global.Define(n.Name, prog); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Program"))
	}
	a.units[n] = &unitInfo{scope: scope, decl: prog}

	for _, u := range n.Uses {
		a.importUse(scope, prog, u)
	}
	for _, d := range n.Declarations {
		a.pass1Declaration(d, scope, prog)
	}
}

// dependencyAdder is satisfied by *symbol.Module and *symbol.Program,
// letting importUse record a `use`d module without a type switch at every
// call site.
type dependencyAdder interface {
	AddDependency(string)
}

func (a *Analyzer) importUse(scope *symbol.Scope, owner dependencyAdder, u *ast.UseStatement) {
	owner.AddDependency(u.Module)
	intrinsicOnly := modules.IsIntrinsicModuleName(u.Module)
	mod, err := a.Loader.LoadModule(a.Arena, scope, u.Module, u.Position, intrinsicOnly)
	if err != nil {
		a.Diags.Add(diagnostics.MustBeAModule(u.Position, u.Module))
		return
	}
	if err := modules.ImportUse(scope, mod, u); err != nil {
		a.Diags.Add(diagnostics.New(u.Position, "%s", err))
	}
}

// pass1Subroutine builds a Subroutine declaration (interface-only or with
// a body scope ready for pass 2) and defines it in parent.
func (a *Analyzer) pass1Subroutine(n *ast.SubroutineDecl, parent *symbol.Scope) *symbol.Subroutine {
	defKind := symbol.Implementation
	if n.IsInterfaceOnly {
		defKind = symbol.InterfaceOnly
	}
	bodyScope := symbol.NewScope(parent)
	sub := &symbol.Subroutine{
		Name:           n.Name,
		OwnerScope:     parent,
		BodyScope:      bodyScope,
		ABI:            symbol.ABISource,
		Access:         symbol.Public,
		DefinitionKind: defKind,
	}
	if err := parent.Define(n.Name, sub); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Subroutine"))
	}
	a.units[n] = &unitInfo{scope: bodyScope, decl: sub}

	for _, u := range n.Uses {
		// A subroutine cannot itself be a dependency source, but its
		// imports still need wiring into its body scope.
		a.importUseNoOwner(bodyScope, u)
	}
	sub.Params = a.pass1ParamsAndDecls(n.Position, n.Params, n.Declarations, bodyScope)
	return sub
}

// pass1Function mirrors pass1Subroutine, additionally promoting the
// return variable (spec.md §4.1: "the function name, or its RESULT(r)
// alias, is promoted to a Variable with intent Return if no explicit
// declaration already defined one").
func (a *Analyzer) pass1Function(n *ast.FunctionDecl, parent *symbol.Scope) *symbol.Function {
	defKind := symbol.Implementation
	if n.IsInterfaceOnly {
		defKind = symbol.InterfaceOnly
	}
	bodyScope := symbol.NewScope(parent)
	fn := &symbol.Function{
		Name:           n.Name,
		OwnerScope:     parent,
		BodyScope:      bodyScope,
		ABI:            symbol.ABISource,
		Access:         symbol.Public,
		DefinitionKind: defKind,
	}
	if err := parent.Define(n.Name, fn); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Function"))
	}
	a.units[n] = &unitInfo{scope: bodyScope, decl: fn}

	for _, u := range n.Uses {
		a.importUseNoOwner(bodyScope, u)
	}
	fn.Params = a.pass1ParamsAndDecls(n.Position, n.Params, n.Declarations, bodyScope)

	resultName := n.ResultName
	if resultName == "" {
		resultName = n.Name
	}
	retVar, ok := bodyScope.LookupLocal(resultName)
	if !ok {
		retTy := types.New(types.Real, 4)
		if n.PrefixType != nil {
			retTy = a.resolveTypeSpec(n.PrefixType, nil, bodyScope)
		}
		v := &symbol.Variable{Name: resultName, Type: retTy, Intent: symbol.IntentReturn, OwnerScope: bodyScope}
		if err := bodyScope.Define(resultName, v); err != nil {
			a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Variable"))
		}
		fn.ReturnVar = v
	} else if v, ok := retVar.(*symbol.Variable); ok {
		if n.PrefixType != nil {
			a.Diags.Add(diagnostics.ReturnTypeDeclaredTwice(n.Position))
		}
		v.Intent = symbol.IntentReturn
		fn.ReturnVar = v
	}
	return fn
}

func (a *Analyzer) importUseNoOwner(scope *symbol.Scope, u *ast.UseStatement) {
	intrinsicOnly := modules.IsIntrinsicModuleName(u.Module)
	mod, err := a.Loader.LoadModule(a.Arena, scope, u.Module, u.Position, intrinsicOnly)
	if err != nil {
		a.Diags.Add(diagnostics.MustBeAModule(u.Position, u.Module))
		return
	}
	if err := modules.ImportUse(scope, mod, u); err != nil {
		a.Diags.Add(diagnostics.New(u.Position, "%s", err))
	}
}

// pass1ParamsAndDecls defines every declaration in decls into scope (in
// textual order) and then resolves params to the *symbol.Variable each
// formal parameter name was given, in declared order (spec.md §4.1:
// "dummy arguments must each have a matching declaration"). A formal with
// no declaration is diagnosed at pos and given an Integer(4) placeholder.
func (a *Analyzer) pass1ParamsAndDecls(pos token.Position, paramNames []string, decls []ast.Declaration, scope *symbol.Scope) []*symbol.Variable {
	for _, d := range decls {
		a.pass1Declaration(d, scope, nil)
	}
	params := make([]*symbol.Variable, 0, len(paramNames))
	for _, name := range paramNames {
		decl, ok := scope.LookupLocal(name)
		if !ok {
			a.Diags.Add(diagnostics.VariableNotDeclared(pos, name))
			v := &symbol.Variable{Name: name, Type: types.New(types.Integer, 4), Intent: symbol.IntentUnspecified, OwnerScope: scope}
			scope.ForceDefine(name, v)
			params = append(params, v)
			continue
		}
		v, ok := decl.(*symbol.Variable)
		if !ok {
			continue
		}
		if v.Intent == symbol.IntentUnspecified || v.Intent == symbol.IntentLocal {
			v.Intent = symbol.IntentInOut
		}
		params = append(params, v)
	}
	return params
}

// pass1Declaration dispatches one specification-part declaration node.
// owner is non-nil only at module/program scope; it is not consulted here,
// so access and optional statements are applied in every scope.
func (a *Analyzer) pass1Declaration(d ast.Declaration, scope *symbol.Scope, owner interface{}) {
	switch n := d.(type) {
	case *ast.VariableDecl:
		a.pass1VariableDecl(n, scope)
	case *ast.AccessStatement:
		access := symbol.Private
		if n.Public {
			access = symbol.Public
		}
		for _, name := range n.Names {
			scope.SetAccess(name, access)
		}
	case *ast.OptionalStatement:
		for _, name := range n.Names {
			if decl, ok := scope.LookupLocal(name); ok {
				if v, ok := decl.(*symbol.Variable); ok {
					v.Presence = symbol.Optional
				}
			}
		}
	case *ast.InterfaceBlock:
		a.pass1Interface(n, scope)
	case *ast.DerivedTypeDecl:
		a.pass1DerivedType(n, scope)
	}
}

func (a *Analyzer) pass1VariableDecl(n *ast.VariableDecl, scope *symbol.Scope) {
	storage := symbol.StorageDefault
	switch {
	case n.Parameter:
		storage = symbol.StorageParameter
	case n.Allocatable:
		storage = symbol.StorageAllocatable
	}
	intent := symbol.IntentLocal
	switch n.Intent {
	case "in":
		intent = symbol.IntentIn
	case "out":
		intent = symbol.IntentOut
	case "inout":
		intent = symbol.IntentInOut
	}

	for _, ent := range n.Entities {
		dims := n.Dims
		if len(ent.Dims) > 0 {
			dims = ent.Dims
		}
		ty := a.resolveTypeSpec(n.Type, dims, scope)
		if n.Pointer {
			ty = ty.AsPointer()
		}
		v := &symbol.Variable{
			Name:       ent.Name,
			Type:       ty,
			Intent:     intent,
			Storage:    storage,
			Access:     symbol.Public,
			OwnerScope: scope,
		}
		if ent.Initializer != nil {
			v.Initializer = a.lowerInitializerExpr(ent.Initializer, scope)
		}
		if err := scope.Define(ent.Name, v); err != nil {
			a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "Variable"))
		}
	}
}

func (a *Analyzer) resolveTypeSpec(t *ast.TypeSpec, dims []ast.DimSpec, scope *symbol.Scope) types.Type {
	kind := 4
	if t.KindExpr != nil {
		if lit, ok := t.KindExpr.(*ast.IntLiteral); ok {
			kind = int(lit.Value)
		}
	}
	tyDims := a.resolveDims(dims, scope)

	switch t.BaseName {
	case "INTEGER":
		return types.New(types.Integer, kind, tyDims...)
	case "REAL":
		return types.New(types.Real, kind, tyDims...)
	case "COMPLEX":
		return types.New(types.Complex, kind, tyDims...)
	case "CHARACTER":
		return types.New(types.Character, kind, tyDims...)
	case "LOGICAL":
		return types.New(types.Logical, kind, tyDims...)
	case "TYPE", "CLASS":
		decl, ok := scope.Lookup(t.TypeName)
		if !ok {
			a.Diags.Add(diagnostics.SymbolNotDeclared(t.Position, t.TypeName))
			return types.New(types.Integer, 4, tyDims...)
		}
		dt, _ := decl.(*symbol.DerivedType)
		return types.NewDerived(dt, t.BaseName == "CLASS", tyDims...)
	default:
		return types.New(types.Integer, kind, tyDims...)
	}
}

func (a *Analyzer) resolveDims(dims []ast.DimSpec, scope *symbol.Scope) []types.Dim {
	if len(dims) == 0 {
		return nil
	}
	out := make([]types.Dim, len(dims))
	for i, d := range dims {
		var lo, hi types.BoundExpr
		if d.Lower != nil {
			lo = a.lowerInitializerExpr(d.Lower, scope)
		}
		if d.Upper != nil {
			hi = a.lowerInitializerExpr(d.Upper, scope)
		}
		out[i] = types.Dim{Lower: lo, Upper: hi, Deferred: d.Deferred}
	}
	return out
}

// pass1DerivedType builds a DerivedType declaration and its member scope
// holding every field as a Variable plus any type-bound procedures
// (spec.md §4.5).
func (a *Analyzer) pass1DerivedType(n *ast.DerivedTypeDecl, scope *symbol.Scope) *symbol.DerivedType {
	member := symbol.NewScope(scope)
	access := symbol.Public
	if !n.Public {
		access = symbol.Private
	}
	dt := &symbol.DerivedType{Name: n.Name, OwnerScope: scope, MemberScope: member, ABI: symbol.ABISource, Access: access}
	if err := scope.Define(n.Name, dt); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "DerivedType"))
	}
	for _, f := range n.Fields {
		a.pass1VariableDecl(f, member)
	}
	for _, proc := range n.Procedures {
		target, ok := scope.Lookup(proc.TargetName)
		if !ok {
			a.Diags.Add(diagnostics.SymbolNotDeclared(proc.Position, proc.TargetName))
			continue
		}
		cp := &symbol.ClassProcedure{LocalName: proc.LocalName, UnderlyingName: proc.TargetName, Resolved: target, OwnerScope: member}
		member.ForceDefine(proc.LocalName, cp)
	}
	return dt
}

// pass1Interface installs either a generic-procedure overload set or a
// block of forward/abstract interface declarations (spec.md §4.1's
// GenericProcedure construction: shadowed later in the same scope by
// the matching implementation's Define call, per spec.md §4.1's exception
// (ii)).
func (a *Analyzer) pass1Interface(n *ast.InterfaceBlock, scope *symbol.Scope) {
	var candidates []symbol.Declaration
	for _, p := range n.Procedures {
		sub := a.pass1Subroutine(p, scope)
		candidates = append(candidates, sub)
	}
	for _, f := range n.Functions {
		fn := a.pass1Function(f, scope)
		candidates = append(candidates, fn)
	}
	if n.GenericName == "" || len(candidates) == 0 {
		return
	}
	gp := &symbol.GenericProcedure{Name: n.GenericName, OwnerScope: scope, Candidates: candidates}
	if err := scope.Define(n.GenericName, gp); err != nil {
		a.Diags.Add(diagnostics.AlreadyDefined(n.Position, "GenericProcedure"))
	}
}
