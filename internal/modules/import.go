package modules

import (
	"fmt"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/symbol"
)

// ImportUse wires one `use` statement's aliases into scope as
// symbol.ExternalSymbol declarations (spec.md §4.4). A bare `use M` (no
// `only:`) imports every public name of M; `use M, only: a, b => c`
// imports exactly the listed names, `c` renamed locally to `b`.
func ImportUse(scope *symbol.Scope, mod *symbol.Module, use *ast.UseStatement) error {
	if !use.HasOnly {
		for _, name := range mod.MemberScope.Names() {
			if mod.MemberScope.AccessOf(name) == symbol.Private {
				continue
			}
			if err := importOne(scope, mod, name, name); err != nil {
				return err
			}
		}
		return nil
	}
	for _, item := range use.Only {
		if err := importOne(scope, mod, item.Local, item.Original); err != nil {
			return err
		}
	}
	return nil
}

// importOne imports mod's member `original`, bound locally as `local`.
// Per spec.md §4.4, importing an ExternalSymbol collapses the chain via
// symbol.NewExternalSymbol rather than wrapping it again.
func importOne(scope *symbol.Scope, mod *symbol.Module, local, original string) error {
	underlying, ok := mod.MemberScope.LookupLocal(original)
	if !ok {
		return fmt.Errorf("'%s' not declared in module '%s'", original, mod.Name)
	}
	alias := symbol.NewExternalSymbol(local, mod.Name, original, symbol.Public, underlying, scope)
	return scope.Define(local, alias)
}

// MangledFieldType builds the cross-module alias name
// `1_<moduleName>_<typeName>` for a derived type declared in another
// module. Nothing in the analyzer calls it: field-reference lowering
// resolves fields through the DerivedType the base's type points at and
// defines no alias in the using scope.
func MangledFieldType(moduleName, typeName string) string {
	return "1_" + moduleName + "_" + typeName
}
