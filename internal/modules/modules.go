// Package modules resolves `use` statements: spec.md §6.4's ModuleLoader
// contract and §4.4's external-symbol import wiring. It is grounded on
// funvibe-funxy's internal/analyzer ModuleLoader/LoadedModule interfaces
// (analyzer.go), rebuilt for Fortran's `use M` / `use M, only: a, b => c`
// syntax instead of funxy's package-path imports.
package modules

import (
	"fmt"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/intrinsic"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
)

// Arena owns every Scope and Module allocated while resolving a
// translation unit, the same role funxy's Analyzer.symbolTable plays for
// its single global table — here split out because a loaded module's
// scope tree must outlive the translation unit that first demanded it
// (spec.md §6.4: "a module loaded once stays resident for the remainder
// of the run").
type Arena struct {
	Global  *symbol.Scope
	modules map[string]*symbol.Module
}

// NewArena builds an Arena with a single global scope, mirroring funxy's
// top-level symbols.NewSymbolTable().
func NewArena() *Arena {
	return &Arena{
		Global:  symbol.NewScope(nil),
		modules: make(map[string]*symbol.Module),
	}
}

// ModuleLoader is spec.md §6.4's loader contract: LoadModule must be
// idempotent — calling it twice for the same name returns the same
// *symbol.Module rather than re-parsing or re-defining it (spec.md §4.4:
// "a module already resident in the arena is reused, never rebuilt").
type ModuleLoader interface {
	LoadModule(arena *Arena, parentScope *symbol.Scope, name string, loc token.Position, intrinsicOnly bool) (*symbol.Module, error)
}

// MemoryLoader is a ModuleLoader backed by translation units already held
// in memory — the shape used when every source module of a program is
// analyzed together in one pipeline run, the common case for
// cmd/fortran-asr. It is the direct analogue of funxy's LoadedModule
// cache keyed by package path (analyzer.go's ModuleLoader.GetModule).
type MemoryLoader struct {
	units map[string]*ast.ModuleUnit
}

// NewMemoryLoader indexes every module unit in units by name.
func NewMemoryLoader(units []*ast.ModuleUnit) *MemoryLoader {
	m := &MemoryLoader{units: make(map[string]*ast.ModuleUnit, len(units))}
	for _, u := range units {
		m.units[u.Name] = u
	}
	return m
}

// LoadModule implements ModuleLoader. Intrinsic modules
// (lfortran_intrinsic_kind/array/math) are created on first request with an
// empty member scope rather than looked up in m.units; the intrinsic
// registry is not consulted here.
func (m *MemoryLoader) LoadModule(arena *Arena, parentScope *symbol.Scope, name string, loc token.Position, intrinsicOnly bool) (*symbol.Module, error) {
	if mod, ok := arena.modules[name]; ok {
		return mod, nil // idempotent: already resident
	}

	if intrinsicOnly {
		mod := materializeIntrinsicModule(arena, name)
		arena.modules[name] = mod
		return mod, nil
	}

	unit, ok := m.units[name]
	if !ok {
		return nil, fmt.Errorf("%s: '%s' must be a module", loc, name)
	}

	memberScope := symbol.NewScope(arena.Global)
	mod := &symbol.Module{
		Name:        unit.Name,
		OwnerScope:  parentScope,
		MemberScope: memberScope,
	}
	// Registered before the caller continues so a cyclic `use` between two
	// modules sees the in-progress Module instead of recursing forever,
	// mirroring funxy's IsHeadersAnalyzing guard (analyzer.go).
	arena.modules[name] = mod
	return mod, nil
}

// materializeIntrinsicModule builds the minimal Module/scope pair backing
// one of the three fixed intrinsic module names. MemberScope starts empty;
// a member is defined in it only when the analyzer materializes that
// intrinsic for a call (analyzer.materializeIntrinsic), so a `use ...,
// only:` list does not find a member no call has named yet.
func materializeIntrinsicModule(arena *Arena, name string) *symbol.Module {
	return &symbol.Module{
		Name:        name,
		OwnerScope:  arena.Global,
		MemberScope: symbol.NewScope(arena.Global),
	}
}

// IsIntrinsicModuleName reports whether name is one of the three fixed
// intrinsic module names spec.md §6.3 enumerates.
func IsIntrinsicModuleName(name string) bool {
	return name == intrinsic.ModuleKind || name == intrinsic.ModuleArray || name == intrinsic.ModuleMath
}
