package modules

import (
	"testing"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

func TestLoadModuleIsIdempotent(t *testing.T) {
	unit := &ast.ModuleUnit{Name: "m"}
	loader := NewMemoryLoader([]*ast.ModuleUnit{unit})
	arena := NewArena()

	first, err := loader.LoadModule(arena, arena.Global, "m", token.Position{}, false)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := loader.LoadModule(arena, arena.Global, "m", token.Position{}, false)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Errorf("LoadModule should be idempotent: got two distinct *symbol.Module values")
	}
}

func TestLoadModuleUnknownNameErrors(t *testing.T) {
	loader := NewMemoryLoader(nil)
	arena := NewArena()
	if _, err := loader.LoadModule(arena, arena.Global, "missing", token.Position{}, false); err == nil {
		t.Fatal("expected an error for an unresolvable module name")
	}
}

func TestImportUseOnlyRenames(t *testing.T) {
	arena := NewArena()
	mod := &symbol.Module{Name: "m", MemberScope: symbol.NewScope(arena.Global)}
	v := &symbol.Variable{Name: "pi", Type: types.New(types.Real, 8)}
	mod.MemberScope.Define("pi", v)

	scope := symbol.NewScope(arena.Global)
	use := &ast.UseStatement{
		Module:  "m",
		HasOnly: true,
		Only:    []ast.UseOnlyItem{{Local: "three_one_four", Original: "pi"}},
	}
	if err := ImportUse(scope, mod, use); err != nil {
		t.Fatalf("ImportUse: %v", err)
	}
	decl, ok := scope.LookupLocal("three_one_four")
	if !ok {
		t.Fatal("expected the renamed alias to be defined")
	}
	ext, ok := decl.(*symbol.ExternalSymbol)
	if !ok {
		t.Fatalf("decl = %T, want *symbol.ExternalSymbol", decl)
	}
	if ext.Underlying != symbol.Declaration(v) {
		t.Errorf("ExternalSymbol should point at the original Variable")
	}
}

func TestImportUseBareImportsEverythingPublic(t *testing.T) {
	arena := NewArena()
	mod := &symbol.Module{Name: "m", MemberScope: symbol.NewScope(arena.Global)}
	pub := &symbol.Variable{Name: "pub", Type: types.New(types.Integer, 4)}
	priv := &symbol.Variable{Name: "priv", Type: types.New(types.Integer, 4)}
	mod.MemberScope.Define("pub", pub)
	mod.MemberScope.Define("priv", priv)
	mod.MemberScope.SetAccess("priv", symbol.Private)

	scope := symbol.NewScope(arena.Global)
	if err := ImportUse(scope, mod, &ast.UseStatement{Module: "m"}); err != nil {
		t.Fatalf("ImportUse: %v", err)
	}
	if _, ok := scope.LookupLocal("pub"); !ok {
		t.Error("expected the public member to be imported")
	}
	if _, ok := scope.LookupLocal("priv"); ok {
		t.Error("a private member must not be imported by a bare `use`")
	}
}
