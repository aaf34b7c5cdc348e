package symbol

import (
	"testing"

	"github.com/soypat/fortran-asr/internal/types"
)

func TestLexicalLookupWalksParents(t *testing.T) {
	outer := NewScope(nil)
	outer.Define("x", &Variable{Name: "x", Type: types.New(types.Integer, 4), Intent: IntentLocal})

	inner := NewScope(outer)
	if _, ok := inner.LookupLocal("x"); ok {
		t.Fatalf("LookupLocal should not see parent scope entries")
	}
	decl, ok := inner.Lookup("x")
	if !ok {
		t.Fatalf("Lookup should walk to the parent scope")
	}
	if decl.DeclName() != "x" {
		t.Errorf("DeclName() = %q, want x", decl.DeclName())
	}
}

func TestRedeclarationIsAnErrorExceptGlobalAndInterfaceShadow(t *testing.T) {
	global := NewScope(nil)
	v := &Variable{Name: "x", Type: types.New(types.Integer, 4)}
	if err := global.Define("x", v); err != nil {
		t.Fatalf("first define: %v", err)
	}
	// (i) global scope: second declaration replaces the first.
	v2 := &Variable{Name: "x", Type: types.New(types.Real, 4)}
	if err := global.Define("x", v2); err != nil {
		t.Fatalf("global redefine should replace silently: %v", err)
	}
	got, _ := global.LookupLocal("x")
	if got != Declaration(v2) {
		t.Errorf("global scope should hold the second declaration")
	}

	nonGlobal := NewScope(global)
	iface := &Subroutine{Name: "foo", DefinitionKind: InterfaceOnly}
	if err := nonGlobal.Define("foo", iface); err != nil {
		t.Fatalf("first define: %v", err)
	}
	impl := &Subroutine{Name: "foo", DefinitionKind: Implementation}
	// (ii) interface-only shadowed by its implementation.
	if err := nonGlobal.Define("foo", impl); err != nil {
		t.Fatalf("interface shadow should succeed: %v", err)
	}

	other := &Variable{Name: "bar", Type: types.New(types.Integer, 4)}
	if err := nonGlobal.Define("bar", other); err != nil {
		t.Fatalf("first define of bar: %v", err)
	}
	dup := &Variable{Name: "bar", Type: types.New(types.Integer, 4)}
	err := nonGlobal.Define("bar", dup)
	if err == nil {
		t.Fatalf("expected a redeclaration error for a plain duplicate in a non-global scope")
	}
	if err.Error() != "Variable already defined" {
		t.Errorf("error = %q, want %q", err.Error(), "Variable already defined")
	}
}

func TestExternalSymbolChainCollapses(t *testing.T) {
	root := NewScope(nil)
	sub := &Subroutine{Name: "bar"}
	first := NewExternalSymbol("bar", "m", "bar", Public, sub, root)
	second := NewExternalSymbol("baz", "n", "bar", Public, first, root)

	if _, ok := second.Underlying.(*ExternalSymbol); ok {
		t.Fatalf("ExternalSymbol chains must collapse: got %T", second.Underlying)
	}
	if second.Underlying != Declaration(sub) {
		t.Errorf("expected chain to collapse directly to the Subroutine")
	}
}

func TestAddDependencyDeduplicates(t *testing.T) {
	m := &Module{Name: "user"}
	m.AddDependency("iso_fortran_env")
	m.AddDependency("iso_fortran_env")
	m.AddDependency("lfortran_intrinsic_array")
	if len(m.Dependencies) != 2 {
		t.Errorf("Dependencies = %v, want 2 unique entries", m.Dependencies)
	}
}
