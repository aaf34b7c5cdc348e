package intrinsic

import "testing"

func TestOwningModuleRegistry(t *testing.T) {
	cases := map[string]string{
		"kind":      ModuleKind,
		"size":      ModuleArray,
		"allocated": ModuleArray,
		"sin":       ModuleMath,
	}
	for name, want := range cases {
		got, ok := OwningModule(name)
		if !ok {
			t.Fatalf("OwningModule(%q): not found", name)
		}
		if got != want {
			t.Errorf("OwningModule(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestOwningModuleUnknown(t *testing.T) {
	if _, ok := OwningModule("not_an_intrinsic"); ok {
		t.Fatalf("expected unknown name to be unrecognized")
	}
}

func TestElementarySignature(t *testing.T) {
	sig := ElementarySignature()
	if len(sig.Params) != 1 || sig.Params[0].Base() != sig.Returns.Base() {
		t.Errorf("elementary signature should be Real(4) -> Real(4), got %+v", sig)
	}
}
