package diagnostics

import (
	"testing"

	"github.com/soypat/fortran-asr/internal/token"
)

func TestFixedTemplates(t *testing.T) {
	pos := token.Position{File: "a.f90", StartLine: 1}
	if got := VariableNotDeclared(pos, "x").Message; got != "Variable 'x' not declared" {
		t.Errorf("got %q", got)
	}
	if got := AlreadyDefined(pos, "Subroutine").Message; got != "Subroutine already defined" {
		t.Errorf("got %q", got)
	}
	if got := AssignmentTypeMismatch(pos, "Integer, Real", "Character").Message; got != "Only Integer, Real can be assigned to Character" {
		t.Errorf("got %q", got)
	}
}

func TestBagRecoverCapturesPanic(t *testing.T) {
	bag := &Bag{}
	func() {
		defer bag.Recover(token.Position{})
		panic("boom")
	}()
	if !bag.HasErrors() {
		t.Fatalf("expected Recover to append an internal diagnostic")
	}
	if bag.Items()[0].Severity != SeverityInternal {
		t.Errorf("expected SeverityInternal, got %v", bag.Items()[0].Severity)
	}
}

func TestBagWarningsDoNotCountAsErrors(t *testing.T) {
	bag := &Bag{}
	bag.Add(Warningf(token.Position{}, "just a heads up"))
	if bag.HasErrors() {
		t.Fatalf("a warning-only bag should not report HasErrors")
	}
}
