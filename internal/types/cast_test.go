package types

import "testing"

func TestResolveBinaryIntegerReal(t *testing.T) {
	i4 := New(Integer, 4)
	r4 := New(Real, 4)

	dec, err := Resolve(Binary, i4, r4)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !dec.CastLeft || dec.CastRight {
		t.Errorf("expected left (Integer) operand cast, got %+v", dec)
	}
	if dec.Tag != IntegerToReal {
		t.Errorf("Tag = %s, want IntegerToReal", dec.Tag)
	}
	if !dec.Result.Identical(r4) {
		t.Errorf("Result = %s, want %s", dec.Result, r4)
	}
}

func TestResolveBinaryCommutes(t *testing.T) {
	i4 := New(Integer, 4)
	r4 := New(Real, 4)

	dec, err := Resolve(Binary, r4, i4)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if dec.CastLeft || !dec.CastRight {
		t.Errorf("expected right (Integer) operand cast, got %+v", dec)
	}
}

func TestResolveKindUpgrade(t *testing.T) {
	r4 := New(Real, 4)
	r8 := New(Real, 8)

	dec, err := Resolve(Binary, r4, r8)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if dec.Tag != KindUpgrade {
		t.Errorf("Tag = %s, want KindUpgrade", dec.Tag)
	}
	if !dec.CastLeft {
		t.Errorf("expected the lower-kind (Real(4)) operand cast")
	}
	if !dec.Result.Identical(r8) {
		t.Errorf("Result = %s, want %s", dec.Result, r8)
	}
}

func TestResolveCharacterLogicalError(t *testing.T) {
	ch := New(Character, 1)
	lg := New(Logical, 4)

	_, err := Resolve(Binary, ch, lg)
	if err == nil {
		t.Fatalf("expected a type error for Character/Logical binary op")
	}
}

func TestResolveAssignmentIntegerToCharacterError(t *testing.T) {
	i4 := New(Integer, 4)
	ch := New(Character, 1)

	_, err := Resolve(Assignment, i4, ch)
	if err == nil {
		t.Fatalf("expected Integer -> Character assignment to be rejected")
	}
	var castErr *CastTypeError
	if _, ok := err.(*CastTypeError); !ok {
		t.Errorf("error type = %T, want *CastTypeError", err)
	} else {
		castErr = err.(*CastTypeError)
		_ = castErr
	}
}

func TestResolveAssignmentRealToDerivedOK(t *testing.T) {
	r4 := New(Real, 4)
	d := New(Derived, 0)

	dec, err := Resolve(Assignment, r4, d)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if dec.CastLeft {
		t.Errorf("table says Real->Derived is 'ok' (no cast node), got CastLeft=true")
	}
}

func TestPointerNormalisation(t *testing.T) {
	i4 := New(Integer, 4)
	i4ptr := i4.AsPointer()
	r4 := New(Real, 4)

	dec, err := Resolve(Binary, i4ptr, r4)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if dec.Tag != IntegerToReal {
		t.Errorf("Tag = %s, want IntegerToReal (pointer should normalise to its base)", dec.Tag)
	}
}
