// Package types implements the Type variants of spec.md §3 and the
// table-driven implicit-cast rule engine of spec.md §4.3. It is the
// Fortran-domain analogue of the teacher's internal/typesystem package
// (github.com/funvibe/funxy/internal/typesystem), rebuilt around Fortran's
// closed, nominal type system instead of Hindley-Milner inference: there are
// no type variables or unification here, only a fixed set of base types,
// their kind/dims attributes, and a pointer flag.
package types

import (
	"fmt"
	"strings"

	"github.com/soypat/fortran-asr/internal/token"
)

// Base is one of the seven base type tags of spec.md §3. Pointer-ness is a
// separate flag on Type rather than a distinct Base, but IntegerPointer
// etc. are still produced as a convenience via AsPointer.
type Base int

const (
	Integer Base = iota
	Real
	Complex
	Character
	Logical
	Derived
	Class
)

func (b Base) String() string {
	switch b {
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	case Character:
		return "Character"
	case Logical:
		return "Logical"
	case Derived:
		return "Derived"
	case Class:
		return "Class"
	default:
		return "<invalid base>"
	}
}

// BoundExpr is the narrow shape a typed-IR expression must satisfy to serve
// as a dimension bound. It is defined here (rather than importing
// internal/ir's concrete Expression type) so that internal/ir can depend on
// internal/types for the Type field every IR expression node carries
// without creating an import cycle; ir.Expression satisfies this interface
// structurally.
type BoundExpr interface {
	Pos() token.Position
}

// Dim is one dimension span of an array type. A nil Lower means the default
// lower bound of 1 (spec.md §4.2: allocate arguments missing a lower bound
// default to 1); a nil Upper with Deferred set is a deferred-shape `:`
// dimension (only legal on an allocatable or pointer-typed array).
type Dim struct {
	Lower    BoundExpr
	Upper    BoundExpr
	Deferred bool
}

func (d Dim) String() string {
	switch {
	case d.Deferred:
		return ":"
	case d.Lower == nil:
		return "dim"
	default:
		return "lo:hi"
	}
}

// DeclRef is the narrow shape a symbol-table declaration must satisfy to be
// referenced by a Derived or Class type, avoiding an import cycle with
// internal/symbol (which itself imports internal/types for every
// Declaration's Type field).
type DeclRef interface {
	DeclName() string
}

// Type is a single, closed, resolved Fortran type: one of the seven Base
// variants, carrying a kind, a dimension list (empty for a scalar), a
// pointer flag, and — for Derived/Class — a back-reference to the owning
// declaration.
type Type struct {
	base    Base
	kind    int
	dims    []Dim
	pointer bool
	decl    DeclRef // non-nil only for Derived/Class
}

// New builds a scalar or array Type of the given base and kind.
func New(base Base, kind int, dims ...Dim) Type {
	return Type{base: base, kind: kind, dims: dims}
}

// NewDerived builds a Derived (or, with class=true, Class) type referencing
// decl, which must be the DerivedType declaration it names.
func NewDerived(decl DeclRef, class bool, dims ...Dim) Type {
	b := Derived
	if class {
		b = Class
	}
	return Type{base: b, kind: 0, dims: dims, decl: decl}
}

func (t Type) Base() Base        { return t.base }
func (t Type) Kind() int         { return t.kind }
func (t Type) Dims() []Dim       { return t.dims }
func (t Type) Rank() int         { return len(t.dims) }
func (t Type) IsArray() bool     { return len(t.dims) > 0 }
func (t Type) IsPointer() bool   { return t.pointer }
func (t Type) DeclRef() DeclRef  { return t.decl }

// AsPointer returns a copy of t with the pointer flag set. Spec.md §3: "The
// pointer companions carry identical attributes; the distinction records
// Fortran's `pointer` attribute and controls both assignment semantics and
// cast legality."
func (t Type) AsPointer() Type {
	t.pointer = true
	return t
}

// AsValue returns a copy of t with the pointer flag cleared — "reading
// through a pointer yields its base" (spec.md §4.3's pointer normalisation).
func (t Type) AsValue() Type {
	t.pointer = false
	return t
}

// SameBase reports whether t and o share a Base, ignoring kind/dims/pointer.
func (t Type) SameBase(o Type) bool { return t.base == o.base }

// Identical reports whether t and o are the same base, kind, dims-rank, and
// pointer flag (array bound expressions are not compared: spec.md's
// design notes call shape-sensitivity in generic resolution "a known
// imprecision — do not tighten without corpus review", and the same holds
// here for plain equality).
func (t Type) Identical(o Type) bool {
	return t.base == o.base && t.kind == o.kind && t.pointer == o.pointer && len(t.dims) == len(o.dims) &&
		((t.base != Derived && t.base != Class) || t.decl == o.decl)
}

func (t Type) String() string {
	var b strings.Builder
	if t.pointer {
		b.WriteString(t.base.String())
		b.WriteString("Pointer")
	} else {
		b.WriteString(t.base.String())
	}
	if t.base != Derived && t.base != Class {
		fmt.Fprintf(&b, "(%d)", t.kind)
	} else if t.decl != nil {
		fmt.Fprintf(&b, "(%s)", t.decl.DeclName())
	}
	if len(t.dims) > 0 {
		dims := make([]string, len(t.dims))
		for i, d := range t.dims {
			dims[i] = d.String()
		}
		fmt.Fprintf(&b, "[%s]", strings.Join(dims, ", "))
	}
	return b.String()
}

// Describe returns the destination description used in diagnostic messages
// (spec.md §6.5: "Only <allowed types> can be assigned to <destination
// type>"), e.g. "Integer" or "Real Pointer".
func (t Type) Describe() string {
	if t.pointer {
		return t.base.String() + " Pointer"
	}
	return t.base.String()
}

// Logical4 is the fixed result type of every comparison node (spec.md
// §4.2: "for comparison, the result type is Logical(4)").
var Logical4 = New(Logical, 4)
