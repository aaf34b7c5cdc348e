package symbol

import (
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// Declaration is the tagged union of spec.md §3's declaration variants.
// Kind() returns the human-readable tag used in the
// "<Kind> already defined" diagnostic template (spec.md §6.5); DeclName()
// satisfies types.DeclRef so a Type can reference the DerivedType
// declaration it names without an import cycle.
type Declaration interface {
	Kind() string
	DeclName() string
}

// AccessKind is spec.md §3's Variable/Subroutine/... `access` attribute.
type AccessKind int

const (
	Public AccessKind = iota
	Private
)

func (a AccessKind) String() string {
	if a == Private {
		return "private"
	}
	return "public"
}

// IntentKind is spec.md §3's Variable `intent` attribute.
type IntentKind int

const (
	IntentUnspecified IntentKind = iota
	IntentIn
	IntentOut
	IntentInOut
	IntentLocal
	IntentReturn
)

func (i IntentKind) String() string {
	switch i {
	case IntentIn:
		return "in"
	case IntentOut:
		return "out"
	case IntentInOut:
		return "inout"
	case IntentLocal:
		return "local"
	case IntentReturn:
		return "return"
	default:
		return "unspecified"
	}
}

// StorageKind is spec.md §3's Variable `storage` attribute.
type StorageKind int

const (
	StorageDefault StorageKind = iota
	StorageParameter
	StorageAllocatable
)

// PresenceKind is spec.md §3's Variable `presence` attribute.
type PresenceKind int

const (
	Required PresenceKind = iota
	Optional
)

// ABIKind is spec.md §3's Subroutine/Function `ABI tag`.
type ABIKind int

const (
	ABISource ABIKind = iota
	ABIIntrinsic
	ABIInteractive
	ABIExternal
)

// DefinitionKind is spec.md §3's Subroutine/Function `definition kind`.
type DefinitionKind int

const (
	Implementation DefinitionKind = iota
	InterfaceOnly
)

// InitExpr is the narrow shape a typed-IR expression must satisfy to serve
// as a Variable's initializer, avoiding an import cycle with internal/ir
// (symmetric with types.BoundExpr — see internal/types/types.go).
type InitExpr interface {
	Pos() token.Position
}

// Variable is spec.md §3's Variable declaration variant.
type Variable struct {
	Name        string
	Type        types.Type
	Intent      IntentKind
	Storage     StorageKind
	Access      AccessKind
	Presence    PresenceKind
	Initializer InitExpr // nil if undeclared
	OwnerScope  *Scope
}

func (v *Variable) Kind() string     { return "Variable" }
func (v *Variable) DeclName() string { return v.Name }
func (v *Variable) IsAllocatable() bool { return v.Storage == StorageAllocatable }

// Subroutine is spec.md §3's Subroutine declaration variant.
type Subroutine struct {
	Name           string
	OwnerScope     *Scope
	Params         []*Variable // ordered formal parameters
	BodyScope      *Scope      // the subroutine's own scope (built in pass 1, re-entered in pass 2)
	Body           []StmtNode  // empty until pass 2 fills it
	ABI            ABIKind
	Access         AccessKind
	DefinitionKind DefinitionKind
}

func (s *Subroutine) Kind() string     { return "Subroutine" }
func (s *Subroutine) DeclName() string { return s.Name }

// Function is spec.md §3's Function declaration variant: a Subroutine plus
// a return-variable reference.
type Function struct {
	Name           string
	OwnerScope     *Scope
	Params         []*Variable
	BodyScope      *Scope
	Body           []StmtNode
	ABI            ABIKind
	Access         AccessKind
	DefinitionKind DefinitionKind
	ReturnVar      *Variable
}

func (f *Function) Kind() string     { return "Function" }
func (f *Function) DeclName() string { return f.Name }

// Module is spec.md §3's Module declaration variant.
type Module struct {
	Name         string
	OwnerScope   *Scope
	MemberScope  *Scope
	Dependencies []string // every module this one imports at least one symbol from
}

func (m *Module) Kind() string     { return "Module" }
func (m *Module) DeclName() string { return m.Name }

// AddDependency records dep in m.Dependencies if not already present,
// maintaining spec.md §3's "A module's dependency list contains every
// module from which it imports at least one symbol" invariant.
func (m *Module) AddDependency(dep string) {
	for _, d := range m.Dependencies {
		if d == dep {
			return
		}
	}
	m.Dependencies = append(m.Dependencies, dep)
}

// Program is spec.md §3's Program declaration variant: like Module but
// with an executable body.
type Program struct {
	Name         string
	OwnerScope   *Scope
	MemberScope  *Scope
	Dependencies []string
	Body         []StmtNode
}

func (p *Program) Kind() string     { return "Program" }
func (p *Program) DeclName() string { return p.Name }

func (p *Program) AddDependency(dep string) {
	for _, d := range p.Dependencies {
		if d == dep {
			return
		}
	}
	p.Dependencies = append(p.Dependencies, dep)
}

// DerivedType is spec.md §3's DerivedType (record) declaration variant.
type DerivedType struct {
	Name        string
	OwnerScope  *Scope
	MemberScope *Scope // holds Variable fields and ClassProcedure entries
	ABI         ABIKind
	Access      AccessKind
}

func (d *DerivedType) Kind() string     { return "DerivedType" }
func (d *DerivedType) DeclName() string { return d.Name }

// GenericProcedure is spec.md §3's GenericProcedure declaration variant.
// spec.md §3 invariant: "A GenericProcedure contains at least one
// candidate" — enforced by the symbol-table pass before installing one.
type GenericProcedure struct {
	Name       string
	OwnerScope *Scope
	Candidates []Declaration // each a *Subroutine/*Function or an *ExternalSymbol wrapping one
}

func (g *GenericProcedure) Kind() string     { return "GenericProcedure" }
func (g *GenericProcedure) DeclName() string { return g.Name }

// ClassProcedure is spec.md §3's ClassProcedure (type-bound procedure)
// declaration variant.
type ClassProcedure struct {
	LocalName      string
	UnderlyingName string
	Resolved       Declaration // the *Subroutine/*Function this binds to
	OwnerScope     *Scope
}

func (c *ClassProcedure) Kind() string     { return "ClassProcedure" }
func (c *ClassProcedure) DeclName() string { return c.LocalName }

// ExternalSymbol is spec.md §3's ExternalSymbol declaration variant: an
// alias made visible in an importing scope. spec.md §3 invariant: "Every
// ExternalSymbol points at a non-ExternalSymbol declaration (no chains)" —
// enforced by NewExternalSymbol / the module-import wiring in
// internal/modules rather than trusted to callers.
type ExternalSymbol struct {
	Alias        string
	SourceModule string
	OriginalName string
	Access       AccessKind
	Underlying   Declaration
	OwnerScope   *Scope
}

func (e *ExternalSymbol) Kind() string     { return "ExternalSymbol" }
func (e *ExternalSymbol) DeclName() string { return e.Alias }

// NewExternalSymbol builds an ExternalSymbol, collapsing a chain if
// underlying is itself an ExternalSymbol (spec.md §4.4: "When an imported
// symbol is itself an external-symbol, the alias is rewritten to point at
// the underlying declaration so chains do not form").
func NewExternalSymbol(alias, sourceModule, originalName string, access AccessKind, underlying Declaration, owner *Scope) *ExternalSymbol {
	for {
		chain, ok := underlying.(*ExternalSymbol)
		if !ok {
			break
		}
		underlying = chain.Underlying
	}
	return &ExternalSymbol{
		Alias:        alias,
		SourceModule: sourceModule,
		OriginalName: originalName,
		Access:       access,
		Underlying:   underlying,
		OwnerScope:   owner,
	}
}

// StmtNode is the narrow shape a typed-IR statement must satisfy to be
// stored in a Subroutine/Function/Program body, avoiding an import cycle
// with internal/ir (symmetric with InitExpr above).
type StmtNode interface {
	Pos() token.Position
}
