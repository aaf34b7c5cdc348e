// Package ast defines the input parse tree: the syntactic representation of
// a Fortran translation unit as produced by the (external) lexer and
// parser. Semantic analysis (internal/analyzer) walks this tree twice and
// never mutates it; its output is the typed IR in internal/ir.
//
// The node shapes below follow the parse-tree conventions spec.md §6.1
// describes: every node carries a source location, and declarative,
// executable, and expression constructs each map onto their own node kind.
package ast

import "github.com/soypat/fortran-asr/internal/token"

// Node is the base interface implemented by every parse-tree node.
type Node interface {
	Pos() token.Position
	Accept(v Visitor)
}

// Expression is a Node appearing where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node appearing in an executable body.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a Node appearing in a unit's specification part.
type Declaration interface {
	Node
	declarationNode()
}

// ProgramUnit is a top-level construct: PROGRAM, MODULE, SUBROUTINE,
// FUNCTION.
type ProgramUnit interface {
	Statement
	programUnitNode()
}

// TranslationUnit is the root of one parsed source file; it may contain any
// mix of modules, programs, and external procedures (GLOSSARY).
type TranslationUnit struct {
	File  string
	Units []ProgramUnit
}

func (t *TranslationUnit) Pos() token.Position {
	if len(t.Units) == 0 {
		return token.Position{File: t.File}
	}
	return t.Units[0].Pos()
}
func (t *TranslationUnit) Accept(v Visitor) { v.VisitTranslationUnit(t) }

// ---------------------------------------------------------------------------
// Program units
// ---------------------------------------------------------------------------

// ModuleUnit is a `module M ... end module` construct.
type ModuleUnit struct {
	Position     token.Position
	Name         string
	Uses         []*UseStatement
	Declarations []Declaration
	Interfaces   []*InterfaceBlock
	DerivedTypes []*DerivedTypeDecl
	Contains     []ProgramUnit // module procedures after CONTAINS
}

func (m *ModuleUnit) Pos() token.Position  { return m.Position }
func (m *ModuleUnit) Accept(v Visitor)     { v.VisitModule(m) }
func (m *ModuleUnit) statementNode()       {}
func (m *ModuleUnit) programUnitNode()     {}

// ProgramMain is a `program P ... end program` construct.
type ProgramMain struct {
	Position     token.Position
	Name         string
	Uses         []*UseStatement
	Declarations []Declaration
	Body         []Statement
	Contains     []ProgramUnit
}

func (p *ProgramMain) Pos() token.Position { return p.Position }
func (p *ProgramMain) Accept(v Visitor)    { v.VisitProgram(p) }
func (p *ProgramMain) statementNode()      {}
func (p *ProgramMain) programUnitNode()    {}

// SubroutineDecl is a `subroutine S(...) ... end subroutine` construct, or
// an interface-only forward declaration when IsInterfaceOnly is set.
type SubroutineDecl struct {
	Position        token.Position
	Name            string
	Params          []string // formal parameter names, in order
	Recursive       bool
	Pure            bool
	Elemental       bool
	IsInterfaceOnly bool
	Uses            []*UseStatement
	Declarations    []Declaration
	Body            []Statement
	Contains        []ProgramUnit
}

func (s *SubroutineDecl) Pos() token.Position { return s.Position }
func (s *SubroutineDecl) Accept(v Visitor)    { v.VisitSubroutine(s) }
func (s *SubroutineDecl) statementNode()      {}
func (s *SubroutineDecl) programUnitNode()    {}

// FunctionDecl is a `function F(...) [result(r)] ... end function`
// construct, or an interface-only forward declaration.
type FunctionDecl struct {
	Position        token.Position
	Name            string
	Params          []string
	ResultName      string // empty unless RESULT(name) is present
	PrefixType      *TypeSpec
	Recursive       bool
	Pure            bool
	Elemental       bool
	IsInterfaceOnly bool
	Uses            []*UseStatement
	Declarations    []Declaration
	Body            []Statement
	Contains        []ProgramUnit
}

func (f *FunctionDecl) Pos() token.Position { return f.Position }
func (f *FunctionDecl) Accept(v Visitor)    { v.VisitFunction(f) }
func (f *FunctionDecl) statementNode()      {}
func (f *FunctionDecl) programUnitNode()    {}

// ---------------------------------------------------------------------------
// Declarative constructs
// ---------------------------------------------------------------------------

// UseStatement is `use M` or `use M, only: a, b => c`.
type UseStatement struct {
	Position token.Position
	Module   string
	Only     []UseOnlyItem // empty means "import everything"
	HasOnly  bool
}

func (u *UseStatement) Pos() token.Position { return u.Position }
func (u *UseStatement) Accept(v Visitor)    { v.VisitUse(u) }
func (u *UseStatement) statementNode()      {}

// UseOnlyItem is one entry of a `use M, only: ...` list; Local is equal to
// Original unless a `Local => Original` rename is present.
type UseOnlyItem struct {
	Local    string
	Original string
}

// AccessStatement is a bare `private` / `public` or a `private :: name, ...`
// / `public :: name, ...` attribute-only declaration.
type AccessStatement struct {
	Position token.Position
	Public   bool // false means private
	Names    []string
}

func (a *AccessStatement) Pos() token.Position { return a.Position }
func (a *AccessStatement) Accept(v Visitor)    { v.VisitAccessStatement(a) }
func (a *AccessStatement) declarationNode()    {}

// OptionalStatement is `optional :: name, ...`.
type OptionalStatement struct {
	Position token.Position
	Names    []string
}

func (o *OptionalStatement) Pos() token.Position { return o.Position }
func (o *OptionalStatement) Accept(v Visitor)    { v.VisitOptionalStatement(o) }
func (o *OptionalStatement) declarationNode()    {}

// TypeSpec is the base-type portion of a declaration:
// `real(dp), dimension(3), intent(in) :: x`'s `real(dp)`.
type TypeSpec struct {
	Position  token.Position
	BaseName  string     // INTEGER | REAL | COMPLEX | CHARACTER | LOGICAL | TYPE | CLASS
	KindExpr  Expression // optional: the argument to real(dp) etc.
	TypeName  string     // for TYPE(t) / CLASS(t): the derived-type name
}

func (t *TypeSpec) Pos() token.Position { return t.Position }

// DimSpec is one dimension bound of an array, e.g. `3`, `lo:hi`, or `:`
// (deferred shape, allocatable).
type DimSpec struct {
	Lower    Expression // nil means default lower bound 1
	Upper    Expression // nil for a deferred-shape `:` dimension
	Deferred bool
}

// VariableDecl is a typed declaration statement, e.g.
// `real(dp), dimension(3), intent(in) :: x, y`.
type VariableDecl struct {
	Position   token.Position
	Type       *TypeSpec
	Dims       []DimSpec
	Pointer    bool
	Allocatable bool
	Parameter  bool
	Intent     string // "", "in", "out", "inout"
	Entities   []DeclEntity
}

func (d *VariableDecl) Pos() token.Position { return d.Position }
func (d *VariableDecl) Accept(v Visitor)    { v.VisitVariableDecl(d) }
func (d *VariableDecl) declarationNode()    {}

// DeclEntity is one name in a VariableDecl's entity list, with its own
// optional array spec (overriding the decl-level Dims) and initializer.
type DeclEntity struct {
	Name        string
	Dims        []DimSpec // overrides VariableDecl.Dims when non-empty
	Initializer Expression
}

// InterfaceBlock groups either a generic-procedure interface
// (`interface name ... end interface`) or a set of abstract/forward
// procedure interfaces.
type InterfaceBlock struct {
	Position   token.Position
	GenericName string // empty for a plain (non-generic) interface block
	Procedures []*SubroutineDecl
	Functions  []*FunctionDecl
}

func (i *InterfaceBlock) Pos() token.Position { return i.Position }
func (i *InterfaceBlock) Accept(v Visitor)    { v.VisitInterfaceBlock(i) }
func (i *InterfaceBlock) declarationNode()    {}

// DerivedTypeDecl is `type [,access] :: name ... end type`.
type DerivedTypeDecl struct {
	Position    token.Position
	Name        string
	Public      bool
	Fields      []*VariableDecl
	Procedures  []ClassProcedureSpec // `procedure :: name => target` entries
}

func (d *DerivedTypeDecl) Pos() token.Position { return d.Position }
func (d *DerivedTypeDecl) Accept(v Visitor)    { v.VisitDerivedType(d) }
func (d *DerivedTypeDecl) declarationNode()    {}

// ClassProcedureSpec is one `procedure :: localName => targetName` (or bare
// `procedure :: name`, where localName == targetName) entry inside a
// `contains` section of a derived type.
type ClassProcedureSpec struct {
	Position   token.Position
	LocalName  string
	TargetName string
}
