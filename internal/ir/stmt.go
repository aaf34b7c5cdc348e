package ir

import (
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
)

// AssignmentStmt is `lhs = rhs` after the cast engine has run from the RHS
// type to the LHS type (spec.md §4.2).
type AssignmentStmt struct {
	Position token.Position
	LHS      Expression
	RHS      Expression
}

func (s *AssignmentStmt) Pos() token.Position { return s.Position }
func (s *AssignmentStmt) stmtNode()           {}

// PointerAssociateStmt is `p => t` (spec.md §4.2: pointer-typed LHS,
// non-pointer RHS, matching underlying base type).
type PointerAssociateStmt struct {
	Position token.Position
	LHS      Expression
	RHS      Expression
}

func (s *PointerAssociateStmt) Pos() token.Position { return s.Position }
func (s *PointerAssociateStmt) stmtNode()           {}

// AllocateStmt is `allocate(...)`, each target an array-subscript
// expression on an allocatable variable (spec.md §4.2).
type AllocateStmt struct {
	Position token.Position
	Targets  []*ArraySubscript
	Stat     Expression
}

func (s *AllocateStmt) Pos() token.Position { return s.Position }
func (s *AllocateStmt) stmtNode()           {}

// DeallocateStmt is an explicit, source-level `deallocate(...)`.
type DeallocateStmt struct {
	Position token.Position
	Targets  []*symbol.Variable
	Stat     Expression
}

func (s *DeallocateStmt) Pos() token.Position { return s.Position }
func (s *DeallocateStmt) stmtNode()           {}

// ImplicitDeallocateStmt is compiler-inserted: spec.md §4.2's "Implicit
// deallocate at scope tail" and the call-site argument rule both produce
// this node. It never appears in the input parse tree.
type ImplicitDeallocateStmt struct {
	Position token.Position
	Targets  []*symbol.Variable
}

func (s *ImplicitDeallocateStmt) Pos() token.Position { return s.Position }
func (s *ImplicitDeallocateStmt) stmtNode()           {}

// IfStmt is `if (cond) then ... end if`, with zero or more else-if arms
// and an optional else body.
type IfStmt struct {
	Position token.Position
	Cond     Expression
	Then     []symbol.StmtNode
	ElseIfs  []ElseIfClause
	Else     []symbol.StmtNode
}

func (s *IfStmt) Pos() token.Position { return s.Position }
func (s *IfStmt) stmtNode()           {}

// ElseIfClause is one `else if (cond) then ...` arm.
type ElseIfClause struct {
	Cond Expression
	Body []symbol.StmtNode
}

// DoStmt is a counted `do i = lo, hi [, step]` loop; VarDecl resolves the
// loop variable by name (spec.md §4.2).
type DoStmt struct {
	Position token.Position
	VarDecl  *symbol.Variable
	Low      Expression
	High     Expression
	Step     Expression
	Body     []symbol.StmtNode
}

func (s *DoStmt) Pos() token.Position { return s.Position }
func (s *DoStmt) stmtNode()           {}

// DoConcurrentStmt is `do concurrent (i = lo:hi) ...`.
type DoConcurrentStmt struct {
	Position token.Position
	VarDecl  *symbol.Variable
	Low      Expression
	High     Expression
	Body     []symbol.StmtNode
}

func (s *DoConcurrentStmt) Pos() token.Position { return s.Position }
func (s *DoConcurrentStmt) stmtNode()           {}

// WhileStmt is `do while (cond) ...`.
type WhileStmt struct {
	Position token.Position
	Cond     Expression
	Body     []symbol.StmtNode
}

func (s *WhileStmt) Pos() token.Position { return s.Position }
func (s *WhileStmt) stmtNode()           {}

// SelectCaseStmt is `select case (selector) ...`; the selector must be
// integer-typed (spec.md §4.2).
type SelectCaseStmt struct {
	Position token.Position
	Selector Expression
	Cases    []CaseClause
}

func (s *SelectCaseStmt) Pos() token.Position { return s.Position }
func (s *SelectCaseStmt) stmtNode()           {}

// CaseClause is one `case (...)` arm: a list of integer expressions, a
// single range, or (IsDefault) the `case default` arm, which may appear at
// most once (spec.md §4.2).
type CaseClause struct {
	IsDefault bool
	Values    []Expression
	RangeLow  Expression
	RangeHigh Expression
	Body      []symbol.StmtNode
}

// CallStmt is `call sub(args)`, resolved against a specific declaration by
// overload resolution.
type CallStmt struct {
	Position token.Position
	Callee   symbol.Declaration
	Args     []Expression
}

func (s *CallStmt) Pos() token.Position { return s.Position }
func (s *CallStmt) stmtNode()           {}

// ReturnStmt is `return`.
type ReturnStmt struct{ Position token.Position }

func (s *ReturnStmt) Pos() token.Position { return s.Position }
func (s *ReturnStmt) stmtNode()           {}

// ExitStmt is `exit`.
type ExitStmt struct{ Position token.Position }

func (s *ExitStmt) Pos() token.Position { return s.Position }
func (s *ExitStmt) stmtNode()           {}

// CycleStmt is `cycle`.
type CycleStmt struct{ Position token.Position }

func (s *CycleStmt) Pos() token.Position { return s.Position }
func (s *CycleStmt) stmtNode()           {}

// StopStmt is `stop [code]`.
type StopStmt struct {
	Position token.Position
	Code     Expression
}

func (s *StopStmt) Pos() token.Position { return s.Position }
func (s *StopStmt) stmtNode()           {}

// ErrorStopStmt is `error stop [code]`.
type ErrorStopStmt struct {
	Position token.Position
	Code     Expression
}

func (s *ErrorStopStmt) Pos() token.Position { return s.Position }
func (s *ErrorStopStmt) stmtNode()           {}

// IOKind distinguishes the I/O statements sharing the IOStmt shape.
type IOKind int

const (
	IOPrint IOKind = iota
	IOWrite
	IORead
	IOOpen
	IOClose
)

// IOArg is one lowered keyword or positional argument of an
// OPEN/CLOSE/READ/WRITE record. The value's type is not checked against
// the keyword.
type IOArg struct {
	Keyword string
	Value   Expression
}

// IOStmt covers PRINT, WRITE, READ, OPEN, CLOSE.
type IOStmt struct {
	Position token.Position
	Kind     IOKind
	Control  []IOArg
	Items    []Expression
}

func (s *IOStmt) Pos() token.Position { return s.Position }
func (s *IOStmt) stmtNode()           {}
