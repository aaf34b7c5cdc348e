package ast

import "github.com/soypat/fortran-asr/internal/token"

// Identifier is a bare name reference, e.g. `x`.
type Identifier struct {
	Position token.Position
	Name     string
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) Accept(v Visitor)    { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()     {}

// IntLiteral is an integer constant, e.g. `42`.
type IntLiteral struct {
	Position token.Position
	Value    int64
}

func (n *IntLiteral) Pos() token.Position { return n.Position }
func (n *IntLiteral) Accept(v Visitor)    { v.VisitIntLiteral(n) }
func (n *IntLiteral) expressionNode()     {}

// RealLiteral is a real constant, e.g. `1.0`, `1.0_dp`.
type RealLiteral struct {
	Position token.Position
	Value    float64
	KindName string // optional kind suffix, e.g. "dp"
}

func (n *RealLiteral) Pos() token.Position { return n.Position }
func (n *RealLiteral) Accept(v Visitor)    { v.VisitRealLiteral(n) }
func (n *RealLiteral) expressionNode()     {}

// ComplexLiteral is a complex constant, e.g. `(1.0, 2.0)`.
type ComplexLiteral struct {
	Position token.Position
	Real     Expression
	Imag     Expression
}

func (n *ComplexLiteral) Pos() token.Position { return n.Position }
func (n *ComplexLiteral) Accept(v Visitor)    { v.VisitComplexLiteral(n) }
func (n *ComplexLiteral) expressionNode()     {}

// StringLiteral is a character constant, e.g. `"hello"`.
type StringLiteral struct {
	Position token.Position
	Value    string
}

func (n *StringLiteral) Pos() token.Position { return n.Position }
func (n *StringLiteral) Accept(v Visitor)    { v.VisitStringLiteral(n) }
func (n *StringLiteral) expressionNode()     {}

// LogicalLiteral is `.true.` or `.false.`.
type LogicalLiteral struct {
	Position token.Position
	Value    bool
}

func (n *LogicalLiteral) Pos() token.Position { return n.Position }
func (n *LogicalLiteral) Accept(v Visitor)    { v.VisitLogicalLiteral(n) }
func (n *LogicalLiteral) expressionNode()     {}

// ArrayConstant is `[1, 2, 3]` / `(/ 1, 2, 3 /)`.
type ArrayConstant struct {
	Position token.Position
	Elements []Expression
}

func (n *ArrayConstant) Pos() token.Position { return n.Position }
func (n *ArrayConstant) Accept(v Visitor)    { v.VisitArrayConstant(n) }
func (n *ArrayConstant) expressionNode()     {}

// UnaryOp is `-x`, `.not. x`.
type UnaryOp struct {
	Position token.Position
	Op       string
	Operand  Expression
}

func (n *UnaryOp) Pos() token.Position { return n.Position }
func (n *UnaryOp) Accept(v Visitor)    { v.VisitUnaryOp(n) }
func (n *UnaryOp) expressionNode()     {}

// BinaryOp covers arithmetic (`+ - * / **`), comparison
// (`== /= < <= > >= .eq. .neq. ...`), boolean (`.and. .or. .eqv. .neqv.`),
// and string concatenation (`//`); Op carries the surface spelling and
// lowering (internal/analyzer) classifies it.
type BinaryOp struct {
	Position token.Position
	Op       string
	Left     Expression
	Right    Expression
}

func (n *BinaryOp) Pos() token.Position { return n.Position }
func (n *BinaryOp) Accept(v Visitor)    { v.VisitBinaryOp(n) }
func (n *BinaryOp) expressionNode()     {}

// ArraySubscript is `a(i, j)` or `a(lo:hi)` used in value position.
type ArraySubscript struct {
	Position token.Position
	Base     Expression
	Indices  []Expression
}

func (n *ArraySubscript) Pos() token.Position { return n.Position }
func (n *ArraySubscript) Accept(v Visitor)    { v.VisitArraySubscript(n) }
func (n *ArraySubscript) expressionNode()     {}

// FieldRef is `obj%field`, possibly chained (`obj%inner%field`).
type FieldRef struct {
	Position token.Position
	Base     Expression
	Field    string
}

func (n *FieldRef) Pos() token.Position { return n.Position }
func (n *FieldRef) Accept(v Visitor)    { v.VisitFieldRef(n) }
func (n *FieldRef) expressionNode()     {}

// CallExpr is a function call in value position, e.g. `f(1, 2)`.
type CallExpr struct {
	Position  token.Position
	Callee    string
	Args      []Arg
}

func (n *CallExpr) Pos() token.Position { return n.Position }
func (n *CallExpr) Accept(v Visitor)    { v.VisitCallExpr(n) }
func (n *CallExpr) expressionNode()     {}

// Arg is one actual argument; Keyword is set for `name = expr` keyword
// arguments (used by OPEN/CLOSE/READ/WRITE keywords; ALLOCATE's `stat=`
// is carried in AllocateStmt.Stat instead).
type Arg struct {
	Keyword string
	Value   Expression
}

// ParenExpr is a parenthesised expression, `(expr)`.
type ParenExpr struct {
	Position token.Position
	Inner    Expression
}

func (n *ParenExpr) Pos() token.Position { return n.Position }
func (n *ParenExpr) Accept(v Visitor)    { v.VisitParenExpr(n) }
func (n *ParenExpr) expressionNode()     {}
