package ir

import (
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// VarRef is a resolved reference to a variable declaration.
type VarRef struct {
	Position token.Position
	Decl     *symbol.Variable
}

func (e *VarRef) Pos() token.Position { return e.Position }
func (e *VarRef) Type() types.Type    { return e.Decl.Type }
func (e *VarRef) exprNode()           {}

// ArraySubscript is `a(i, j)` after resolution; Base's type must be an
// array type.
type ArraySubscript struct {
	Position token.Position
	Base     Expression
	Indices  []Expression
	ElemType types.Type
}

func (e *ArraySubscript) Pos() token.Position { return e.Position }
func (e *ArraySubscript) Type() types.Type    { return e.ElemType }
func (e *ArraySubscript) exprNode()           {}

// FieldRef is `obj%field` after the base's derived-type member scope has
// been resolved (spec.md §4.5).
type FieldRef struct {
	Position token.Position
	Base     Expression
	Field    *symbol.Variable
}

func (e *FieldRef) Pos() token.Position { return e.Position }
func (e *FieldRef) Type() types.Type    { return e.Field.Type }
func (e *FieldRef) exprNode()           {}

// ConstantInt is an integer literal. A compile-time-folded integer result
// is not a ConstantInt: it is attached to the BinaryArithmetic node as
// Folded.
type ConstantInt struct {
	Position token.Position
	Value    int64
	Typ      types.Type
}

func (e *ConstantInt) Pos() token.Position { return e.Position }
func (e *ConstantInt) Type() types.Type    { return e.Typ }
func (e *ConstantInt) exprNode()           {}

// ConstantReal is a real-literal constant.
type ConstantReal struct {
	Position token.Position
	Value    float64
	Typ      types.Type
}

func (e *ConstantReal) Pos() token.Position { return e.Position }
func (e *ConstantReal) Type() types.Type    { return e.Typ }
func (e *ConstantReal) exprNode()           {}

// ConstantComplex is a complex-literal constant.
type ConstantComplex struct {
	Position  token.Position
	Real, Imag float64
	Typ       types.Type
}

func (e *ConstantComplex) Pos() token.Position { return e.Position }
func (e *ConstantComplex) Type() types.Type    { return e.Typ }
func (e *ConstantComplex) exprNode()           {}

// ConstantString is a character-literal constant.
type ConstantString struct {
	Position token.Position
	Value    string
	Typ      types.Type
}

func (e *ConstantString) Pos() token.Position { return e.Position }
func (e *ConstantString) Type() types.Type    { return e.Typ }
func (e *ConstantString) exprNode()           {}

// ConstantLogical is a `.true.`/`.false.` literal constant.
type ConstantLogical struct {
	Position token.Position
	Value    bool
	Typ      types.Type
}

func (e *ConstantLogical) Pos() token.Position { return e.Position }
func (e *ConstantLogical) Type() types.Type    { return e.Typ }
func (e *ConstantLogical) exprNode()           {}

// ConstantArray is an array-constructor constant, `[1, 2, 3]`.
type ConstantArray struct {
	Position token.Position
	Elements []Expression
	Typ      types.Type
}

func (e *ConstantArray) Pos() token.Position { return e.Position }
func (e *ConstantArray) Type() types.Type    { return e.Typ }
func (e *ConstantArray) exprNode()           {}

// UnaryOp is a unary arithmetic/logical operator node.
type UnaryOp struct {
	Position token.Position
	Op       string
	Operand  Expression
	Typ      types.Type
}

func (e *UnaryOp) Pos() token.Position { return e.Position }
func (e *UnaryOp) Type() types.Type    { return e.Typ }
func (e *UnaryOp) exprNode()           {}

// BinaryArithmetic is `+ - * / **` after implicit-cast insertion: spec.md
// §3's invariant holds here ("the operand types are equal after implicit-
// cast insertion"). Folded is non-nil when both operands are integer
// constants (spec.md §4.2's compile-time folding for `+ - * / **`).
type BinaryArithmetic struct {
	Position token.Position
	Op       string
	Left     Expression
	Right    Expression
	Typ      types.Type
	Folded   *int64
}

func (e *BinaryArithmetic) Pos() token.Position { return e.Position }
func (e *BinaryArithmetic) Type() types.Type    { return e.Typ }
func (e *BinaryArithmetic) exprNode()           {}

// Comparison is `== /= < <= > >=` / `.eq. .neq. ...`; its result type is
// always Logical(4) (spec.md §4.2).
type Comparison struct {
	Position token.Position
	Op       string
	Left     Expression
	Right    Expression
}

func (e *Comparison) Pos() token.Position { return e.Position }
func (e *Comparison) Type() types.Type    { return types.Logical4 }
func (e *Comparison) exprNode()           {}

// BooleanOp is `.and. .or. .eqv. .neqv.`.
type BooleanOp struct {
	Position token.Position
	Op       string
	Left     Expression
	Right    Expression
	Typ      types.Type
}

func (e *BooleanOp) Pos() token.Position { return e.Position }
func (e *BooleanOp) Type() types.Type    { return e.Typ }
func (e *BooleanOp) exprNode()           {}

// Concat is `//`, string concatenation.
type Concat struct {
	Position token.Position
	Left     Expression
	Right    Expression
	Typ      types.Type
}

func (e *Concat) Pos() token.Position { return e.Position }
func (e *Concat) Type() types.Type    { return e.Typ }
func (e *Concat) exprNode()           {}

// ImplicitCast is a compiler-inserted conversion node (spec.md §4.3); Tag
// names which of the seven conversions it performs.
type ImplicitCast struct {
	Position token.Position
	Tag      types.CastTag
	Operand  Expression
	Typ      types.Type
}

func (e *ImplicitCast) Pos() token.Position { return e.Position }
func (e *ImplicitCast) Type() types.Type    { return e.Typ }
func (e *ImplicitCast) exprNode()           {}

// CallExpr is a function call in value position, resolved against a
// specific declaration by overload resolution (spec.md §4.2).
type CallExpr struct {
	Position token.Position
	Callee   symbol.Declaration
	Args     []Expression
	Typ      types.Type
}

func (e *CallExpr) Pos() token.Position { return e.Position }
func (e *CallExpr) Type() types.Type    { return e.Typ }
func (e *CallExpr) exprNode()           {}

// ParenExpr is a parenthesised expression; it carries its inner
// expression's type unchanged.
type ParenExpr struct {
	Position token.Position
	Inner    Expression
}

func (e *ParenExpr) Pos() token.Position { return e.Position }
func (e *ParenExpr) Type() types.Type    { return e.Inner.Type() }
func (e *ParenExpr) exprNode()           {}
