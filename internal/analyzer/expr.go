package analyzer

import (
	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
	"github.com/soypat/fortran-asr/internal/ir"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// lowerInitializerExpr lowers an expression appearing in a specification
// part (an initializer, a dimension bound) during pass 1. It shares
// lowerExpr's logic: pass 1 only ever calls this for expressions whose
// names (earlier dummy arguments, named constants) are already visible in
// textual order, so full pass-2 context (the enclosing function, for
// intent(in) checks) is never required here.
func (a *Analyzer) lowerInitializerExpr(e ast.Expression, scope *symbol.Scope) ir.Expression {
	return a.lowerExpr(e, scope)
}

// lowerExpr lowers one ast.Expression into its typed-IR counterpart,
// inserting implicit-cast nodes and folding integer-constant arithmetic
// per spec.md §4.2/§4.3.
func (a *Analyzer) lowerExpr(e ast.Expression, scope *symbol.Scope) ir.Expression {
	switch n := e.(type) {
	case *ast.Identifier:
		return a.lowerIdentifier(n, scope)
	case *ast.IntLiteral:
		return &ir.ConstantInt{Position: n.Position, Value: n.Value, Typ: types.New(types.Integer, 4)}
	case *ast.RealLiteral:
		kind := 4
		if n.KindName == "dp" {
			kind = 8
		}
		return &ir.ConstantReal{Position: n.Position, Value: n.Value, Typ: types.New(types.Real, kind)}
	case *ast.ComplexLiteral:
		re := a.lowerExpr(n.Real, scope)
		im := a.lowerExpr(n.Imag, scope)
		var rv, iv float64
		if c, ok := re.(*ir.ConstantReal); ok {
			rv = c.Value
		} else if c, ok := re.(*ir.ConstantInt); ok {
			rv = float64(c.Value)
		}
		if c, ok := im.(*ir.ConstantReal); ok {
			iv = c.Value
		} else if c, ok := im.(*ir.ConstantInt); ok {
			iv = float64(c.Value)
		}
		return &ir.ConstantComplex{Position: n.Position, Real: rv, Imag: iv, Typ: types.New(types.Complex, 4)}
	case *ast.StringLiteral:
		return &ir.ConstantString{Position: n.Position, Value: n.Value, Typ: types.New(types.Character, 1)}
	case *ast.LogicalLiteral:
		return &ir.ConstantLogical{Position: n.Position, Value: n.Value, Typ: types.Logical4}
	case *ast.ArrayConstant:
		elems := make([]ir.Expression, len(n.Elements))
		var elemTy types.Type
		for i, el := range n.Elements {
			elems[i] = a.lowerExpr(el, scope)
			if i == 0 {
				elemTy = elems[i].Type()
			}
		}
		arrTy := types.New(elemTy.Base(), elemTy.Kind(), types.Dim{})
		return &ir.ConstantArray{Position: n.Position, Elements: elems, Typ: arrTy}
	case *ast.UnaryOp:
		operand := a.lowerExpr(n.Operand, scope)
		return &ir.UnaryOp{Position: n.Position, Op: n.Op, Operand: operand, Typ: operand.Type()}
	case *ast.BinaryOp:
		return a.lowerBinaryOp(n, scope)
	case *ast.ArraySubscript:
		base := a.lowerExpr(n.Base, scope)
		indices := make([]ir.Expression, len(n.Indices))
		for i, idx := range n.Indices {
			indices[i] = a.lowerExpr(idx, scope)
		}
		elemTy := base.Type().AsValue()
		elemTy = types.New(elemTy.Base(), elemTy.Kind())
		if d := base.Type().DeclRef(); d != nil {
			elemTy = types.NewDerived(d, base.Type().Base() == types.Class)
		}
		return &ir.ArraySubscript{Position: n.Position, Base: base, Indices: indices, ElemType: elemTy}
	case *ast.FieldRef:
		return a.lowerFieldRef(n, scope)
	case *ast.CallExpr:
		return a.lowerCallExpr(n, scope)
	case *ast.ParenExpr:
		inner := a.lowerExpr(n.Inner, scope)
		return &ir.ParenExpr{Position: n.Position, Inner: inner}
	}
	a.Diags.Add(diagnostics.Internalf(e.Pos(), "unhandled expression node %T", e))
	return &ir.ConstantInt{Position: e.Pos(), Typ: types.New(types.Integer, 4)}
}

func (a *Analyzer) lowerIdentifier(n *ast.Identifier, scope *symbol.Scope) ir.Expression {
	decl, ok := scope.Lookup(n.Name)
	if !ok {
		a.Diags.Add(diagnostics.VariableNotDeclared(n.Position, n.Name))
		return &ir.ConstantInt{Position: n.Position, Typ: types.New(types.Integer, 4)}
	}
	decl = unwrapExternal(decl)
	v, ok := decl.(*symbol.Variable)
	if !ok {
		a.Diags.Add(diagnostics.VariableNotDeclared(n.Position, n.Name))
		return &ir.ConstantInt{Position: n.Position, Typ: types.New(types.Integer, 4)}
	}
	return &ir.VarRef{Position: n.Position, Decl: v}
}

func (a *Analyzer) lowerFieldRef(n *ast.FieldRef, scope *symbol.Scope) ir.Expression {
	base := a.lowerExpr(n.Base, scope)
	declRef := base.Type().DeclRef()
	dt, ok := declRef.(*symbol.DerivedType)
	if !ok {
		a.Diags.Add(diagnostics.Internalf(n.Position, "field reference on a non-derived-type value"))
		return base
	}
	member, ok := dt.MemberScope.LookupLocal(n.Field)
	if !ok {
		a.Diags.Add(diagnostics.SymbolNotDeclared(n.Position, n.Field))
		return base
	}
	field, ok := member.(*symbol.Variable)
	if !ok {
		a.Diags.Add(diagnostics.SymbolNotDeclared(n.Position, n.Field))
		return base
	}
	return &ir.FieldRef{Position: n.Position, Base: base, Field: field}
}

// lowerBinaryOp classifies n.Op into arithmetic, comparison, boolean, or
// concatenation, inserting an ImplicitCast per the cast engine's Decision
// (spec.md §4.3) and folding both-integer-constant arithmetic (spec.md
// §4.2).
func (a *Analyzer) lowerBinaryOp(n *ast.BinaryOp, scope *symbol.Scope) ir.Expression {
	left := a.lowerExpr(n.Left, scope)
	right := a.lowerExpr(n.Right, scope)

	switch classifyOp(n.Op) {
	case opCompare:
		left, right = a.castBinary(n.Position, left, right)
		return &ir.Comparison{Position: n.Position, Op: n.Op, Left: left, Right: right}
	case opBoolean:
		return &ir.BooleanOp{Position: n.Position, Op: n.Op, Left: left, Right: right, Typ: types.Logical4}
	case opConcat:
		ty := types.New(types.Character, 1)
		return &ir.Concat{Position: n.Position, Left: left, Right: right, Typ: ty}
	default:
		left, right = a.castBinary(n.Position, left, right)
		resultTy := left.Type()
		bin := &ir.BinaryArithmetic{Position: n.Position, Op: n.Op, Left: left, Right: right, Typ: resultTy}
		if lc, ok := unwrapCastInt(left); ok {
			if rc, ok := unwrapCastInt(right); ok {
				if v, ok := foldIntArith(n.Op, lc, rc); ok {
					bin.Folded = &v
				}
			}
		}
		return bin
	}
}

// castBinary resolves the Binary-mode cast decision for left/right and
// wraps whichever side needs it in an ImplicitCast, returning the
// (possibly wrapped) pair.
func (a *Analyzer) castBinary(pos token.Position, left, right ir.Expression) (ir.Expression, ir.Expression) {
	decision, err := types.Resolve(types.Binary, left.Type(), right.Type())
	if err != nil {
		a.Diags.Add(diagnostics.New(pos, "%s", err))
		return left, right
	}
	if decision.CastLeft {
		left = &ir.ImplicitCast{Position: left.Pos(), Tag: decision.Tag, Operand: left, Typ: decision.Result}
	}
	if decision.CastRight {
		right = &ir.ImplicitCast{Position: right.Pos(), Tag: decision.Tag, Operand: right, Typ: decision.Result}
	}
	return left, right
}

type opClass int

const (
	opArith opClass = iota
	opCompare
	opBoolean
	opConcat
)

func classifyOp(op string) opClass {
	switch op {
	case "==", "/=", "<", "<=", ">", ">=", ".eq.", ".neq.", ".lt.", ".le.", ".gt.", ".ge.":
		return opCompare
	case ".and.", ".or.", ".eqv.", ".neqv.":
		return opBoolean
	case "//":
		return opConcat
	default:
		return opArith
	}
}

func unwrapCastInt(e ir.Expression) (*ir.ConstantInt, bool) {
	if c, ok := e.(*ir.ImplicitCast); ok {
		e = c.Operand
	}
	c, ok := e.(*ir.ConstantInt)
	return c, ok
}

func foldIntArith(op string, l, r *ir.ConstantInt) (int64, bool) {
	switch op {
	case "+":
		return l.Value + r.Value, true
	case "-":
		return l.Value - r.Value, true
	case "*":
		return l.Value * r.Value, true
	case "/":
		if r.Value == 0 {
			return 0, false
		}
		return l.Value / r.Value, true
	case "**":
		var result int64 = 1
		for i := int64(0); i < r.Value; i++ {
			result *= l.Value
		}
		return result, true
	default:
		return 0, false
	}
}

func unwrapExternal(d symbol.Declaration) symbol.Declaration {
	if ext, ok := d.(*symbol.ExternalSymbol); ok {
		return ext.Underlying
	}
	return d
}
