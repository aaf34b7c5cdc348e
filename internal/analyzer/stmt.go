package analyzer

import (
	"strings"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
	"github.com/soypat/fortran-asr/internal/ir"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/types"
)

// lowerBody lowers a sequence of ast.Statement into typed-IR statements. A
// *ast.CallStmt is handled directly rather than through lowerStmt because
// it may lower to more than one typed-IR statement: spec.md §4.2 item 6's
// call-site implicit-deallocate, when it applies, must precede the call
// itself in the output (both the intent(in)-write check in lowerAssignment
// and the self-recursive call disambiguation in call.go's resolveCallee
// read what they need directly off the declaration in scope, so no
// enclosing-procedure parameter needs threading through here).
func (a *Analyzer) lowerBody(stmts []ast.Statement, scope *symbol.Scope) []symbol.StmtNode {
	out := make([]symbol.StmtNode, 0, len(stmts))
	for _, s := range stmts {
		if cs, ok := s.(*ast.CallStmt); ok {
			out = append(out, a.lowerCallStmt(cs, scope)...)
			continue
		}
		out = append(out, a.lowerStmt(s, scope))
	}
	return out
}

func (a *Analyzer) lowerStmt(s ast.Statement, scope *symbol.Scope) ir.Statement {
	switch n := s.(type) {
	case *ast.AssignmentStmt:
		return a.lowerAssignment(n, scope)
	case *ast.PointerAssociateStmt:
		lhs := a.lowerExpr(n.LHS, scope)
		rhs := a.lowerExpr(n.RHS, scope)
		return &ir.PointerAssociateStmt{Position: n.Position, LHS: lhs, RHS: rhs}
	case *ast.AllocateStmt:
		targets := make([]*ir.ArraySubscript, len(n.Targets))
		for i, t := range n.Targets {
			targets[i] = a.lowerExpr(t, scope).(*ir.ArraySubscript)
		}
		var stat ir.Expression
		if n.Stat != nil {
			stat = a.lowerExpr(n.Stat, scope)
		}
		return &ir.AllocateStmt{Position: n.Position, Targets: targets, Stat: stat}
	case *ast.DeallocateStmt:
		targets := make([]*symbol.Variable, 0, len(n.Targets))
		for _, id := range n.Targets {
			decl, ok := scope.Lookup(id.Name)
			if !ok {
				a.Diags.Add(diagnostics.VariableNotDeclared(id.Position, id.Name))
				continue
			}
			if v, ok := unwrapExternal(decl).(*symbol.Variable); ok {
				targets = append(targets, v)
			}
		}
		var stat ir.Expression
		if n.Stat != nil {
			stat = a.lowerExpr(n.Stat, scope)
		}
		return &ir.DeallocateStmt{Position: n.Position, Targets: targets, Stat: stat}
	case *ast.IfStmt:
		return a.lowerIf(n, scope)
	case *ast.DoStmt:
		return a.lowerDo(n, scope)
	case *ast.DoConcurrentStmt:
		return a.lowerDoConcurrent(n, scope)
	case *ast.WhileStmt:
		cond := a.lowerExpr(n.Cond, scope)
		return &ir.WhileStmt{Position: n.Position, Cond: cond, Body: a.lowerBody(n.Body, scope)}
	case *ast.SelectCaseStmt:
		return a.lowerSelectCase(n, scope)
	case *ast.ReturnStmt:
		return &ir.ReturnStmt{Position: n.Position}
	case *ast.ExitStmt:
		return &ir.ExitStmt{Position: n.Position}
	case *ast.CycleStmt:
		return &ir.CycleStmt{Position: n.Position}
	case *ast.StopStmt:
		var code ir.Expression
		if n.Code != nil {
			code = a.lowerExpr(n.Code, scope)
		}
		return &ir.StopStmt{Position: n.Position, Code: code}
	case *ast.ErrorStopStmt:
		var code ir.Expression
		if n.Code != nil {
			code = a.lowerExpr(n.Code, scope)
		}
		return &ir.ErrorStopStmt{Position: n.Position, Code: code}
	case *ast.IOStmt:
		return a.lowerIO(n, scope)
	}
	a.Diags.Add(diagnostics.Internalf(s.Pos(), "unhandled statement node %T", s))
	return &ir.ReturnStmt{Position: s.Pos()}
}

// lowerAssignment lowers `lhs = rhs`, inserting an Assignment-mode
// implicit cast from rhs's type to lhs's, and raises SPEC_FULL.md §7's
// supplemented "Cannot assign to intent(in) argument" diagnostic when lhs
// resolves to a dummy argument declared intent(in).
func (a *Analyzer) lowerAssignment(n *ast.AssignmentStmt, scope *symbol.Scope) ir.Statement {
	lhs := a.lowerExpr(n.LHS, scope)
	rhs := a.lowerExpr(n.RHS, scope)

	if vr, ok := lhs.(*ir.VarRef); ok && vr.Decl.Intent == symbol.IntentIn {
		a.Diags.Add(diagnostics.AssignToIntentIn(n.Position, vr.Decl.Name))
	}

	decision, err := types.Resolve(types.Assignment, rhs.Type(), lhs.Type())
	if err != nil {
		var allowed []string
		for b := types.Integer; b <= types.Class; b++ {
			if _, err := types.Resolve(types.Assignment, types.New(b, 4), lhs.Type()); err == nil {
				allowed = append(allowed, b.String())
			}
		}
		a.Diags.Add(diagnostics.AssignmentTypeMismatch(n.Position, strings.Join(allowed, ", "), lhs.Type().Describe()))
		return &ir.AssignmentStmt{Position: n.Position, LHS: lhs, RHS: rhs}
	}
	if decision.CastLeft {
		rhs = &ir.ImplicitCast{Position: rhs.Pos(), Tag: decision.Tag, Operand: rhs, Typ: decision.Result}
	}
	return &ir.AssignmentStmt{Position: n.Position, LHS: lhs, RHS: rhs}
}

func (a *Analyzer) lowerIf(n *ast.IfStmt, scope *symbol.Scope) ir.Statement {
	cond := a.lowerExpr(n.Cond, scope)
	thenBody := a.lowerBody(n.Then, scope)
	elseIfs := make([]ir.ElseIfClause, len(n.ElseIfs))
	for i, ei := range n.ElseIfs {
		elseIfs[i] = ir.ElseIfClause{Cond: a.lowerExpr(ei.Cond, scope), Body: a.lowerBody(ei.Body, scope)}
	}
	elseBody := a.lowerBody(n.Else, scope)
	return &ir.IfStmt{Position: n.Position, Cond: cond, Then: thenBody, ElseIfs: elseIfs, Else: elseBody}
}

func (a *Analyzer) lowerDo(n *ast.DoStmt, scope *symbol.Scope) ir.Statement {
	decl, ok := scope.Lookup(n.VarName)
	if !ok {
		a.Diags.Add(diagnostics.VariableNotDeclared(n.Position, n.VarName))
		return &ir.DoStmt{Position: n.Position, Body: a.lowerBody(n.Body, scope)}
	}
	v, _ := unwrapExternal(decl).(*symbol.Variable)
	low := a.lowerExpr(n.Low, scope)
	high := a.lowerExpr(n.High, scope)
	var step ir.Expression
	if n.Step != nil {
		step = a.lowerExpr(n.Step, scope)
	}
	return &ir.DoStmt{Position: n.Position, VarDecl: v, Low: low, High: high, Step: step, Body: a.lowerBody(n.Body, scope)}
}

func (a *Analyzer) lowerDoConcurrent(n *ast.DoConcurrentStmt, scope *symbol.Scope) ir.Statement {
	decl, ok := scope.Lookup(n.VarName)
	if !ok {
		a.Diags.Add(diagnostics.VariableNotDeclared(n.Position, n.VarName))
		return &ir.DoConcurrentStmt{Position: n.Position, Body: a.lowerBody(n.Body, scope)}
	}
	v, _ := unwrapExternal(decl).(*symbol.Variable)
	low := a.lowerExpr(n.Low, scope)
	high := a.lowerExpr(n.High, scope)
	return &ir.DoConcurrentStmt{Position: n.Position, VarDecl: v, Low: low, High: high, Body: a.lowerBody(n.Body, scope)}
}

// lowerSelectCase lowers `select case`, raising spec.md §4.2's "the
// selector must be integer-typed" diagnostic and enforcing at most one
// `case default` arm.
func (a *Analyzer) lowerSelectCase(n *ast.SelectCaseStmt, scope *symbol.Scope) ir.Statement {
	selector := a.lowerExpr(n.Selector, scope)
	if selector.Type().Base() != types.Integer {
		a.Diags.Add(diagnostics.New(n.Position, "select case selector must be Integer"))
	}
	cases := make([]ir.CaseClause, len(n.Cases))
	sawDefault := false
	for i, c := range n.Cases {
		if c.IsDefault {
			if sawDefault {
				a.Diags.Add(diagnostics.New(n.Position, "at most one case default arm is allowed"))
			}
			sawDefault = true
		}
		values := make([]ir.Expression, len(c.Values))
		for j, v := range c.Values {
			values[j] = a.lowerExpr(v, scope)
		}
		var lo, hi ir.Expression
		if c.RangeLow != nil {
			lo = a.lowerExpr(c.RangeLow, scope)
		}
		if c.RangeHigh != nil {
			hi = a.lowerExpr(c.RangeHigh, scope)
		}
		cases[i] = ir.CaseClause{IsDefault: c.IsDefault, Values: values, RangeLow: lo, RangeHigh: hi, Body: a.lowerBody(c.Body, scope)}
	}
	return &ir.SelectCaseStmt{Position: n.Position, Selector: selector, Cases: cases}
}

// lowerIO lowers PRINT/WRITE/READ/OPEN/CLOSE, lowering each control
// argument and item expression; the control keywords are carried through
// as written and their value types are not checked.
func (a *Analyzer) lowerIO(n *ast.IOStmt, scope *symbol.Scope) ir.Statement {
	control := make([]ir.IOArg, len(n.Control))
	for i, c := range n.Control {
		control[i] = ir.IOArg{Keyword: c.Keyword, Value: a.lowerExpr(c.Value, scope)}
	}
	items := make([]ir.Expression, len(n.Items))
	for i, it := range n.Items {
		items[i] = a.lowerExpr(it, scope)
	}
	return &ir.IOStmt{Position: n.Position, Kind: ir.IOKind(n.Kind), Control: control, Items: items}
}
