package ast

// Visitor is implemented by anything that walks the parse tree through
// Accept. The symbol-table pass and the body pass (internal/analyzer) do
// not use it; they dispatch on node types with type switches.
type Visitor interface {
	VisitTranslationUnit(*TranslationUnit)
	VisitModule(*ModuleUnit)
	VisitProgram(*ProgramMain)
	VisitSubroutine(*SubroutineDecl)
	VisitFunction(*FunctionDecl)
	VisitUse(*UseStatement)
	VisitAccessStatement(*AccessStatement)
	VisitOptionalStatement(*OptionalStatement)
	VisitVariableDecl(*VariableDecl)
	VisitInterfaceBlock(*InterfaceBlock)
	VisitDerivedType(*DerivedTypeDecl)

	VisitIdentifier(*Identifier)
	VisitIntLiteral(*IntLiteral)
	VisitRealLiteral(*RealLiteral)
	VisitComplexLiteral(*ComplexLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitLogicalLiteral(*LogicalLiteral)
	VisitArrayConstant(*ArrayConstant)
	VisitUnaryOp(*UnaryOp)
	VisitBinaryOp(*BinaryOp)
	VisitArraySubscript(*ArraySubscript)
	VisitFieldRef(*FieldRef)
	VisitCallExpr(*CallExpr)
	VisitParenExpr(*ParenExpr)

	VisitAssignmentStmt(*AssignmentStmt)
	VisitPointerAssociateStmt(*PointerAssociateStmt)
	VisitAllocateStmt(*AllocateStmt)
	VisitDeallocateStmt(*DeallocateStmt)
	VisitIfStmt(*IfStmt)
	VisitDoStmt(*DoStmt)
	VisitDoConcurrentStmt(*DoConcurrentStmt)
	VisitWhileStmt(*WhileStmt)
	VisitSelectCaseStmt(*SelectCaseStmt)
	VisitCallStmt(*CallStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitExitStmt(*ExitStmt)
	VisitCycleStmt(*CycleStmt)
	VisitStopStmt(*StopStmt)
	VisitErrorStopStmt(*ErrorStopStmt)
	VisitIOStmt(*IOStmt)
}

// BaseVisitor implements Visitor with no-op methods so callers only need to
// override the handful of node kinds they care about (e.g. a name-collecting
// pre-pass). Embed it by value and override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitTranslationUnit(*TranslationUnit)         {}
func (BaseVisitor) VisitModule(*ModuleUnit)                       {}
func (BaseVisitor) VisitProgram(*ProgramMain)                     {}
func (BaseVisitor) VisitSubroutine(*SubroutineDecl)               {}
func (BaseVisitor) VisitFunction(*FunctionDecl)                   {}
func (BaseVisitor) VisitUse(*UseStatement)                        {}
func (BaseVisitor) VisitAccessStatement(*AccessStatement)         {}
func (BaseVisitor) VisitOptionalStatement(*OptionalStatement)     {}
func (BaseVisitor) VisitVariableDecl(*VariableDecl)               {}
func (BaseVisitor) VisitInterfaceBlock(*InterfaceBlock)           {}
func (BaseVisitor) VisitDerivedType(*DerivedTypeDecl)             {}
func (BaseVisitor) VisitIdentifier(*Identifier)                   {}
func (BaseVisitor) VisitIntLiteral(*IntLiteral)                   {}
func (BaseVisitor) VisitRealLiteral(*RealLiteral)                 {}
func (BaseVisitor) VisitComplexLiteral(*ComplexLiteral)           {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)             {}
func (BaseVisitor) VisitLogicalLiteral(*LogicalLiteral)           {}
func (BaseVisitor) VisitArrayConstant(*ArrayConstant)             {}
func (BaseVisitor) VisitUnaryOp(*UnaryOp)                         {}
func (BaseVisitor) VisitBinaryOp(*BinaryOp)                       {}
func (BaseVisitor) VisitArraySubscript(*ArraySubscript)           {}
func (BaseVisitor) VisitFieldRef(*FieldRef)                       {}
func (BaseVisitor) VisitCallExpr(*CallExpr)                       {}
func (BaseVisitor) VisitParenExpr(*ParenExpr)                     {}
func (BaseVisitor) VisitAssignmentStmt(*AssignmentStmt)           {}
func (BaseVisitor) VisitPointerAssociateStmt(*PointerAssociateStmt) {}
func (BaseVisitor) VisitAllocateStmt(*AllocateStmt)               {}
func (BaseVisitor) VisitDeallocateStmt(*DeallocateStmt)           {}
func (BaseVisitor) VisitIfStmt(*IfStmt)                           {}
func (BaseVisitor) VisitDoStmt(*DoStmt)                           {}
func (BaseVisitor) VisitDoConcurrentStmt(*DoConcurrentStmt)       {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)                     {}
func (BaseVisitor) VisitSelectCaseStmt(*SelectCaseStmt)           {}
func (BaseVisitor) VisitCallStmt(*CallStmt)                       {}
func (BaseVisitor) VisitReturnStmt(*ReturnStmt)                   {}
func (BaseVisitor) VisitExitStmt(*ExitStmt)                       {}
func (BaseVisitor) VisitCycleStmt(*CycleStmt)                     {}
func (BaseVisitor) VisitStopStmt(*StopStmt)                       {}
func (BaseVisitor) VisitErrorStopStmt(*ErrorStopStmt)             {}
func (BaseVisitor) VisitIOStmt(*IOStmt)                           {}
