// Package analyzer is the two-pass semantic analyzer: the symbol-table
// pass (headers.go) followed by the body pass (stmt.go, expr.go, call.go). It is
// the Fortran-domain analogue of funvibe-funxy's internal/analyzer
// (analyzer.go's Analyzer type and its HeadersAnalyzed/BodiesAnalyzed
// LoadedModule contract), rebuilt around re-entering the same lexical
// scopes pass 1 built rather than re-running type inference over the
// whole tree a second time.
package analyzer

import (
	"sort"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
	"github.com/soypat/fortran-asr/internal/ir"
	"github.com/soypat/fortran-asr/internal/modules"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
)

// unitInfo records what pass 1 built for one ast.ProgramUnit, so pass 2
// can re-enter the exact same scope by identity rather than rebuilding it
// (spec.md §3's Lifecycle: "pass 2 re-enters the scopes pass 1 built,
// identified by the owning ast node, never by name").
type unitInfo struct {
	scope *symbol.Scope
	decl  symbol.Declaration // *symbol.Subroutine, *symbol.Function, *symbol.Module, or *symbol.Program
}

// Analyzer drives both passes over one or more translation units sharing
// a single Arena, so modules loaded while analyzing one file are resident
// for the next (spec.md §6.4).
type Analyzer struct {
	Arena  *modules.Arena
	Loader modules.ModuleLoader
	Diags  *diagnostics.Bag

	units map[ast.ProgramUnit]*unitInfo
}

// New builds an Analyzer over a fresh Arena.
func New(loader modules.ModuleLoader) *Analyzer {
	return &Analyzer{
		Arena:  modules.NewArena(),
		Loader: loader,
		Diags:  &diagnostics.Bag{},
		units:  make(map[ast.ProgramUnit]*unitInfo),
	}
}

// Analyze runs both passes over tu. Per-unit internal errors are caught
// and appended as internal diagnostics (spec.md §7: "an internal compiler
// error unwinds the entire translation-unit pass"); they do not stop
// analysis of the remaining units in tu.
func (a *Analyzer) Analyze(tu *ast.TranslationUnit) {
	for _, u := range tu.Units {
		a.runPass1(u)
	}
	for _, u := range tu.Units {
		a.runPass1Contains(u)
	}
	for _, u := range tu.Units {
		a.runPass2Safely(u)
	}
}

func (a *Analyzer) runPass1(u ast.ProgramUnit) {
	defer a.Diags.Recover(u.Pos())
	switch n := u.(type) {
	case *ast.ModuleUnit:
		a.pass1Module(n)
	case *ast.ProgramMain:
		a.pass1Program(n)
	case *ast.SubroutineDecl:
		a.pass1Subroutine(n, a.Arena.Global)
	case *ast.FunctionDecl:
		a.pass1Function(n, a.Arena.Global)
	}
}

// runPass1Contains performs pass 1 over each unit's CONTAINS section,
// deferred to its own pass so module-level and program-level names are
// all visible before an internal procedure's header is built (spec.md
// §4.1's walk order: "use statements, then declarations in textual order,
// then inner contains procedures").
func (a *Analyzer) runPass1Contains(u ast.ProgramUnit) {
	defer a.Diags.Recover(u.Pos())
	info := a.units[u]
	if info == nil {
		return
	}
	switch n := u.(type) {
	case *ast.ModuleUnit:
		for _, c := range n.Contains {
			a.pass1ContainedUnit(c, info.scope)
		}
	case *ast.ProgramMain:
		for _, c := range n.Contains {
			a.pass1ContainedUnit(c, info.scope)
		}
	case *ast.SubroutineDecl:
		for _, c := range n.Contains {
			a.pass1ContainedUnit(c, info.scope)
		}
	case *ast.FunctionDecl:
		for _, c := range n.Contains {
			a.pass1ContainedUnit(c, info.scope)
		}
	}
}

func (a *Analyzer) pass1ContainedUnit(u ast.ProgramUnit, parent *symbol.Scope) {
	switch n := u.(type) {
	case *ast.SubroutineDecl:
		a.pass1Subroutine(n, parent)
	case *ast.FunctionDecl:
		a.pass1Function(n, parent)
	}
}

func (a *Analyzer) runPass2Safely(u ast.ProgramUnit) {
	defer a.Diags.Recover(u.Pos())
	a.pass2Unit(u)
}

// pass2Unit lowers one unit's executable body, then recurses into its
// CONTAINS procedures.
func (a *Analyzer) pass2Unit(u ast.ProgramUnit) {
	info := a.units[u]
	if info == nil {
		return
	}
	switch n := u.(type) {
	case *ast.ProgramMain:
		prog := info.decl.(*symbol.Program)
		prog.Body = a.lowerBody(n.Body, info.scope)
		prog.Body = appendImplicitDeallocate(prog.Body, info.scope)
		for _, c := range n.Contains {
			a.pass2Unit(c)
		}
	case *ast.SubroutineDecl:
		sub := info.decl.(*symbol.Subroutine)
		sub.Body = a.lowerBody(n.Body, info.scope)
		sub.Body = appendImplicitDeallocate(sub.Body, info.scope)
		for _, c := range n.Contains {
			a.pass2Unit(c)
		}
	case *ast.FunctionDecl:
		fn := info.decl.(*symbol.Function)
		fn.Body = a.lowerBody(n.Body, info.scope)
		fn.Body = appendImplicitDeallocate(fn.Body, info.scope)
		for _, c := range n.Contains {
			a.pass2Unit(c)
		}
	case *ast.ModuleUnit:
		for _, c := range n.Contains {
			a.pass2Unit(c)
		}
	}
}

// appendImplicitDeallocate appends a compiler-inserted
// ir.ImplicitDeallocateStmt for any locally-declared allocatable variable
// still live at scope tail (spec.md §4.2: "Implicit deallocate at scope
// tail").
func appendImplicitDeallocate(body []symbol.StmtNode, scope *symbol.Scope) []symbol.StmtNode {
	var targets []*symbol.Variable
	names := scope.Names()
	sort.Strings(names)
	for _, name := range names {
		decl, ok := scope.LookupLocal(name)
		if !ok {
			continue
		}
		v, ok := decl.(*symbol.Variable)
		if !ok || !v.IsAllocatable() || v.Intent != symbol.IntentLocal {
			continue
		}
		targets = append(targets, v)
	}
	if len(targets) == 0 {
		return body
	}
	var tailPos token.Position
	if len(body) > 0 {
		tailPos = body[len(body)-1].Pos()
	}
	return append(body, &ir.ImplicitDeallocateStmt{Position: tailPos, Targets: targets})
}
