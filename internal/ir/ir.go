// Package ir is the typed intermediate representation spec.md §3 describes:
// the output of the body pass (internal/analyzer). Every expression node
// carries its result Type; every statement node is fully resolved against
// the symbol table built in pass 1 (internal/symbol). Nodes are created
// once during lowering and never mutated afterwards (spec.md §3's
// Lifecycle: "Expression and statement nodes are created in pass 2 and
// attached to the existing declarations' bodies").
package ir

import (
	"github.com/soypat/fortran-asr/internal/token"
	"github.com/soypat/fortran-asr/internal/types"
)

// Expression is the typed-IR counterpart of ast.Expression: every variant
// additionally carries a resolved Type, satisfying spec.md §3's invariant
// that "every expression node carries its result type".
type Expression interface {
	Pos() token.Position
	Type() types.Type
	exprNode()
}

// Statement is the typed-IR counterpart of ast.Statement.
type Statement interface {
	Pos() token.Position
	stmtNode()
}
