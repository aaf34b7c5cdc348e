// Package intrinsic is the static registry spec.md §6.3 describes: a table
// mapping intrinsic procedure names to the owning module that must be
// lazily materialized the first time one of its names is referenced. It is
// the Fortran-domain analogue of funvibe-funxy's builtins registration
// (internal/analyzer's builtins wiring), rebuilt around Fortran's fixed
// intrinsic-module set instead of funxy's open builtin-function table.
package intrinsic

import "github.com/soypat/fortran-asr/internal/types"

// Module name constants, spec.md §6.3.
const (
	ModuleKind  = "lfortran_intrinsic_kind"
	ModuleArray = "lfortran_intrinsic_array"
	ModuleMath  = "lfortran_intrinsic_math"
)

// Signature describes an intrinsic's fixed argument/return shape, enough
// to materialize a *symbol.Function declaration without a full body.
type Signature struct {
	Module  string
	Params  []types.Type
	Returns types.Type // zero Type for subroutine-shaped intrinsics
}

// registry maps an intrinsic name to its owning module, spec.md §6.3's
// "minimum required" table.
var registry = map[string]string{
	"kind":               ModuleKind,
	"selected_int_kind":  ModuleKind,
	"selected_real_kind": ModuleKind,

	"size":     ModuleArray,
	"lbound":   ModuleArray,
	"ubound":   ModuleArray,
	"min":      ModuleArray,
	"max":      ModuleArray,
	"allocated": ModuleArray,
	"minval":   ModuleArray,
	"maxval":   ModuleArray,
	"real":     ModuleArray,
	"sum":      ModuleArray,
	"abs":      ModuleArray,
}

// elementary is spec.md §6.3's "on-demand elementary functions", each
// Real(4) -> Real(4).
var elementary = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"asin": true, "acos": true, "atan": true,
	"asinh": true, "acosh": true, "atanh": true,
}

// OwningModule reports the intrinsic module that declares name, and
// whether name is a recognized intrinsic at all.
func OwningModule(name string) (string, bool) {
	if m, ok := registry[name]; ok {
		return m, true
	}
	if elementary[name] {
		return ModuleMath, true
	}
	return "", false
}

// IsElementary reports whether name is one of the Real(4)->Real(4)
// elementary functions materialized directly rather than looked up in the
// fixed registry table.
func IsElementary(name string) bool { return elementary[name] }

// ElementarySignature returns the fixed Real(4) -> Real(4) signature every
// elementary function shares.
func ElementarySignature() Signature {
	r4 := types.New(types.Real, 4)
	return Signature{Module: ModuleMath, Params: []types.Type{r4}, Returns: r4}
}

// Names returns every statically registered intrinsic name, for use by a
// module loader deciding whether a `use lfortran_intrinsic_array` should
// populate every name in one pass.
func Names() []string {
	names := make([]string, 0, len(registry)+len(elementary))
	for name := range registry {
		names = append(names, name)
	}
	for name := range elementary {
		names = append(names, name)
	}
	return names
}
