// Package config holds process-wide constants, the Fortran-domain
// analogue of funvibe-funxy's internal/config (constants.go's
// SourceFileExtensions/IsTestMode pattern), rebuilt around Fortran source
// extensions and the fixed intrinsic-module names instead of funxy's
// built-in function/type name tables.
package config

const SourceFileExt = ".f90"

// SourceFileExtensions are every recognized free-form Fortran source
// extension.
var SourceFileExtensions = []string{".f90", ".f95", ".f03", ".f08"}

// IsTestMode mirrors the teacher's startup flag: set once in
// cmd/fortran-asr/main.go when the `-test` argument is given. No code in
// this module reads it, so it changes neither diagnostic ordering nor
// coloring.
var IsTestMode = false

// Intrinsic module name constants, spec.md §6.3's fixed intrinsic-module
// set (re-exported here so CLI/config code need not import
// internal/intrinsic just to name them in help text or YAML).
const (
	IntrinsicKindModule  = "lfortran_intrinsic_kind"
	IntrinsicArrayModule = "lfortran_intrinsic_array"
	IntrinsicMathModule  = "lfortran_intrinsic_math"
)
