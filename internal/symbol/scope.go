// Package symbol implements the Scope and Declaration variants of spec.md
// §3, and the redeclaration/lookup policy of spec.md §4.1's symbol-table
// pass. It is the Fortran-domain analogue of the teacher's
// internal/symbols package (github.com/funvibe/funxy/internal/symbols):
// same shape (a scope holding a name->declaration store plus an outer
// pointer), rebuilt for Fortran's fixed declaration kinds instead of
// funxy's trait/generic-heavy symbol kinds.
package symbol

import "github.com/google/uuid"

var nextScopeID int

// Scope is a lexical lookup environment: a name->Declaration store plus an
// optional parent. Declarations are never removed once inserted (spec.md
// §3's Lifecycle invariant); Scope itself carries a stable integer identity
// for fast same-process comparisons and a UUID identity
// (github.com/google/uuid) drawn fresh by NewScope. Neither is written to
// the on-disk module cache (internal/modules), which stores only module
// digests, so a scope's UUID differs from one run to the next.
type Scope struct {
	ID     int
	UUID   uuid.UUID
	Parent *Scope

	names  map[string]Declaration
	access map[string]AccessKind // per-name access override (PUBLIC/PRIVATE :: name)

	DefaultAccess AccessKind
}

// NewScope creates a fresh scope nested inside parent (nil for the
// outermost scope of a translation unit).
func NewScope(parent *Scope) *Scope {
	nextScopeID++
	return &Scope{
		ID:            nextScopeID,
		UUID:          uuid.New(),
		Parent:        parent,
		names:         make(map[string]Declaration),
		access:        make(map[string]AccessKind),
		DefaultAccess: Public,
	}
}

// Lookup performs spec.md §3's "lexical lookup: walk parents until hit".
func (s *Scope) Lookup(name string) (Declaration, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if d, ok := sc.names[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// LookupLocal looks up name only in s, without walking parents — used by
// the redeclaration check and by dummy-argument verification (spec.md
// §4.1).
func (s *Scope) LookupLocal(name string) (Declaration, bool) {
	d, ok := s.names[name]
	return d, ok
}

// RedeclarationError reports spec.md §4.1's "Re-declaring a symbol in the
// same scope is an error, with two exceptions" violation.
type RedeclarationError struct {
	Name string
	Kind string // the Kind() of the existing declaration, for the "<Kind> already defined" template
}

func (e *RedeclarationError) Error() string {
	return e.Kind + " already defined"
}

// Define installs decl under name, applying spec.md §4.1's redeclaration
// policy:
//
//	(i)  a second declaration in the global scope replaces the first;
//	(ii) an interface-only (DefinitionKind == InterfaceOnly) Subroutine or
//	     Function entry is shadowed by its implementation.
//
// Any other collision is a RedeclarationError.
func (s *Scope) Define(name string, decl Declaration) error {
	existing, ok := s.names[name]
	if !ok {
		s.names[name] = decl
		return nil
	}
	if s.Parent == nil {
		// (i) global scope: second declaration replaces the first.
		s.names[name] = decl
		return nil
	}
	if sub, ok := existing.(*Subroutine); ok && sub.DefinitionKind == InterfaceOnly {
		// (ii) interface-only entry shadowed by its implementation.
		s.names[name] = decl
		return nil
	}
	if fn, ok := existing.(*Function); ok && fn.DefinitionKind == InterfaceOnly {
		s.names[name] = decl
		return nil
	}
	return &RedeclarationError{Name: name, Kind: existing.Kind()}
}

// ForceDefine installs decl under name unconditionally, bypassing the
// redeclaration policy. The analyzer uses it for the placeholder variable
// of an undeclared formal parameter, for type-bound procedure entries in a
// derived type's member scope, and for lazily materialized intrinsic
// functions.
func (s *Scope) ForceDefine(name string, decl Declaration) {
	s.names[name] = decl
}

// SetAccess records the per-name access override from a `public :: name` /
// `private :: name` attribute-only declaration (spec.md §4.1 step 2).
func (s *Scope) SetAccess(name string, a AccessKind) {
	s.access[name] = a
}

// AccessOf returns the effective access of name in this scope: its
// per-name override if one was recorded, otherwise the scope's default.
func (s *Scope) AccessOf(name string) AccessKind {
	if a, ok := s.access[name]; ok {
		return a
	}
	return s.DefaultAccess
}

// Names returns every name declared directly in s, in undefined order; used
// by `use M` without an only-list (spec.md §4.4) and by the implicit
// deallocate scan (spec.md §4.2) over sorted Names() for determinism.
func (s *Scope) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	return out
}
