package modules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/symbol"
	"github.com/soypat/fortran-asr/internal/token"
)

// CachedLoader wraps a MemoryLoader with a DiskCache, recording the digest
// of every non-intrinsic module it loads (spec.md §6.4 is silent on
// caching; this is a supplemented feature — see SPEC_FULL.md §4 — grounded
// on the disk cache the teacher's go.mod already lists a driver for).
type CachedLoader struct {
	inner *MemoryLoader
	cache *DiskCache
}

// NewCachedLoader builds a CachedLoader over units, persisting digests in
// cache.
func NewCachedLoader(units []*ast.ModuleUnit, cache *DiskCache) *CachedLoader {
	return &CachedLoader{inner: NewMemoryLoader(units), cache: cache}
}

// LoadModule implements ModuleLoader. The digest check only decides
// whether the disk cache is updated; full symbol-table construction still
// runs through MemoryLoader every time, since an Arena never persists
// across process runs (it holds live Go pointers) — only the digest
// bookkeeping does.
func (c *CachedLoader) LoadModule(arena *Arena, parentScope *symbol.Scope, name string, loc token.Position, intrinsicOnly bool) (*symbol.Module, error) {
	mod, err := c.inner.LoadModule(arena, parentScope, name, loc, intrinsicOnly)
	if err != nil {
		return nil, err
	}
	if intrinsicOnly || c.cache == nil {
		return mod, nil
	}
	unit, ok := c.inner.units[name]
	if !ok {
		return mod, nil
	}
	digest := fingerprint(unit)
	if err := c.cache.Record(name, digest); err != nil {
		return nil, fmt.Errorf("record module digest for '%s': %w", name, err)
	}
	return mod, nil
}

// fingerprint builds a stable digest of a module unit's outline: the module
// name, the name of each `use`d module, and the Go node type of each
// specification-part declaration, in order. It is not a content hash of
// source text (the typed parse tree carries no raw source span text).
// Renaming a declaration, or changing the module's interfaces, derived
// types, or CONTAINS procedures, leaves it unchanged.
func fingerprint(unit *ast.ModuleUnit) string {
	h := sha256.New()
	fmt.Fprintf(h, "module:%s\n", unit.Name)
	for _, u := range unit.Uses {
		fmt.Fprintf(h, "use:%s\n", u.Module)
	}
	for _, d := range unit.Declarations {
		fmt.Fprintf(h, "decl:%T\n", d)
	}
	return hex.EncodeToString(h.Sum(nil))
}
