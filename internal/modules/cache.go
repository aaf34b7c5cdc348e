package modules

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DiskCache persists, across separate process runs, which module names
// have already been resolved successfully and the source digest they were
// resolved from. It backs a ModuleLoader wrapper (CachedLoader in
// cached_loader.go), which records a digest each time it loads a module.
// The loader does not consult Fresh, so an unchanged module is loaded again
// on every run.
//
// The teacher's go.mod already lists modernc.org/sqlite; nothing in the
// retrieved pack exercises it, so the schema and query shape below follow
// the standard database/sql idiom rather than an in-pack example.
type DiskCache struct {
	db *sql.DB
}

// OpenDiskCache opens (creating if absent) a sqlite-backed cache file at
// path.
func OpenDiskCache(path string) (*DiskCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open module cache: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS module_digest (
	name   TEXT PRIMARY KEY,
	digest TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init module cache schema: %w", err)
	}
	return &DiskCache{db: db}, nil
}

func (c *DiskCache) Close() error { return c.db.Close() }

// Digest returns the last-seen source digest recorded for name, if any.
func (c *DiskCache) Digest(name string) (string, bool, error) {
	var digest string
	err := c.db.QueryRow(`SELECT digest FROM module_digest WHERE name = ?`, name).Scan(&digest)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read module cache: %w", err)
	}
	return digest, true, nil
}

// Record stores the digest a module was last resolved under.
func (c *DiskCache) Record(name, digest string) error {
	_, err := c.db.Exec(
		`INSERT INTO module_digest (name, digest) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET digest = excluded.digest`,
		name, digest,
	)
	if err != nil {
		return fmt.Errorf("write module cache: %w", err)
	}
	return nil
}

// Fresh reports whether name's previously recorded digest matches digest,
// meaning the module loader may skip reanalysis and trust the in-memory
// Module it already produced this run.
func (c *DiskCache) Fresh(name, digest string) bool {
	prev, ok, err := c.Digest(name)
	if err != nil || !ok {
		return false
	}
	return prev == digest
}
