// Package storage contains the storage-agnostic sink contract and the factory
// that concrete backends register themselves with.
//
// Backends live in subpackages (parquet, sqlite, postgres) and self-register
// at init time; importing storage/all (even blankly) makes every built-in
// backend available through New without the caller importing any of them.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mmcd/internal/dataset"
)

// Repository persists a certified table. Implementations must refuse tables
// that have not been through the schema cast.
type Repository interface {
	// Write persists the whole table and returns the number of rows written.
	Write(ctx context.Context, t *dataset.Table) (int64, error)

	// Close releases the backend's resources. Safe to call once after Write.
	Close()
}

// Config carries the backend-agnostic sink configuration. Each backend reads
// the fields it needs and ignores the rest.
type Config struct {
	// Kind selects the registered backend.
	Kind string

	// DSN is the database connection string (sqlite, postgres).
	DSN string

	// Table is the destination table name (sqlite, postgres).
	Table string

	// Path is the output file path (parquet).
	Path string

	// Job labels the run in backend logging.
	Job string
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register installs (or replaces) the factory for a storage kind. Backends
// call this from init; tests may call it to inject fakes.
func Register(kind string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = fn
}

// New opens a Repository for cfg.Kind. Unknown kinds report the registered
// alternatives so a config typo produces an actionable error.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	fn, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown kind %q (registered: %v)", cfg.Kind, Kinds())
	}
	return fn(ctx, cfg)
}

// Kinds returns the registered backend names, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
