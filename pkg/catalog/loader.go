package catalog

import (
	"path/filepath"
	"sync"

	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// Loader reads each catalog source at most once and hands out the same
// immutable *Catalog on every later request.
//
// A failed load is cached too: the outcome of a source never changes within
// a session. Loader is safe for concurrent use.
type Loader struct {
	opts []Option

	mu      sync.Mutex
	entries map[string]*loaderEntry
}

// loaderEntry holds the single load of one source.
type loaderEntry struct {
	once sync.Once
	cat  *Catalog
	err  error
}

// NewLoader creates a Loader applying opts to every source it reads.
//
// Parameters:
//   - opts: Source options such as WithTable
//
// Returns:
//   - *Loader: Empty loader
func NewLoader(opts ...Option) *Loader {
	return &Loader{
		opts:    opts,
		entries: make(map[string]*loaderEntry),
	}
}

// Load returns the catalog for path, reading it on first use only.
//
// Parameters:
//   - path: Catalog file path; equivalent spellings share one cache entry
//
// Returns:
//   - *Catalog: The cached catalog
//   - error: The cached load error, if the first read failed
func (l *Loader) Load(path string) (*Catalog, error) {
	key := filepath.Clean(path)

	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &loaderEntry{}
		l.entries[key] = entry
	}
	l.mu.Unlock()

	fresh := false
	entry.once.Do(func() {
		fresh = true
		entry.cat, entry.err = Load(path, l.opts...)
	})

	if !fresh && entry.err == nil {
		verbose.CatalogLoaded(path, entry.cat.Len(), true)
	}
	return entry.cat, entry.err
}
