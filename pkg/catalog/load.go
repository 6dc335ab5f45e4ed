package catalog

import (
	"path/filepath"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// Option customizes how a catalog source is read.
type Option func(*options)

type options struct {
	table string
}

// WithTable sets the table read from SQLite sources. Empty keeps DefaultTable.
func WithTable(table string) Option {
	return func(o *options) {
		if table != "" {
			o.table = table
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{table: DefaultTable}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// IsSQLiteSource reports whether path names a SQLite database by extension
// (.db, .sqlite or .sqlite3).
func IsSQLiteSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

// Load reads a catalog from path.
//
// The source kind is chosen by extension: SQLite databases (.db, .sqlite,
// .sqlite3), tab-separated text (.tsv), and comma-separated text for
// everything else. Load always reads the source; use a Loader to read
// each source once per session.
//
// Parameters:
//   - path: Catalog file path
//   - opts: Source options such as WithTable
//
// Returns:
//   - *Catalog: The loaded catalog
//   - error: *errors.DataLoadError when the source is missing or malformed
//
// Example:
//
//	cat, err := catalog.Load("cosmetics.csv")
//	if err != nil {
//	    return err
//	}
func Load(path string, opts ...Option) (*Catalog, error) {
	o := buildOptions(opts)

	var (
		products []Product
		err      error
	)
	switch {
	case IsSQLiteSource(path):
		products, err = loadSQLite(path, o.table)
	case strings.EqualFold(filepath.Ext(path), ".tsv"):
		products, err = loadDelimited(path, '\t')
	default:
		products, err = loadDelimited(path, ',')
	}
	if err != nil {
		return nil, err
	}

	verbose.CatalogLoaded(path, len(products), false)
	return &Catalog{source: path, products: products}, nil
}
