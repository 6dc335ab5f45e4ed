package config

import (
	"path/filepath"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/ingredients"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".skinmatch.yml"

// DefaultMaxConfigFileSize is the largest config file accepted (1MB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// Config is the root configuration structure.
type Config struct {
	Catalog      string `yaml:"catalog,omitempty"`
	CatalogTable string `yaml:"catalog_table,omitempty"`
	Currency     string `yaml:"currency,omitempty"`
	Suggestions  *int   `yaml:"suggestions,omitempty"`
	Sort         string `yaml:"sort,omitempty"`
	Seed         uint64 `yaml:"seed,omitempty"`
	Output       string `yaml:"output,omitempty"`

	// BaseDir resolves a relative Catalog path. It is the directory of the
	// loaded config file, or the working directory for built-in defaults.
	BaseDir string `yaml:"-"`

	// Source is the path of the loaded config file, empty for defaults.
	Source string `yaml:"-"`
}

// CatalogPath returns the catalog location resolved against BaseDir.
//
// Returns:
//   - string: Absolute or BaseDir-relative catalog path; the default file name when unset
func (c *Config) CatalogPath() string {
	path := strings.TrimSpace(c.Catalog)
	if path == "" {
		path = defaultCatalog
	}
	if filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// GetCurrency returns the currency label.
func (c *Config) GetCurrency() string {
	return strings.TrimSpace(c.Currency)
}

// GetSuggestions returns how many suggestions to offer, falling back to
// the default when unset.
func (c *Config) GetSuggestions() int {
	if c.Suggestions == nil {
		return ingredients.DefaultSuggestions
	}
	return *c.Suggestions
}

// IsAscending reports whether results sort ascending. Unknown values
// fall back to ascending; Validate reports them.
func (c *Config) IsAscending() bool {
	asc, ok := ParseSortOrder(c.Sort)
	return !ok || asc
}

// ParseSortOrder resolves a sort direction name.
//
// Accepted names, case-insensitively: "ascending", "asc", "descending",
// "desc". An empty name means ascending.
//
// Parameters:
//   - s: Direction name from config or the --order flag
//
// Returns:
//   - bool: true for ascending
//   - bool: false when s is not a known direction
func ParseSortOrder(s string) (ascending bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", constants.SortAscending, "asc":
		return true, true
	case constants.SortDescending, "desc":
		return false, true
	default:
		return false, false
	}
}
