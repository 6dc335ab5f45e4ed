package config

import "github.com/ajxudir/skinmatch/pkg/verbose"

// mergeConfigs merges two configurations with custom taking precedence.
//
// Only fields set in custom override base. Used to layer a config file
// over the built-in defaults.
//
// Parameters:
//   - base: the base configuration
//   - custom: the custom configuration that overrides base
//
// Returns:
//   - *Config: the merged configuration
func mergeConfigs(base, custom *Config) *Config {
	if custom == nil {
		return base
	}

	merged := *base
	if custom.Catalog != "" {
		merged.Catalog = custom.Catalog
	}
	if custom.CatalogTable != "" {
		merged.CatalogTable = custom.CatalogTable
	}
	if custom.Currency != "" {
		merged.Currency = custom.Currency
	}
	if custom.Suggestions != nil {
		n := *custom.Suggestions
		merged.Suggestions = &n
	}
	if custom.Sort != "" {
		merged.Sort = custom.Sort
	}
	if custom.Seed != 0 {
		merged.Seed = custom.Seed
	}
	if custom.Output != "" {
		merged.Output = custom.Output
	}
	if custom.BaseDir != "" {
		merged.BaseDir = custom.BaseDir
	}
	if custom.Source != "" {
		merged.Source = custom.Source
	}

	verbose.Printf("Config merged: catalog=%q sort=%q output=%q", merged.Catalog, merged.Sort, merged.Output)
	return &merged
}

// Overrides holds command-line values that replace config values.
// Empty strings and nil pointers leave the config value unchanged.
type Overrides struct {
	Catalog     string
	Output      string
	Sort        string
	Suggestions *int
	Seed        *uint64
}

// WithOverrides returns a copy of c with command-line overrides applied.
//
// A catalog given on the command line is used as-is, relative to the
// working directory, not to the config file.
//
// Parameters:
//   - o: Values from flags
//
// Returns:
//   - *Config: the effective configuration
func (c *Config) WithOverrides(o Overrides) *Config {
	out := *c
	if o.Catalog != "" {
		out.Catalog = o.Catalog
		out.BaseDir = ""
	}
	if o.Output != "" {
		out.Output = o.Output
	}
	if o.Sort != "" {
		out.Sort = o.Sort
	}
	if o.Suggestions != nil {
		n := *o.Suggestions
		out.Suggestions = &n
	}
	if o.Seed != nil {
		out.Seed = *o.Seed
	}
	return &out
}
