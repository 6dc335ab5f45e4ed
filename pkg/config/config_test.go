package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/skinmatch/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func intPtr(n int) *int { return &n }

// TestLoadDefaultConfig tests the embedded defaults.
//
// It verifies that:
//   - The embedded YAML parses
//   - Defaults match the documented values
func TestLoadDefaultConfig(t *testing.T) {
	cfg := loadDefaultConfig()
	assert.Equal(t, "cosmetics.csv", cfg.Catalog)
	assert.Equal(t, "cosmetics", cfg.CatalogTable)
	assert.Equal(t, "SAR", cfg.GetCurrency())
	assert.Equal(t, 3, cfg.GetSuggestions())
	assert.True(t, cfg.IsAscending())
	assert.Zero(t, cfg.Seed)

	assert.False(t, ValidateConfigFile([]byte(GetDefaultConfig())).HasErrors())
	assert.False(t, ValidateConfigFile([]byte(GetTemplateConfig())).HasErrors())
}

// TestLoadConfig tests config file lookup and layering.
func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Empty(t, cfg.Source)
		assert.Equal(t, filepath.Join(dir, "cosmetics.csv"), cfg.CatalogPath())
	})

	t.Run("local file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "currency: USD\nsort: desc\nsuggestions: 5\n")

		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, path, cfg.Source)
		assert.Equal(t, "USD", cfg.GetCurrency())
		assert.False(t, cfg.IsAscending())
		assert.Equal(t, 5, cfg.GetSuggestions())
		assert.Equal(t, "cosmetics", cfg.CatalogTable)
	})

	t.Run("explicit path resolves catalog relative to file", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "conf")
		require.NoError(t, os.Mkdir(sub, 0o755))
		path := writeConfig(t, sub, "catalog: data/products.db\n")

		cfg, err := LoadConfig(path, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sub, "data", "products.db"), cfg.CatalogPath())
	})

	t.Run("zero suggestions kept", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "suggestions: 0\n")
		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.GetSuggestions())
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"), "")
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("invalid file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "sort: sideways\n")
		_, err := LoadConfig("", dir)
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
		assert.Contains(t, err.Error(), "unknown sort order")
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")
		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, "SAR", cfg.GetCurrency())
	})
}

// TestReadConfigFileTooLarge tests the size limit.
func TestReadConfigFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.yml")
	require.NoError(t, os.WriteFile(path, make([]byte, DefaultMaxConfigFileSize+1), 0o644))

	_, err := readConfigFile(path)
	assert.ErrorContains(t, err, "config file too large")
}

// TestValidateConfigFile tests strict decoding and value checks.
func TestValidateConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantErr  string
		wantWarn string
	}{
		{name: "valid", yaml: "catalog: products.db\ncatalog_table: items\nsort: DESCENDING\noutput: json\n"},
		{name: "unknown field with typo hint", yaml: "currency: SAR\norder: asc\n", wantErr: "unknown field 'order' (line 2) (did you mean 'sort'?)"},
		{name: "kebab case hint", yaml: "catalog-table: x\n", wantErr: "did you mean 'catalog_table'?"},
		{name: "type mismatch", yaml: "suggestions: many\n", wantErr: "cannot unmarshal"},
		{name: "syntax error", yaml: "catalog: [unclosed\n", wantErr: "YAML syntax error"},
		{name: "negative suggestions", yaml: "suggestions: -1\n", wantErr: "suggestions: must not be negative"},
		{name: "bad sort", yaml: "sort: random\n", wantErr: "sort: unknown sort order"},
		{name: "bad output", yaml: "output: yaml\n", wantErr: "output: unknown output format"},
		{name: "table for csv", yaml: "catalog: x.csv\ncatalog_table: items\n", wantWarn: "catalog_table \"items\" is ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateConfigFile([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.False(t, result.HasErrors(), result.ErrorMessage())
			} else {
				require.True(t, result.HasErrors())
				assert.Contains(t, result.ErrorMessage(), tt.wantErr)
			}
			if tt.wantWarn != "" {
				require.Len(t, result.Warnings, 1)
				assert.Contains(t, result.Warnings[0], tt.wantWarn)
			}
		})
	}
}

// TestUnknownFieldValidKeys tests that valid keys are listed for unknown fields.
func TestUnknownFieldValidKeys(t *testing.T) {
	result := ValidateConfigFile([]byte("colour: red\n"))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].VerboseError(), "catalog, catalog_table, currency")
}

// TestParseSortOrder tests direction names.
func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in  string
		asc bool
		ok  bool
	}{
		{"", true, true},
		{"asc", true, true},
		{"Ascending", true, true},
		{"desc", false, true},
		{" DESCENDING ", false, true},
		{"up", false, false},
	}
	for _, tt := range tests {
		asc, ok := ParseSortOrder(tt.in)
		assert.Equal(t, tt.asc, asc, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

// TestWithOverrides tests flag overrides.
func TestWithOverrides(t *testing.T) {
	base := &Config{Catalog: "cosmetics.csv", BaseDir: "/etc/skin", Sort: "ascending", Suggestions: intPtr(3), Seed: 1}
	seed := uint64(42)

	got := base.WithOverrides(Overrides{Catalog: "local.tsv", Output: "json", Sort: "desc", Suggestions: intPtr(1), Seed: &seed})
	assert.Equal(t, "local.tsv", got.CatalogPath())
	assert.Equal(t, "json", got.Output)
	assert.False(t, got.IsAscending())
	assert.Equal(t, 1, got.GetSuggestions())
	assert.Equal(t, uint64(42), got.Seed)

	assert.Equal(t, filepath.Join("/etc/skin", "cosmetics.csv"), base.CatalogPath())
	assert.Equal(t, 3, base.GetSuggestions())

	same := base.WithOverrides(Overrides{})
	assert.Equal(t, base.CatalogPath(), same.CatalogPath())
}

// TestMergeConfigs tests that only set fields override.
func TestMergeConfigs(t *testing.T) {
	base := loadDefaultConfig()
	assert.Same(t, base, mergeConfigs(base, nil))

	merged := mergeConfigs(base, &Config{Output: "table", Seed: 9})
	assert.Equal(t, "table", merged.Output)
	assert.Equal(t, uint64(9), merged.Seed)
	assert.Equal(t, "SAR", merged.Currency)
	assert.Equal(t, "", base.Output)
}

// TestConfigYAMLRoundTrip tests that the effective config marshals with known keys only.
func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := loadDefaultConfig()
	cfg.BaseDir = "/tmp"
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "basedir")
	assert.False(t, ValidateConfigFile(data).HasErrors())
}
