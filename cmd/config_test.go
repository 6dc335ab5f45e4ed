package cmd

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/testutil"
)

// TestConfigShowDefaults tests --show-defaults.
func TestConfigShowDefaults(t *testing.T) {
	out, err := runCLI(t, "config", "--show-defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "Default configuration:")
	assert.Contains(t, out, "currency: SAR")
	assert.Contains(t, out, "catalog: cosmetics.csv")
}

// TestConfigHelp tests that config without flags prints help.
func TestConfigHelp(t *testing.T) {
	out, err := runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "--show-effective")
}

// TestConfigShowEffective tests --show-effective.
//
// It verifies:
//   - Built-in defaults are reported when no file exists
//   - A config file and global flags are reflected in the output
func TestConfigShowEffective(t *testing.T) {
	dir := withCatalog(t)

	t.Run("defaults", func(t *testing.T) {
		out, err := runCLI(t, "config", "--show-effective")
		require.NoError(t, err)
		assert.Contains(t, out, "Source:  built-in defaults")
		assert.Contains(t, out, "Catalog: "+filepath.Join(dir, "cosmetics.csv"))
		assert.Contains(t, out, "currency: SAR")
	})

	t.Run("file and flags", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "custom.yml", "currency: EUR\nsuggestions: 5\n")

		out, err := runCLI(t, "config", "--show-effective", "--config", path, "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, "Source:  "+path)
		assert.Contains(t, out, "currency: EUR")
		assert.Contains(t, out, "suggestions: 5")
		assert.Contains(t, out, "output: json")
	})
}

// TestConfigValidate tests --validate.
//
// It verifies:
//   - A valid file is reported as valid
//   - Warnings are listed for valid files
//   - Unknown fields fail with ExitConfigError and a suggestion
//   - An unreadable file is a config error
func TestConfigValidate(t *testing.T) {
	dir := withCatalog(t)

	t.Run("valid", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "ok.yml", "sort: desc\ncurrency: USD\n")
		out, err := runCLI(t, "config", "--validate", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration valid: "+path)
	})

	t.Run("warnings", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "warn.yml", "catalog: products.csv\ncatalog_table: items\n")
		out, err := runCLI(t, "config", "--validate", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration valid with warnings")
		assert.Contains(t, out, `WARNING: catalog_table "items" is ignored`)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "bad.yml", "currency: USD\nformat: json\n")
		out, err := runCLI(t, "config", "--validate", "-c", path)
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
		assert.Contains(t, out, "Configuration validation failed for: "+path)
		assert.Contains(t, out, "did you mean 'output'?")
		assert.Contains(t, out, "Run with --verbose")
	})

	t.Run("local file", func(t *testing.T) {
		testutil.WriteFile(t, dir, config.FileName, "seed: 12\n")
		out, err := runCLI(t, "config", "--validate")
		require.NoError(t, err)
		assert.Contains(t, out, filepath.Join(dir, config.FileName))
		require.NoError(t, os.Remove(filepath.Join(dir, config.FileName)))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(t, "config", "--validate", "-c", filepath.Join(dir, "absent.yml"))
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})
}

// TestConfigInit tests --init.
//
// It verifies:
//   - The template is written with owner-only permissions
//   - An existing config file is not overwritten
//   - Write failures are reported
func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := runCLI(t, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created configuration template: "+config.FileName)

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.GetTemplateConfig(), string(data))

	info, err := os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	_, err = runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")

	require.NoError(t, os.Remove(filepath.Join(dir, config.FileName)))
	oldWrite := writeFileFunc
	defer func() { writeFileFunc = oldWrite }()
	writeFileFunc = func(string, []byte, os.FileMode) error { return stderrors.New("disk full") }

	_, err = runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config file: disk full")
}
