package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// TestExecute tests the behavior of ExecuteTest with --help flag.
func TestExecute(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "skinmatch")
	assert.Contains(t, out, "ingredients")
	assert.Contains(t, out, "suggest")
}

// TestExecuteWrapper tests that Execute does not exit on success.
func TestExecuteWrapper(t *testing.T) {
	resetFlags(t)
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	called := false
	exitFunc = func(int) { called = true }

	rootCmd.SetArgs([]string{"--help"})
	_ = captureStdout(t, Execute)
	assert.False(t, called)
}

// TestExecuteError tests the behavior of Execute with failing commands.
//
// It verifies:
//   - Errors are printed to stderr with their hint
//   - Input errors exit with ExitConfigError
//   - Unknown commands exit with ExitFailure
func TestExecuteError(t *testing.T) {
	withCatalog(t)
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		stderr   string
	}{
		{"bad skin type", []string{"skin", "oilly"}, errors.ExitConfigError, `Validation Error: skin type: unknown skin type "oilly"`},
		{"inverted range", []string{"skin", "dry", "--price-min", "9", "--price-max", "1"}, errors.ExitConfigError, "invalid price range"},
		{"bad flag value", []string{"skin", "oily", "--rank-min", "abc"}, errors.ExitConfigError, `invalid argument "abc"`},
		{"missing catalog", []string{"suggest", "--catalog", "/nonexistent/cosmetics.csv"}, errors.ExitFailure, "Error:"},
		{"unknown command", []string{"moisturize"}, errors.ExitFailure, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			code := -1
			exitFunc = func(c int) { code = c }

			rootCmd.SetArgs(append(tt.args, "--skip-build-checks"))
			stderr := captureStderr(t, func() {
				_ = captureStdout(t, Execute)
			})

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

// TestRootVersionFlag tests that -v prints version information.
func TestRootVersionFlag(t *testing.T) {
	out, err := runCLI(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
}

// TestPersistentPreRunVerbose tests the behavior of PersistentPreRun with verbose flag.
//
// It verifies:
//   - Verbose mode is enabled when verboseFlag is set
//   - Verbose mode stays off otherwise
func TestPersistentPreRunVerbose(t *testing.T) {
	oldVerbose := verboseFlag
	oldSkip := skipBuildChecksFlag
	defer func() {
		verboseFlag = oldVerbose
		skipBuildChecksFlag = oldSkip
		verbose.Disable()
	}()
	skipBuildChecksFlag = true

	verboseFlag = false
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.False(t, verbose.IsEnabled())

	verboseFlag = true
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.True(t, verbose.IsEnabled())
}

// TestPersistentPreRunBuildWarnings tests the behavior of PersistentPreRun with build warnings.
//
// It verifies:
//   - Build warnings are shown when skipBuildChecksFlag is false
//   - Build warnings are skipped when skipBuildChecksFlag is true
func TestPersistentPreRunBuildWarnings(t *testing.T) {
	oldVersion := Version
	oldBuildOS := BuildOS
	oldBuildArch := BuildArch
	oldSkip := skipBuildChecksFlag
	defer func() {
		Version = oldVersion
		BuildOS = oldBuildOS
		BuildArch = oldBuildArch
		skipBuildChecksFlag = oldSkip
	}()

	Version = "dev"
	BuildOS = ""
	BuildArch = ""

	t.Run("shows warnings when not skipped", func(t *testing.T) {
		skipBuildChecksFlag = false
		output := captureStderr(t, func() {
			rootCmd.PersistentPreRun(rootCmd, []string{})
		})
		assert.Contains(t, output, "Development build")
	})

	t.Run("skips warnings when flag set", func(t *testing.T) {
		skipBuildChecksFlag = true
		output := captureStderr(t, func() {
			rootCmd.PersistentPreRun(rootCmd, []string{})
		})
		assert.Empty(t, output)
	})
}

// TestVerboseSearchLogsPipeline tests that --verbose traces the search to stderr.
func TestVerboseSearchLogsPipeline(t *testing.T) {
	withCatalog(t)

	var err error
	stderr := captureStderr(t, func() {
		verbose.SetWriter(os.Stderr)
		_, err = runCLI(t, "skin", "oily", "--verbose")
	})
	verbose.SetWriter(os.Stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr, "[DEBUG] Using built-in default configuration")
	assert.Contains(t, stderr, "Catalog loaded")
	assert.Contains(t, stderr, "Filter applied")
}
