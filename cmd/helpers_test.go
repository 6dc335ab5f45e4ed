package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/testutil"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// captureStdout is a test helper that captures stdout during function execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureStdout(t, fn)
}

// captureStderr is a test helper that captures stderr during function execution.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureStderr(t, fn)
}

// fixtureProducts is the catalog written by withCatalog.
//
//	Acme - Gel      20  4    Oily, Combination  Salicylic Acid
//	Bloom - Cream   55  4.6  Dry, Normal        Vitamin C, Glycerin
//	Core - Serum    80  3    Oily, Sensitive    Hyaluronic Acid, Niacinamide
//	Dew - Mist      -   5    Oily               Water, Aloe
//	Elm - Balm      10  2    Dry                -
func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		testutil.NewProduct("Acme", "Gel").Price(20).Rank(4).Skin(catalog.Oily, catalog.Combination).Ingredients("Salicylic Acid").Build(),
		testutil.NewProduct("Bloom", "Cream").Price(55).Rank(4.6).Skin(catalog.Dry, catalog.Normal).Ingredients("Vitamin C, Glycerin").Build(),
		testutil.NewProduct("Core", "Serum").Price(80).Rank(3).Skin(catalog.Oily, catalog.Sensitive).Ingredients("Hyaluronic Acid, Niacinamide").Build(),
		testutil.NewProduct("Dew", "Mist").Rank(5).Skin(catalog.Oily).Ingredients("Water, Aloe").Build(),
		testutil.NewProduct("Elm", "Balm").Price(10).Rank(2).Skin(catalog.Dry).Build(),
	}
}

// withCatalog creates a working directory holding cosmetics.csv and makes
// the commands use it as their working directory.
//
// Returns:
//   - string: The working directory
func withCatalog(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteCatalogCSV(t, dir, fixtureProducts())

	oldGetwd := getwdFunc
	getwdFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwdFunc = oldGetwd })

	return dir
}

// resetFlags restores every flag of the command tree to its default and
// clears the parsed state, so one test's flags never leak into the next.
func resetFlags(t *testing.T) {
	t.Helper()

	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		resetSet := func(fs *pflag.FlagSet) {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		resetSet(c.Flags())
		resetSet(c.PersistentFlags())
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}

	reset(rootCmd)
	t.Cleanup(func() {
		reset(rootCmd)
		rootCmd.SetArgs(nil)
		verbose.Disable()
	})
}

// runCLI runs the root command with args and returns what it wrote to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(t)
	rootCmd.SetArgs(append(args, "--skip-build-checks"))

	var err error
	out := captureStdout(t, func() {
		err = ExecuteTest()
	})
	return out, err
}
