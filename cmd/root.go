// Package cmd implements the command-line interface for skinmatch.
// It provides commands for finding cosmetics by skin type or by
// ingredient, sampling ingredient suggestions and managing configuration.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool

// Global flags shared by the search commands.
var (
	configFlag  string
	catalogFlag string
	outputFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "skinmatch",
	Short: "Find cosmetics for your skin type or favourite ingredients",
	Long: `Filter a cosmetics catalog by skin-type suitability or by ingredients,
within price and rating ranges, and list the matching products sorted by price.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Show build warnings (arch mismatch, dev build) at the top of every command
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success, including searches that found nothing
//   - 2: Failure (catalog could not be loaded, output could not be written)
//   - 3: Configuration or input validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())

		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: ./.skinmatch.yml)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file (.csv, .tsv or SQLite .db)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, table, json, csv, xml")

	// Unparseable flag values are input errors, like out-of-range ones
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewExitError(errors.ExitConfigError, err)
	})

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → config → search workflow
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(skinCmd)
	rootCmd.AddCommand(ingredientsCmd)
	rootCmd.AddCommand(suggestCmd)
}

// printVersionOutput prints version, build, and runtime information to stdout.
//
// Output includes build target platform, runtime platform (if different),
// Go version, build date, git commit, and version string.
func printVersionOutput() {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
	if channel := ReleaseChannel(); channel != "" {
		fmt.Printf("  Channel: %s\n", channel)
	}
}
