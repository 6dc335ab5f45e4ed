package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate configuration",
	Long: `Show, create or validate the .skinmatch.yml configuration file.

The file is looked up in the current directory unless --config is given.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create "+config.FileName+" template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .skinmatch.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		return showEffectiveConfig()
	}

	return cmd.Help()
}

// showEffectiveConfig prints the configuration a search would use, with
// the config file and global flags applied.
func showEffectiveConfig() error {
	cfg, err := loadEffectiveConfig(config.Overrides{})
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}

	fmt.Println("Effective configuration:")
	fmt.Println()
	fmt.Printf("Source:  %s\n", source)
	fmt.Printf("Catalog: %s\n", cfg.CatalogPath())
	fmt.Println()
	fmt.Print(string(data))
	return nil
}

// configFilePath returns the file targeted by --validate: the --config
// value, or .skinmatch.yml in the working directory.
func configFilePath() string {
	if configFlag != "" {
		return configFlag
	}
	workDir, err := getwdFunc()
	if err != nil {
		workDir = "."
	}
	return filepath.Join(workDir, config.FileName)
}

// validateConfigFile validates the configuration file at the specified path.
//
// Reports validation errors and warnings on stdout.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on read or validation failure
func validateConfigFile() error {
	configPath := configFilePath()

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)

		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}

		if len(result.Warnings) > 0 {
			fmt.Println()
			for _, w := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", w)
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		fmt.Printf("%s Run 'skinmatch config --show-defaults' to see every option\n", constants.IconLightbulb)
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmark, configPath)
	}

	return nil
}

// createConfigTemplate creates a new .skinmatch.yml template file in the
// current directory. Fails if a config file already exists there.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	configPath := config.FileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Use 0600 permissions for config files (owner read/write only)
	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
