package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/display"
	"github.com/ajxudir/skinmatch/pkg/ingredients"
	"github.com/ajxudir/skinmatch/pkg/output"
)

var (
	suggestCountFlag int
	suggestSeedFlag  uint64
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show a random sample of ingredients from the catalog",
	Long: `Show ingredient names sampled from every product in the catalog,
without repeats. Use --seed to get the same sample again.`,
	Example: `  skinmatch suggest
  skinmatch suggest -n 5 --seed 7 -o json`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestCountFlag, "count", "n", ingredients.DefaultSuggestions, "Number of ingredients to show")
	suggestCmd.Flags().Uint64Var(&suggestSeedFlag, "seed", 0, "Random seed (0: random)")
}

// runSuggest executes the suggest command.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: Config, catalog or write error
func runSuggest(cmd *cobra.Command, args []string) error {
	var overrides config.Overrides
	if cmd.Flags().Changed("count") {
		n := suggestCountFlag
		overrides.Suggestions = &n
	}
	if cmd.Flags().Changed("seed") {
		seed := suggestSeedFlag
		overrides.Seed = &seed
	}

	cfg, err := loadEffectiveConfig(overrides)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	names := ingredients.Unique(cat)
	picks := ingredients.Suggest(names, cfg.GetSuggestions(), ingredients.NewRand(cfg.Seed))

	w := cmd.OutOrStdout()
	format := output.ParseFormat(cfg.Output)
	if !output.IsStructuredFormat(format) {
		display.PrintSuggestions(w, picks)
		return nil
	}
	return output.WriteSuggestionResult(w, format, &output.SuggestionResult{
		Available:   len(names),
		Ingredients: picks,
	})
}
