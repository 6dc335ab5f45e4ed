package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/filtering"
	"github.com/ajxudir/skinmatch/pkg/ingredients"
)

var (
	ingredientFlags       searchFlags
	ingredientSeedFlag    uint64
	ingredientSuggestFlag int
)

var ingredientsCmd = &cobra.Command{
	Use:     "ingredients <list>",
	Aliases: []string{"ingredient"},
	Short:   "Find products containing any of the given ingredients",
	Long: `Find products whose ingredient list contains at least one of the given
ingredients, within the price and rating ranges, sorted by price then rating.

Ingredients are separated by commas. Matching ignores case and finds an
ingredient anywhere in a product's list, so "acid" matches "Hyaluronic Acid".
When no product contains any of the ingredients, a few ingredients from the
catalog are suggested instead.`,
	Example: `  skinmatch ingredients "niacinamide, hyaluronic acid"
  skinmatch ingredients retinol --price-max 80 --order desc
  skinmatch ingredients unobtainium --seed 42`,
	Args: cobra.ArbitraryArgs,
	RunE: runIngredients,
}

func init() {
	addSearchFlags(ingredientsCmd, &ingredientFlags)
	ingredientsCmd.Flags().Uint64Var(&ingredientSeedFlag, "seed", 0, "Seed for ingredient suggestions (0: random)")
	ingredientsCmd.Flags().IntVar(&ingredientSuggestFlag, "suggestions", ingredients.DefaultSuggestions, "Number of ingredients suggested when none is recognized")
}

// runIngredients executes the ingredients command.
//
// It performs the following operations:
//   - Step 1: Joins the arguments into one comma-separated query
//   - Step 2: Loads config and catalog
//   - Step 3: Filters and sorts the products
//   - Step 4: Samples suggestions when no ingredient was recognized
//   - Step 5: Renders the outcome
//
// A blank query is reported to the user and is not an error.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Ingredient query, possibly split over several arguments
//
// Returns:
//   - error: Validation, catalog or rendering error
func runIngredients(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, ingredients.Separator)

	if err := ingredientFlags.validate(); err != nil {
		return err
	}

	overrides := config.Overrides{Sort: ingredientFlags.order}
	if cmd.Flags().Changed("suggestions") {
		n := ingredientSuggestFlag
		overrides.Suggestions = &n
	}
	if cmd.Flags().Changed("seed") {
		seed := ingredientSeedFlag
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

	criteria, err := ingredientFlags.criteria(cmd, cat)
	if err != nil {
		return err
	}

	res, err := filtering.Search(cat, filtering.Query{
		Mode:        constants.ModeIngredient,
		Ingredients: raw,
		Criteria:    criteria,
		Ascending:   cfg.IsAscending(),
	})
	if err != nil {
		return err
	}

	var suggestions []string
	if res.EmptyReason == filtering.ReasonUnrecognizedIngredient {
		suggestions = ingredients.Suggest(ingredients.Unique(cat), cfg.GetSuggestions(), ingredients.NewRand(cfg.Seed))
	}

	return renderResult(cmd.OutOrStdout(), cfg, constants.ModeIngredient, raw, res, suggestions)
}
