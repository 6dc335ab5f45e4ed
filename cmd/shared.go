package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/display"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/filtering"
	"github.com/ajxudir/skinmatch/pkg/output"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

var (
	loadConfigFunc = config.LoadConfig
	getwdFunc      = os.Getwd
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// catalogLoaders holds one cached loader per SQLite table name.
var catalogLoaders = map[string]*catalog.Loader{}

// loaderFor returns the shared loader for a table name.
func loaderFor(table string) *catalog.Loader {
	l, ok := catalogLoaders[table]
	if !ok {
		l = catalog.NewLoader(catalog.WithTable(table))
		catalogLoaders[table] = l
	}
	return l
}

// searchFlags holds the range and ordering flags of a search command.
type searchFlags struct {
	priceMin float64
	priceMax float64
	rankMin  int
	rankMax  int
	order    string
}

// addSearchFlags registers the range and ordering flags on cmd.
func addSearchFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().Float64Var(&f.priceMin, "price-min", 0, "Lowest price (default: cheapest product in the catalog)")
	cmd.Flags().Float64Var(&f.priceMax, "price-max", 0, "Highest price (default: most expensive product in the catalog)")
	cmd.Flags().IntVar(&f.rankMin, "rank-min", filtering.DefaultRankMin, "Lowest rating, 1-5")
	cmd.Flags().IntVar(&f.rankMax, "rank-max", filtering.DefaultRankMax, "Highest rating, 1-5")
	cmd.Flags().StringVar(&f.order, "order", "", "Sort order: asc or desc (default from config)")
}

// validate checks the flags that do not depend on the catalog.
//
// Returns:
//   - error: *errors.ValidationError for a rank bound outside 1-5 or an unknown order
func (f *searchFlags) validate() error {
	for _, b := range []struct {
		name  string
		value int
	}{
		{"rank-min", f.rankMin},
		{"rank-max", f.rankMax},
	} {
		if b.value < filtering.DefaultRankMin || b.value > filtering.DefaultRankMax {
			return errors.NewInputValidationError(b.name,
				fmt.Sprintf("must be between %d and %d, got %d", filtering.DefaultRankMin, filtering.DefaultRankMax, b.value), nil)
		}
	}

	if _, ok := config.ParseSortOrder(f.order); !ok {
		return errors.NewInputValidationError("order", fmt.Sprintf("unknown sort order %q", f.order), []string{"asc", "desc"})
	}
	return nil
}

// criteria builds the filter ranges, starting from the catalog's price span
// and replacing each bound given on the command line.
//
// Parameters:
//   - cmd: Command whose flags were parsed
//   - cat: Loaded catalog
//
// Returns:
//   - filtering.Criteria: Effective ranges
//   - error: *errors.InvalidRangeError when a minimum exceeds its maximum
func (f *searchFlags) criteria(cmd *cobra.Command, cat *catalog.Catalog) (filtering.Criteria, error) {
	c := filtering.DefaultCriteria(cat)
	if cmd.Flags().Changed("price-min") {
		c.Price.Min = f.priceMin
	}
	if cmd.Flags().Changed("price-max") {
		c.Price.Max = f.priceMax
	}
	c.Rank = filtering.Range{Min: float64(f.rankMin), Max: float64(f.rankMax)}

	verbose.Printf("Criteria: price %g-%g, rank %g-%g", c.Price.Min, c.Price.Max, c.Rank.Min, c.Rank.Max)
	return c, c.Validate()
}

// loadEffectiveConfig loads the config file, applies the global flags and
// the command's overrides, and validates the result.
//
// Warnings are printed to stderr.
//
// Parameters:
//   - o: Command-specific overrides; Catalog and Output are taken from global flags
//
// Returns:
//   - *config.Config: Effective configuration
//   - error: Config load or validation error
func loadEffectiveConfig(o config.Overrides) (*config.Config, error) {
	if !output.IsValidFormat(outputFlag) {
		return nil, errors.NewInputValidationError("output", fmt.Sprintf("unknown output format %q", outputFlag), output.ValidFormats)
	}

	workDir, err := getwdFunc()
	if err != nil {
		workDir = "."
	}

	cfg, err := loadConfigFunc(configFlag, workDir)
	if err != nil {
		return nil, err
	}

	o.Catalog = catalogFlag
	o.Output = outputFlag
	cfg = cfg.WithOverrides(o)

	result := cfg.Validate()
	display.PrintWarnings(os.Stderr, result.Warnings)
	if err := result.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog loads the catalog named by cfg through the shared loaders.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	return loaderFor(cfg.CatalogTable).Load(cfg.CatalogPath())
}

// renderResult writes a search result in the configured format.
//
// Text output, and table output for an empty result, use the grouped
// product records and user-facing messages. The other formats describe
// the outcome in their summary.
//
// Parameters:
//   - w: Destination writer
//   - cfg: Effective configuration (output format and currency)
//   - mode: constants.ModeSkin or constants.ModeIngredient
//   - query: Skin type name or raw ingredient query
//   - res: Search result
//   - suggestions: Ingredient suggestions, may be nil
//
// Returns:
//   - error: Rendering or write error
func renderResult(w io.Writer, cfg *config.Config, mode, query string, res filtering.Result, suggestions []string) error {
	format := output.ParseFormat(cfg.Output)
	if format == output.FormatText || (format == output.FormatTable && len(res.Products) == 0) {
		return display.PrintResult(w, mode, res, suggestions, cfg.GetCurrency())
	}

	result, err := output.NewSearchResult(mode, query, cfg.GetCurrency(), res, suggestions)
	if err != nil {
		return err
	}
	return output.WriteSearchResult(w, format, result)
}
