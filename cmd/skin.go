package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/config"
	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/filtering"
)

var (
	skinTypeFlag string
	skinFlags    searchFlags
)

var skinCmd = &cobra.Command{
	Use:   "skin [type]",
	Short: "Find products suitable for a skin type",
	Long: `Find products flagged as suitable for a skin type, within the price and
rating ranges, sorted by price then rating.

Skin types: ` + strings.Join(catalog.SkinTypeNames(), ", ") + `.`,
	Example: `  skinmatch skin oily
  skinmatch skin --type Dry --price-max 60 --rank-min 4 --order desc`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: catalog.SkinTypeNames(),
	RunE:      runSkin,
}

func init() {
	skinCmd.Flags().StringVarP(&skinTypeFlag, "type", "t", "", "Skin type (Oily, Dry, Normal, Combination, Sensitive)")
	addSearchFlags(skinCmd, &skinFlags)
}

// runSkin executes the skin command.
//
// It performs the following operations:
//   - Step 1: Resolves the skin type from the argument or --type
//   - Step 2: Loads config and catalog
//   - Step 3: Filters, sorts and renders the products
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional skin type argument
//
// Returns:
//   - error: Validation, catalog or rendering error
func runSkin(cmd *cobra.Command, args []string) error {
	name := skinTypeFlag
	if len(args) > 0 {
		name = args[0]
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewInputValidationError("skin type", "a skin type is required", catalog.SkinTypeNames())
	}

	skin, err := catalog.ParseSkinType(name)
	if err != nil {
		return err
	}
	if err := skinFlags.validate(); err != nil {
		return err
	}

	cfg, err := loadEffectiveConfig(config.Overrides{Sort: skinFlags.order})
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	criteria, err := skinFlags.criteria(cmd, cat)
	if err != nil {
		return err
	}

	res, err := filtering.Search(cat, filtering.Query{
		Mode:      constants.ModeSkin,
		Skin:      skin,
		Criteria:  criteria,
		Ascending: cfg.IsAscending(),
	})
	if err != nil {
		return err
	}

	return renderResult(cmd.OutOrStdout(), cfg, constants.ModeSkin, string(skin), res, nil)
}
