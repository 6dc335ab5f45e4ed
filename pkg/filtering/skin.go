package filtering

import (
	"fmt"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// FilterBySkin returns the products suitable for skin whose price and rank
// satisfy criteria, in catalog order.
//
// It performs the following operations:
//   - Step 1: Validates the skin type and both ranges
//   - Step 2: Keeps products with the skin flag set
//   - Step 3: Keeps those matching the criteria
//
// An empty result is not an error.
//
// Parameters:
//   - cat: Catalog to search
//   - skin: One of the five skin types
//   - criteria: Price and rank ranges
//
// Returns:
//   - []catalog.Product: Matching products, never nil
//   - error: *errors.ValidationError for an unknown skin type, *errors.InvalidRangeError for bad ranges
func FilterBySkin(cat *catalog.Catalog, skin catalog.SkinType, criteria Criteria) ([]catalog.Product, error) {
	if !skin.Valid() {
		return nil, errors.NewInputValidationError("skin type", fmt.Sprintf("unknown skin type %q", skin), catalog.SkinTypeNames())
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	flagged := 0
	out := make([]catalog.Product, 0)
	for i := 0; i < cat.Len(); i++ {
		p := cat.At(i)
		if !p.Skin.Suits(skin) {
			continue
		}
		flagged++
		if criteria.Match(p) {
			out = append(out, p)
		}
	}

	verbose.FilterApplied("skin:"+string(skin), cat.Len(), flagged)
	verbose.FilterApplied("range", flagged, len(out))
	return out, nil
}
