package filtering

import (
	"fmt"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/errors"
)

// Query describes one search action.
//
// Fields:
//   - Mode: constants.ModeSkin or constants.ModeIngredient
//   - Skin: Skin type, used in skin mode
//   - Ingredients: Raw comma-separated query, used in ingredient mode
//   - Criteria: Price and rank ranges
//   - Ascending: Sort direction for both sort keys
type Query struct {
	Mode        string
	Skin        catalog.SkinType
	Ingredients string
	Criteria    Criteria
	Ascending   bool
}

// Search runs one complete filter and sort pass.
//
// It performs the following operations:
//   - Step 1: Validates the ranges
//   - Step 2: Filters by skin type or by ingredients depending on the mode
//   - Step 3: Sorts the products and tags an empty outcome
//
// A blank ingredient query is a recoverable outcome: the result carries
// ReasonEmptyQuery and the error is nil. An empty skin result carries
// ReasonOutOfRange.
//
// Parameters:
//   - cat: Catalog to search
//   - q: Search parameters
//
// Returns:
//   - Result: Sorted products and the empty outcome tag
//   - error: Range, skin type or mode errors
func Search(cat *catalog.Catalog, q Query) (Result, error) {
	if err := q.Criteria.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	switch q.Mode {
	case constants.ModeSkin:
		products, err := FilterBySkin(cat, q.Skin, q.Criteria)
		if err != nil {
			return Result{}, err
		}
		res = Result{Products: products, Matched: len(products)}
		if len(products) == 0 {
			res.EmptyReason = ReasonOutOfRange
		}
	case constants.ModeIngredient:
		terms := ParseQuery(q.Ingredients)
		if len(terms) == 0 {
			return Result{Products: []catalog.Product{}, EmptyReason: ReasonEmptyQuery}, nil
		}
		r, err := FilterByIngredients(cat, terms, q.Criteria)
		if err != nil {
			return Result{}, err
		}
		res = r
	default:
		return Result{}, errors.NewInputValidationError("mode", fmt.Sprintf("unknown search mode %q", q.Mode),
			[]string{constants.ModeSkin, constants.ModeIngredient})
	}

	res.Products = Sort(res.Products, q.Ascending)
	return res, nil
}
