package filtering

import (
	"strings"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/ingredients"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// EmptyReason explains why a search produced no products.
type EmptyReason string

// Empty outcomes. ReasonNone means the result has products.
const (
	ReasonNone                   EmptyReason = ""
	ReasonOutOfRange             EmptyReason = "out_of_range"
	ReasonUnrecognizedIngredient EmptyReason = "unrecognized_ingredient"
	ReasonEmptyQuery             EmptyReason = "empty_query"
)

// Result is the outcome of a search.
//
// Fields:
//   - Products: Matching products
//   - EmptyReason: Why Products is empty, ReasonNone otherwise
//   - Matched: Products that passed the mode predicate before range filtering
type Result struct {
	Products    []catalog.Product
	EmptyReason EmptyReason
	Matched     int
}

// ParseQuery splits a raw comma-separated query into normalized terms,
// dropping blank ones.
//
// Example:
//
//	filtering.ParseQuery(" Vitamin C, ,Retinol") // ["vitamin c", "retinol"]
func ParseQuery(raw string) []string {
	return ingredients.Split(raw)
}

// FilterByIngredients returns products whose ingredient list contains any
// of terms as a literal substring and whose price and rank satisfy criteria.
//
// Matching is containment on the normalized ingredient text, not token
// equality: "acid" matches "hyaluronic acid" and "citric acid".
//
// It performs the following operations:
//   - Step 1: Normalizes terms and drops blank ones
//   - Step 2: Validates both ranges
//   - Step 3: Counts containment matches and keeps those inside the ranges
//   - Step 4: Tags an empty result as unrecognized or out of range
//
// Parameters:
//   - cat: Catalog to search
//   - terms: Query terms; normalized again here
//   - criteria: Price and rank ranges
//
// Returns:
//   - Result: Products in catalog order with the empty outcome tag
//   - error: errors.ErrEmptyQuery when no term is left, *errors.InvalidRangeError for bad ranges
func FilterByIngredients(cat *catalog.Catalog, terms []string, criteria Criteria) (Result, error) {
	normalized := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := ingredients.Normalize(t); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return Result{}, errors.ErrEmptyQuery
	}
	if err := criteria.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Products: make([]catalog.Product, 0)}
	for i := 0; i < cat.Len(); i++ {
		p := cat.At(i)
		if !containsAny(ingredients.Normalize(p.Ingredients), normalized) {
			continue
		}
		res.Matched++
		if criteria.Match(p) {
			res.Products = append(res.Products, p)
		}
	}

	verbose.FilterApplied("ingredients", cat.Len(), res.Matched)
	verbose.FilterApplied("range", res.Matched, len(res.Products))

	switch {
	case res.Matched == 0:
		res.EmptyReason = ReasonUnrecognizedIngredient
	case len(res.Products) == 0:
		res.EmptyReason = ReasonOutOfRange
	}
	return res, nil
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
