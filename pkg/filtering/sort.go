package filtering

import (
	"cmp"
	"database/sql"
	"math"
	"slices"

	"github.com/ajxudir/skinmatch/pkg/catalog"
)

// Sort returns a new slice ordered by price, then by rank.
//
// Both keys use the same direction. The sort is stable, so products with
// equal price and rank keep their input order. Invalid prices or ranks
// sort after valid ones in either direction.
//
// Parameters:
//   - products: Products to order; not modified
//   - ascending: true for cheapest first, false for most expensive first
//
// Returns:
//   - []catalog.Product: Ordered copy
func Sort(products []catalog.Product, ascending bool) []catalog.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []catalog.Product{}
	}
	slices.SortStableFunc(out, func(a, b catalog.Product) int {
		if c := compareKey(a.Price, b.Price, ascending); c != 0 {
			return c
		}
		return compareKey(a.Rank, b.Rank, ascending)
	})
	return out
}

// compareKey orders two nullable values, placing invalid ones last.
func compareKey(a, b sql.NullFloat64, ascending bool) int {
	aok := a.Valid && !math.IsNaN(a.Float64)
	bok := b.Valid && !math.IsNaN(b.Float64)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	c := cmp.Compare(a.Float64, b.Float64)
	if !ascending {
		return -c
	}
	return c
}
