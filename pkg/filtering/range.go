package filtering

import (
	"database/sql"
	"math"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/errors"
)

// Default rank bounds offered to users.
const (
	DefaultRankMin = 1
	DefaultRankMax = 5
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Validate checks that the range is well formed.
//
// Parameters:
//   - field: Attribute name used in the error ("price", "rank")
//
// Returns:
//   - error: *errors.InvalidRangeError when Min > Max or either bound is NaN
func (r Range) Validate(field string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		return &errors.InvalidRangeError{Field: field, Min: r.Min, Max: r.Max}
	}
	return nil
}

// Contains reports whether v lies within the range, bounds included.
// Invalid values are never contained.
func (r Range) Contains(v sql.NullFloat64) bool {
	if !v.Valid || math.IsNaN(v.Float64) {
		return false
	}
	return r.Min <= v.Float64 && v.Float64 <= r.Max
}

// Criteria holds the price and rank ranges shared by both filter modes.
type Criteria struct {
	Price Range
	Rank  Range
}

// DefaultCriteria returns the full price span of the catalog and the
// default rank bounds.
//
// When no product has a valid price the price range is [0, 0].
//
// Parameters:
//   - cat: Catalog whose price bounds are used
//
// Returns:
//   - Criteria: Ranges suitable as user defaults
func DefaultCriteria(cat *catalog.Catalog) Criteria {
	lo, hi, _ := cat.PriceBounds()
	return Criteria{
		Price: Range{Min: lo, Max: hi},
		Rank:  Range{Min: DefaultRankMin, Max: DefaultRankMax},
	}
}

// Validate checks both ranges, price first.
func (c Criteria) Validate() error {
	if err := c.Price.Validate("price"); err != nil {
		return err
	}
	return c.Rank.Validate("rank")
}

// Match reports whether p has a price and a rank inside the ranges.
func (c Criteria) Match(p catalog.Product) bool {
	return c.Price.Contains(p.Price) && c.Rank.Contains(p.Rank)
}
