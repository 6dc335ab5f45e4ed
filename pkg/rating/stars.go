// Package rating renders numeric product ratings as fixed-width star strings.
package rating

import (
	"math"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/errors"
)

// MinRank and MaxRank bound the ratings that can be drawn.
const (
	MinRank = 0
	MaxRank = constants.MaxStars
)

// FilledStars returns how many filled stars a rating earns.
//
// The rating is rounded half to even: 3.5 earns 4 stars, 2.5 earns 2.
//
// Parameters:
//   - rank: Rating in [MinRank, MaxRank]
//
// Returns:
//   - int: Filled star count in [0, 5]
//   - error: *errors.FormatError for NaN, infinite or out-of-range ratings
func FilledStars(rank float64) (int, error) {
	if math.IsNaN(rank) || rank < MinRank || rank > MaxRank {
		return 0, &errors.FormatError{Value: rank}
	}
	return int(math.RoundToEven(rank)), nil
}

// FormatStars renders a rating as exactly five glyphs: filled stars
// followed by empty stars.
//
// Parameters:
//   - rank: Rating in [MinRank, MaxRank]
//
// Returns:
//   - string: e.g. "⭐⭐⭐☆☆" for 3
//   - error: *errors.FormatError for NaN, infinite or out-of-range ratings
//
// Example:
//
//	stars, err := rating.FormatStars(3.5) // "⭐⭐⭐⭐☆"
func FormatStars(rank float64) (string, error) {
	filled, err := FilledStars(rank)
	if err != nil {
		return "", err
	}
	return strings.Repeat(constants.StarFilled, filled) +
		strings.Repeat(constants.StarEmpty, constants.MaxStars-filled), nil
}
