package display

import (
	"database/sql"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/rating"
	"github.com/ajxudir/skinmatch/pkg/utils"
)

// FormatPrice returns the price in shortest decimal form followed by the
// currency label.
//
// Parameters:
//   - price: Product price; invalid prices render as the N/A placeholder
//   - currency: Currency label, e.g. "SAR"; omitted when blank
//
// Returns:
//   - string: Display value
//
// Example:
//
//	display.FormatPrice(sql.NullFloat64{Float64: 45, Valid: true}, "SAR") // "45 SAR"
func FormatPrice(price sql.NullFloat64, currency string) string {
	if !price.Valid {
		return constants.PlaceholderNA
	}
	s := utils.FormatFloat(price.Float64)
	if c := strings.TrimSpace(currency); c != "" {
		s += " " + c
	}
	return s
}

// FormatRating returns the star string for a rank.
//
// A missing rank renders as the N/A placeholder. A present rank that cannot
// be drawn (outside [0, 5]) is an error rather than a clamped value.
//
// Parameters:
//   - rank: Product rank
//
// Returns:
//   - string: Five star glyphs or the placeholder
//   - error: *errors.FormatError from rating.FormatStars
func FormatRating(rank sql.NullFloat64) (string, error) {
	if !rank.Valid {
		return constants.PlaceholderNA, nil
	}
	return rating.FormatStars(rank.Float64)
}
