// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for glyphs and labels.
package constants

// Star glyphs used by the rating formatter.
const (
	// StarFilled marks one whole point of rating.
	StarFilled = "⭐"

	// StarEmpty pads the rating to MaxStars glyphs.
	StarEmpty = "☆"

	// MaxStars is the width of every rendered rating.
	MaxStars = 5
)

// Search modes accepted by the filtering façade.
const (
	// ModeSkin filters by a skin-type suitability flag.
	ModeSkin = "skin"

	// ModeIngredient filters by ingredient containment.
	ModeIngredient = "ingredient"
)

// Sort direction names accepted in config and on the command line.
const (
	// SortAscending orders cheapest (then lowest rated) first.
	SortAscending = "ascending"

	// SortDescending orders most expensive (then highest rated) first.
	SortDescending = "descending"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for result display.
const (
	// IconSuccess prefixes a successful skin-type search heading.
	IconSuccess = "✨"

	// IconSearch prefixes a successful ingredient search heading.
	IconSearch = "🔍"

	// IconError indicates an error or a search that recognized nothing.
	IconError = "❌"

	// IconWarn indicates a warning that needs user attention.
	IconWarn = "⚠"

	// IconEmpty indicates matches that were all outside the selected filters.
	IconEmpty = "😔"

	// IconPrice prefixes the price line of a product.
	IconPrice = "💰"

	// IconRating prefixes the rating line of a product.
	IconRating = "⭐"

	// IconIngredient prefixes ingredient suggestions.
	IconIngredient = "🧬"

	// IconCheckmark indicates a successful validation or file creation.
	IconCheckmark = "✅"

	// IconLightbulb prefixes a tip.
	IconLightbulb = "💡"
)
