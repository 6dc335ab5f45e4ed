// Package display renders search results and user-facing messages.
//
// Product Records:
//
// Each product prints as a group header followed by its price and rating:
//
//	Acme - Hydra Gel
//	💰 Price: 45 SAR
//	⭐ Rating: ⭐⭐⭐⭐☆
//
// Use PrintProducts for a list and PrintResult to include the heading or
// the message matching an empty outcome:
//
//	err := display.PrintResult(os.Stdout, constants.ModeSkin, result, nil, "SAR")
//
// Values:
//
//	display.FormatPrice(p.Price, "SAR") // "12.5 SAR", or "#N/A" when invalid
//	display.FormatRating(p.Rank)        // "⭐⭐⭐☆☆"
//
// For structured output (json, csv, xml, table), use the pkg/output package.
package display
