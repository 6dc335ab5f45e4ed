package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/constants"
	"github.com/ajxudir/skinmatch/pkg/filtering"
)

// PrintResult prints the heading and products of a result, or the message
// for its empty outcome.
//
// It performs the following operations:
//   - Prints the empty query prompt for ReasonEmptyQuery
//   - Prints the not-available message with suggestions for ReasonUnrecognizedIngredient
//   - Prints the no-products message for the mode on ReasonOutOfRange
//   - Otherwise prints the mode heading and the products
//
// Parameters:
//   - w: Writer to output to
//   - mode: constants.ModeSkin or constants.ModeIngredient
//   - res: Search result
//   - suggestions: Ingredient names offered when nothing was recognized
//   - currency: Currency label for prices
//
// Returns:
//   - error: Error from PrintProducts
func PrintResult(w io.Writer, mode string, res filtering.Result, suggestions []string, currency string) error {
	switch res.EmptyReason {
	case filtering.ReasonEmptyQuery:
		PrintEmptyQuery(w)
		return nil
	case filtering.ReasonUnrecognizedIngredient:
		PrintUnrecognized(w, suggestions)
		return nil
	case filtering.ReasonOutOfRange:
		PrintNoProducts(w, mode)
		return nil
	}

	if len(res.Products) == 0 {
		PrintNoProducts(w, mode)
		return nil
	}
	PrintHeading(w, mode)
	return PrintProducts(w, res.Products, currency)
}

// PrintHeading prints the heading shown above successful results.
func PrintHeading(w io.Writer, mode string) {
	if mode == constants.ModeIngredient {
		_, _ = fmt.Fprintf(w, "%s Products containing one or more of your ingredients:\n\n", constants.IconSearch)
		return
	}
	_, _ = fmt.Fprintf(w, "%s Suitable products for you:\n\n", constants.IconSuccess)
}

// PrintNoProducts prints the message for a search whose candidates all
// fell outside the selected ranges.
func PrintNoProducts(w io.Writer, mode string) {
	if mode == constants.ModeIngredient {
		_, _ = fmt.Fprintf(w, "%s No products found within the selected filters.\n", constants.IconEmpty)
		return
	}
	_, _ = fmt.Fprintf(w, "%s No products available within the selected range.\n", constants.IconError)
}

// PrintEmptyQuery prints the prompt for a blank ingredient query.
func PrintEmptyQuery(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s Please enter at least one ingredient.\n", constants.IconWarn)
}

// PrintUnrecognized prints the message for a query that matched no
// ingredient, offering suggestions when there are any.
//
// Example output:
//
//	❌ Sorry, this ingredient is not available. Choose another ingredient, such as water, retinol, or aloe.
func PrintUnrecognized(w io.Writer, suggestions []string) {
	msg := constants.IconError + " Sorry, this ingredient is not available."
	if list := JoinSuggestions(suggestions); list != "" {
		msg += " Choose another ingredient, such as " + list + "."
	}
	_, _ = fmt.Fprintln(w, msg)
}

// JoinSuggestions joins names as an English "or" list.
//
// Returns:
//   - string: "" for none, "a" for one, "a or b" for two, "a, b, or c" for more
func JoinSuggestions(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

// PrintSuggestions prints one ingredient name per line.
func PrintSuggestions(w io.Writer, names []string) {
	for _, n := range names {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconIngredient, n)
	}
}

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}
