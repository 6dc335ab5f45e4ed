package display

import (
	"fmt"
	"io"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/constants"
)

// PrintProducts writes one record per product, in order.
//
// Each record is a "Brand - Name" header, a price line and a rating line,
// followed by a blank line.
//
// Parameters:
//   - w: Writer to output to (typically os.Stdout)
//   - products: Products in display order
//   - currency: Currency label for prices
//
// Returns:
//   - error: *errors.FormatError if a product's rank cannot be drawn; records
//     before it have already been written
//
// Example output:
//
//	Acme - Hydra Gel
//	💰 Price: 45 SAR
//	⭐ Rating: ⭐⭐⭐⭐☆
func PrintProducts(w io.Writer, products []catalog.Product, currency string) error {
	for _, p := range products {
		stars, err := FormatRating(p.Rank)
		if err != nil {
			return fmt.Errorf("%s: %w", p.DisplayName(), err)
		}
		_, _ = fmt.Fprintln(w, p.DisplayName())
		_, _ = fmt.Fprintf(w, "%s Price: %s\n", constants.IconPrice, FormatPrice(p.Price, currency))
		_, _ = fmt.Fprintf(w, "%s Rating: %s\n", constants.IconRating, stars)
		_, _ = fmt.Fprintln(w)
	}
	return nil
}
