package catalog

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// columnIndex maps each required column to its position in a source row.
type columnIndex map[string]int

// newColumnIndex locates the required columns in a header row.
//
// Header names are compared after trimming surrounding whitespace and a
// leading UTF-8 byte order mark. Extra columns are ignored.
//
// Parameters:
//   - source: Catalog path for error messages
//   - header: Header row
//
// Returns:
//   - columnIndex: Position of every required column
//   - error: *errors.DataLoadError naming the missing columns
func newColumnIndex(source string, header []string) (columnIndex, error) {
	idx := make(columnIndex, len(RequiredColumns))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &errors.DataLoadError{
			Source: source,
			Column: missing[0],
			Err:    fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", ")),
		}
	}
	return idx, nil
}

// decodeRow converts one source row into a Product.
//
// Unparseable, negative or non-finite prices and ranks become invalid
// (excluded from range filters) rather than errors. Skin flags must be
// empty, 0 or 1; anything else is a malformed catalog.
//
// Parameters:
//   - source: Catalog path for error messages
//   - row: 1-based data row number
//   - idx: Column positions from the header
//   - values: Row values; positions beyond its length read as empty
//
// Returns:
//   - Product: The decoded product
//   - error: *errors.DataLoadError for an invalid skin flag
func decodeRow(source string, row int, idx columnIndex, values []string) (Product, error) {
	get := func(col string) string {
		i := idx[col]
		if i >= len(values) {
			return ""
		}
		return values[i]
	}

	p := Product{
		Brand:       strings.TrimSpace(get(ColumnBrand)),
		Name:        strings.TrimSpace(get(ColumnName)),
		Ingredients: get(ColumnIngredients),
	}
	p.Price = parseAmount(get(ColumnPrice))
	p.Rank = parseAmount(get(ColumnRank))

	if !p.Price.Valid {
		verbose.ProductSkipped(p.DisplayName(), fmt.Sprintf("row %d: invalid price %q", row, get(ColumnPrice)))
	}
	if !p.Rank.Valid {
		verbose.ProductSkipped(p.DisplayName(), fmt.Sprintf("row %d: invalid rank %q", row, get(ColumnRank)))
	}

	for _, st := range SkinTypes {
		raw := get(string(st))
		v, err := parseFlag(raw)
		if err != nil {
			return Product{}, &errors.DataLoadError{Source: source, Row: row, Column: string(st), Err: err}
		}
		p.Skin.set(st, v)
	}

	return p, nil
}

// parseAmount parses a non-negative finite number. Anything else is invalid.
func parseAmount(s string) sql.NullFloat64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullFloat64{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// parseFlag parses a 0/1 skin flag. An empty cell is false.
func parseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || (v != 0 && v != 1) {
		return false, fmt.Errorf("invalid skin flag %q: want 0 or 1", s)
	}
	return v == 1, nil
}
