package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/errors"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// DefaultTable is the table read from SQLite catalogs when none is configured.
const DefaultTable = "cosmetics"

// loadSQLite reads the catalog from a table of a SQLite database.
//
// The file must already exist; opening a missing path would otherwise
// create an empty database. Column values are read as text and decoded
// with the same rules as delimited files, so both sources behave alike.
//
// Parameters:
//   - path: Database file path
//   - table: Table holding one product per row
//
// Returns:
//   - []Product: Products in table order
//   - error: *errors.DataLoadError when the database, table or columns are missing
func loadSQLite(path, table string) ([]Product, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewDataLoadError(path, fmt.Errorf("open sqlite: %w", err))
	}
	defer db.Close()

	quoted := quoteIdent(table)

	probe, err := db.Query("SELECT * FROM " + quoted + " LIMIT 0")
	if err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}
	header, err := probe.Columns()
	probe.Close()
	if err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}
	if _, err := newColumnIndex(path, header); err != nil {
		return nil, err
	}

	cols := make([]string, len(RequiredColumns))
	idx := make(columnIndex, len(RequiredColumns))
	for i, c := range RequiredColumns {
		cols[i] = quoteIdent(c)
		idx[c] = i
	}

	rows, err := db.Query("SELECT " + strings.Join(cols, ", ") + " FROM " + quoted)
	if err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}
	defer rows.Close()

	var products []Product
	raw := make([]sql.NullString, len(RequiredColumns))
	dest := make([]any, len(raw))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for row := 1; rows.Next(); row++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, &errors.DataLoadError{Source: path, Row: row, Err: err}
		}
		values := make([]string, len(raw))
		for i, v := range raw {
			values[i] = v.String
		}
		p, err := decodeRow(path, row, idx, values)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}

	return products, nil
}

// quoteIdent quotes an SQL identifier for SQLite.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
