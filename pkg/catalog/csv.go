package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ajxudir/skinmatch/pkg/errors"
)

// loadDelimited reads a delimited text catalog.
//
// It performs the following operations:
//   - Step 1: Opens the file
//   - Step 2: Reads the header and locates the required columns
//   - Step 3: Decodes every data row into a Product
//
// Parameters:
//   - path: File path
//   - comma: Field delimiter (',' for CSV, '\t' for TSV)
//
// Returns:
//   - []Product: Products in file order
//   - error: *errors.DataLoadError when the file is missing, empty or malformed
func loadDelimited(path string, comma rune) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDataLoadError(path, err)
	}
	defer f.Close()

	return readDelimited(path, f, comma)
}

// readDelimited decodes a catalog from r. See loadDelimited.
func readDelimited(source string, r io.Reader, comma rune) ([]Product, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewDataLoadError(source, fmt.Errorf("empty catalog: no header row"))
	}
	if err != nil {
		return nil, errors.NewDataLoadError(source, err)
	}

	idx, err := newColumnIndex(source, header)
	if err != nil {
		return nil, err
	}

	var products []Product
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.DataLoadError{Source: source, Row: row, Err: err}
		}
		p, err := decodeRow(source, row, idx, record)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
