package output

import (
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/utils"
)

// RatingColumn is the extra column appended to CSV output after the
// dataset columns.
const RatingColumn = "Rating"

// WriteSearchResult writes search results in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the search result using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatCSV or FormatTable)
//   - result: Search result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteSearchResult(w io.Writer, format Format, result *SearchResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(searchJSON(result))
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeSearchCSV(formatter, result)
	case FormatTable:
		writeSearchTable(w, result)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// searchJSON builds the JSON document with keys in a fixed order.
//
// Product records use the dataset column names, with the skin flags
// flattened into one boolean per skin type, so a record reads like a
// catalog row.
func searchJSON(result *SearchResult) *orderedmap.OrderedMap {
	summary := orderedmap.New()
	summary.Set("mode", result.Summary.Mode)
	summary.Set("query", result.Summary.Query)
	summary.Set("currency", result.Summary.Currency)
	summary.Set("matched", result.Summary.Matched)
	summary.Set("total", result.Summary.Total)
	if result.Summary.EmptyReason != "" {
		summary.Set("empty_reason", result.Summary.EmptyReason)
	}

	products := make([]*orderedmap.OrderedMap, 0, len(result.Products))
	for _, p := range result.Products {
		rec := orderedmap.New()
		rec.Set(catalog.ColumnBrand, p.Brand)
		rec.Set(catalog.ColumnName, p.Name)
		rec.Set(catalog.ColumnPrice, p.Price)
		rec.Set(catalog.ColumnRank, p.Rank)
		rec.Set(catalog.ColumnIngredients, p.Ingredients)
		for i, s := range catalog.SkinTypes {
			rec.Set(string(s), i < len(p.Skin) && p.Skin[i])
		}
		rec.Set(RatingColumn, p.Rating)
		products = append(products, rec)
	}

	root := orderedmap.New()
	root.Set("summary", summary)
	root.Set("products", products)
	if len(result.Suggestions) > 0 {
		root.Set("suggestions", result.Suggestions)
	}
	return root
}

// writeSearchCSV writes products with the dataset header plus a rating
// column, so the output can be loaded again as a catalog.
//
// Parameters:
//   - f: The formatter instance to use for CSV writing
//   - result: Search result data containing product records
//
// Returns:
//   - error: When CSV write fails; returns nil on success
func writeSearchCSV(f *Formatter, result *SearchResult) error {
	headers := append(append([]string{}, catalog.RequiredColumns...), RatingColumn)
	rows := make([][]string, 0, len(result.Products))
	for _, p := range result.Products {
		row := []string{p.Brand, p.Name, floatCell(p.Price), floatCell(p.Rank), p.Ingredients}
		for i := range catalog.SkinTypes {
			flag := "0"
			if i < len(p.Skin) && p.Skin[i] {
				flag = "1"
			}
			row = append(row, flag)
		}
		row = append(row, p.Rating)
		rows = append(rows, row)
	}
	return f.WriteCSV(headers, rows)
}

// WriteSuggestionResult writes sampled ingredient names in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML or FormatCSV)
//   - result: Suggestions to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteSuggestionResult(w io.Writer, format Format, result *SuggestionResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		doc := orderedmap.New()
		doc.Set("available", result.Available)
		doc.Set("ingredients", result.Ingredients)
		return formatter.WriteJSON(doc)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		rows := make([][]string, 0, len(result.Ingredients))
		for _, name := range result.Ingredients {
			rows = append(rows, []string{name})
		}
		return formatter.WriteCSV([]string{"INGREDIENT"}, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return utils.FormatFloat(*v)
}
