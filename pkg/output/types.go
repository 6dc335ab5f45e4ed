package output

import (
	"database/sql"
	"encoding/xml"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/filtering"
	"github.com/ajxudir/skinmatch/pkg/rating"
)

// SearchResult represents the output data for the skin and ingredients commands.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: What was searched and how many products survived
//   - Products: Matching products in display order
//   - Suggestions: Ingredient suggestions for an unrecognized query (omitted if empty)
type SearchResult struct {
	XMLName     xml.Name        `json:"-" xml:"searchResult"`
	Summary     SearchSummary   `json:"summary" xml:"summary"`
	Products    []ProductRecord `json:"products" xml:"products>product"`
	Suggestions []string        `json:"suggestions,omitempty" xml:"suggestions>suggestion,omitempty"`
}

// SearchSummary holds the parameters and counts of a search.
//
// Fields:
//   - Mode: "skin" or "ingredient"
//   - Query: Skin type name or raw ingredient query
//   - Currency: Currency label of the prices
//   - Matched: Products that passed the mode predicate before range filtering
//   - Total: Number of products returned
//   - EmptyReason: Outcome tag for an empty result (omitted if not empty)
type SearchSummary struct {
	Mode        string `json:"mode" xml:"mode"`
	Query       string `json:"query" xml:"query"`
	Currency    string `json:"currency" xml:"currency"`
	Matched     int    `json:"matched" xml:"matched"`
	Total       int    `json:"total" xml:"total"`
	EmptyReason string `json:"empty_reason,omitempty" xml:"emptyReason,omitempty"`
}

// ProductRecord represents one product in structured output.
//
// Fields:
//   - Brand: Product brand
//   - Name: Product name
//   - Price: Price, nil when the catalog value is invalid
//   - Rank: Rank, nil when the catalog value is invalid
//   - Rating: Star string for Rank, empty when Rank is nil
//   - Ingredients: Raw ingredient list
//   - Skin: Skin type flags in dataset column order
type ProductRecord struct {
	Brand       string   `json:"brand" xml:"brand"`
	Name        string   `json:"name" xml:"name"`
	Price       *float64 `json:"price" xml:"price,omitempty"`
	Rank        *float64 `json:"rank" xml:"rank,omitempty"`
	Rating      string   `json:"rating" xml:"rating"`
	Ingredients string   `json:"ingredients" xml:"ingredients"`
	Skin        []bool   `json:"-" xml:"-"`
	SkinTypes   []string `json:"skin_types" xml:"skinTypes>skinType"`
}

// SuggestionResult represents the output data for the suggest command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Available: Number of distinct ingredients in the catalog
//   - Ingredients: Sampled ingredient names
type SuggestionResult struct {
	XMLName     xml.Name `json:"-" xml:"suggestions"`
	Available   int      `json:"available" xml:"available"`
	Ingredients []string `json:"ingredients" xml:"ingredient"`
}

// NewSearchResult converts a filtering result into its output form.
//
// Parameters:
//   - mode: Search mode
//   - query: Skin type name or raw ingredient query
//   - currency: Currency label
//   - res: Filtering result
//   - suggestions: Ingredient suggestions, may be nil
//
// Returns:
//   - *SearchResult: Output data
//   - error: *errors.FormatError if a product rank cannot be drawn as stars
func NewSearchResult(mode, query, currency string, res filtering.Result, suggestions []string) (*SearchResult, error) {
	out := &SearchResult{
		Summary: SearchSummary{
			Mode:        mode,
			Query:       query,
			Currency:    currency,
			Matched:     res.Matched,
			Total:       len(res.Products),
			EmptyReason: string(res.EmptyReason),
		},
		Products:    make([]ProductRecord, 0, len(res.Products)),
		Suggestions: suggestions,
	}
	for _, p := range res.Products {
		rec, err := NewProductRecord(p)
		if err != nil {
			return nil, err
		}
		out.Products = append(out.Products, rec)
	}
	return out, nil
}

// NewProductRecord converts a catalog product into its output form.
//
// Parameters:
//   - p: Catalog product
//
// Returns:
//   - ProductRecord: Output record
//   - error: *errors.FormatError if a valid rank is outside [0, 5]
func NewProductRecord(p catalog.Product) (ProductRecord, error) {
	rec := ProductRecord{
		Brand:       p.Brand,
		Name:        p.Name,
		Price:       nullable(p.Price),
		Rank:        nullable(p.Rank),
		Ingredients: p.Ingredients,
		Skin:        make([]bool, len(catalog.SkinTypes)),
		SkinTypes:   make([]string, 0, len(catalog.SkinTypes)),
	}
	if p.Rank.Valid {
		stars, err := rating.FormatStars(p.Rank.Float64)
		if err != nil {
			return ProductRecord{}, err
		}
		rec.Rating = stars
	}
	for i, s := range catalog.SkinTypes {
		rec.Skin[i] = p.Skin.Suits(s)
		if rec.Skin[i] {
			rec.SkinTypes = append(rec.SkinTypes, string(s))
		}
	}
	return rec, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
