package output

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/errors"
	"github.com/ajxudir/skinmatch/pkg/filtering"
)

// sampleSearchResult returns a result with one complete product and one
// without a rank.
func sampleSearchResult() *SearchResult {
	res := filtering.Result{
		Matched: 3,
		Products: []catalog.Product{
			{
				Brand:       "Acme",
				Name:        "Hydra Gel",
				Price:       sql.NullFloat64{Float64: 45, Valid: true},
				Rank:        sql.NullFloat64{Float64: 3.5, Valid: true},
				Ingredients: "Water, Vitamin C, Glycerin",
				Skin:        catalog.SkinFlags{Oily: true, Combination: true},
			},
			{
				Brand: "Bloom",
				Name:  "Mist",
				Price: sql.NullFloat64{Float64: 12.5, Valid: true},
				Skin:  catalog.SkinFlags{Dry: true},
			},
		},
	}
	out, err := NewSearchResult("ingredient", "vitamin c, aloe", "SAR", res, nil)
	if err != nil {
		panic(err)
	}
	return out
}

// TestNewSearchResult tests conversion from a filtering result.
//
// It verifies:
//   - Summary counts and outcome tag are copied
//   - Invalid values become nil
//   - Skin types are listed in dataset order
func TestNewSearchResult(t *testing.T) {
	result := sampleSearchResult()

	assert.Equal(t, "ingredient", result.Summary.Mode)
	assert.Equal(t, 3, result.Summary.Matched)
	assert.Equal(t, 2, result.Summary.Total)
	assert.Empty(t, result.Summary.EmptyReason)

	first := result.Products[0]
	require.NotNil(t, first.Price)
	assert.Equal(t, 45.0, *first.Price)
	assert.Equal(t, "⭐⭐⭐⭐☆", first.Rating)
	assert.Equal(t, []string{"Oily", "Combination"}, first.SkinTypes)
	assert.Equal(t, []bool{true, false, false, true, false}, first.Skin)

	second := result.Products[1]
	assert.Nil(t, second.Rank)
	assert.Empty(t, second.Rating)

	empty, err := NewSearchResult("skin", "Dry", "SAR", filtering.Result{EmptyReason: filtering.ReasonOutOfRange}, nil)
	require.NoError(t, err)
	assert.Equal(t, "out_of_range", empty.Summary.EmptyReason)
	assert.NotNil(t, empty.Products)
}

// TestNewSearchResult_FormatError tests that undrawable ranks fail conversion.
func TestNewSearchResult_FormatError(t *testing.T) {
	res := filtering.Result{Products: []catalog.Product{{Rank: sql.NullFloat64{Float64: 7, Valid: true}}}}
	_, err := NewSearchResult("skin", "Oily", "SAR", res, nil)
	_, ok := errors.IsFormatError(err)
	assert.True(t, ok)
}

// TestWriteSearchResult_JSON tests JSON output.
//
// It verifies:
//   - Output is valid JSON
//   - Product keys follow dataset column order
//   - Invalid ranks are null
func TestWriteSearchResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := sampleSearchResult()
	result.Suggestions = []string{"aloe"}
	require.NoError(t, WriteSearchResult(&buf, FormatJSON, result))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	summary := parsed["summary"].(map[string]interface{})
	assert.Equal(t, "ingredient", summary["mode"])
	assert.Equal(t, float64(2), summary["total"])
	assert.NotContains(t, summary, "empty_reason")
	assert.Equal(t, []interface{}{"aloe"}, parsed["suggestions"])

	products := parsed["products"].([]interface{})
	require.Len(t, products, 2)
	assert.Nil(t, products[1].(map[string]interface{})["Rank"])
	assert.Equal(t, true, products[0].(map[string]interface{})["Oily"])

	out := buf.String()
	order := []string{`"Brand"`, `"Name"`, `"Price"`, `"Rank"`, `"Ingredients"`, `"Oily"`, `"Dry"`, `"Normal"`, `"Combination"`, `"Sensitive"`, `"Rating"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
	assert.Less(t, strings.Index(out, `"summary"`), strings.Index(out, `"products"`))
}

// TestWriteSearchResult_XML tests XML output.
func TestWriteSearchResult_XML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearchResult(&buf, FormatXML, sampleSearchResult()))

	out := buf.String()
	assert.Contains(t, out, "<searchResult>")
	assert.Contains(t, out, "<brand>Acme</brand>")
	assert.Contains(t, out, "<skinType>Combination</skinType>")

	var parsed SearchResult
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.Len(t, parsed.Products, 2)
	assert.Nil(t, parsed.Products[1].Rank)
}

// TestWriteSearchResult_CSV tests that CSV output uses the catalog header.
func TestWriteSearchResult_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSearchResult(&buf, FormatCSV, sampleSearchResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, append(append([]string{}, catalog.RequiredColumns...), RatingColumn), records[0])
	assert.Equal(t, []string{"Acme", "Hydra Gel", "45", "3.5", "Water, Vitamin C, Glycerin", "1", "0", "0", "1", "0", "⭐⭐⭐⭐☆"}, records[1])
	assert.Equal(t, []string{"Bloom", "Mist", "12.5", "", "", "0", "1", "0", "0", "0", ""}, records[2])
}

// TestWriteSearchResult_Unsupported tests the unsupported format error.
func TestWriteSearchResult_Unsupported(t *testing.T) {
	err := WriteSearchResult(&bytes.Buffer{}, FormatText, sampleSearchResult())
	assert.ErrorContains(t, err, "unsupported format")
}

// TestWriteSuggestionResult tests suggestion output in each format.
func TestWriteSuggestionResult(t *testing.T) {
	result := &SuggestionResult{Available: 12, Ingredients: []string{"aloe", "water"}}

	var buf bytes.Buffer
	require.NoError(t, WriteSuggestionResult(&buf, FormatJSON, result))
	assert.Equal(t, `{"available":12,"ingredients":["aloe","water"]}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSuggestionResult(&buf, FormatXML, result))
	assert.Contains(t, buf.String(), "<ingredient>aloe</ingredient>")

	buf.Reset()
	require.NoError(t, WriteSuggestionResult(&buf, FormatCSV, result))
	assert.Equal(t, "INGREDIENT\naloe\nwater\n", buf.String())

	assert.Error(t, WriteSuggestionResult(&buf, FormatTable, result))
}
