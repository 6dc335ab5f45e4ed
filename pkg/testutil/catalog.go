package testutil

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/utils"
)

// ProductBuilder assembles catalog.Product values for tests.
//
// Price and Rank start invalid; set them explicitly.
type ProductBuilder struct {
	p catalog.Product
}

// NewProduct starts a product with the given brand and name.
//
// Example:
//
//	p := testutil.NewProduct("Acme", "Gel").Price(45).Rank(4.2).Skin(catalog.Oily).Build()
func NewProduct(brand, name string) *ProductBuilder {
	return &ProductBuilder{p: catalog.Product{Brand: brand, Name: name}}
}

// Price sets a valid price.
func (b *ProductBuilder) Price(v float64) *ProductBuilder {
	b.p.Price = sql.NullFloat64{Float64: v, Valid: true}
	return b
}

// Rank sets a valid rank.
func (b *ProductBuilder) Rank(v float64) *ProductBuilder {
	b.p.Rank = sql.NullFloat64{Float64: v, Valid: true}
	return b
}

// Ingredients sets the raw ingredient list.
func (b *ProductBuilder) Ingredients(list string) *ProductBuilder {
	b.p.Ingredients = list
	return b
}

// Skin sets the flags of the given skin types to true.
func (b *ProductBuilder) Skin(types ...catalog.SkinType) *ProductBuilder {
	for _, s := range types {
		switch s {
		case catalog.Oily:
			b.p.Skin.Oily = true
		case catalog.Dry:
			b.p.Skin.Dry = true
		case catalog.Normal:
			b.p.Skin.Normal = true
		case catalog.Combination:
			b.p.Skin.Combination = true
		case catalog.Sensitive:
			b.p.Skin.Sensitive = true
		}
	}
	return b
}

// Build returns the assembled product.
func (b *ProductBuilder) Build() catalog.Product {
	return b.p
}

// NewCatalog wraps products in an in-memory catalog named "memory".
func NewCatalog(products ...catalog.Product) *catalog.Catalog {
	return catalog.New("memory", products)
}

// WriteCatalogCSV writes products as a catalog CSV file in dir and returns its path.
//
// Invalid prices and ranks are written as empty cells.
//
// Parameters:
//   - t: Testing instance; the test fails on write errors
//   - dir: Target directory, usually t.TempDir()
//   - products: Rows to write in order
//
// Returns:
//   - string: Path of the written "cosmetics.csv"
func WriteCatalogCSV(t *testing.T, dir string, products []catalog.Product) string {
	t.Helper()

	path := filepath.Join(dir, "cosmetics.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create catalog fixture: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write(catalog.RequiredColumns)
	for _, p := range products {
		row := []string{p.Brand, p.Name, nullCell(p.Price), nullCell(p.Rank), p.Ingredients}
		for _, s := range catalog.SkinTypes {
			row = append(row, flagCell(p.Skin.Suits(s)))
		}
		_ = w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func nullCell(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return utils.FormatFloat(v.Float64)
}

func flagCell(set bool) string {
	if set {
		return "1"
	}
	return "0"
}
