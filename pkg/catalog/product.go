// Package catalog loads the cosmetics product table and exposes it as an
// immutable, randomly indexable collection.
//
// A catalog is read once per source (see Loader) and never mutated
// afterwards; filtering functions receive the *Catalog explicitly.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ajxudir/skinmatch/pkg/errors"
)

// Dataset column names. Headers must match these exactly.
const (
	ColumnBrand       = "Brand"
	ColumnName        = "Name"
	ColumnPrice       = "Price"
	ColumnRank        = "Rank"
	ColumnIngredients = "Ingredients"
	ColumnOily        = "Oily"
	ColumnDry         = "Dry"
	ColumnNormal      = "Normal"
	ColumnCombination = "Combination"
	ColumnSensitive   = "Sensitive"
)

// RequiredColumns lists every column a catalog source must provide, in
// dataset order.
var RequiredColumns = []string{
	ColumnBrand,
	ColumnName,
	ColumnPrice,
	ColumnRank,
	ColumnIngredients,
	ColumnOily,
	ColumnDry,
	ColumnNormal,
	ColumnCombination,
	ColumnSensitive,
}

// SkinType names one of the five skin-type suitability flags.
type SkinType string

// The five skin types, matching the dataset's flag column names.
const (
	Oily        SkinType = ColumnOily
	Dry         SkinType = ColumnDry
	Normal      SkinType = ColumnNormal
	Combination SkinType = ColumnCombination
	Sensitive   SkinType = ColumnSensitive
)

// SkinTypes lists all skin types in dataset column order.
var SkinTypes = []SkinType{Oily, Dry, Normal, Combination, Sensitive}

// SkinTypeNames returns the canonical skin type names.
func SkinTypeNames() []string {
	names := make([]string, len(SkinTypes))
	for i, s := range SkinTypes {
		names[i] = string(s)
	}
	return names
}

// ParseSkinType resolves a user-supplied skin type name, ignoring case and
// surrounding whitespace.
//
// Parameters:
//   - s: Skin type name such as "oily" or "Combination"
//
// Returns:
//   - SkinType: The canonical skin type
//   - error: *errors.ValidationError listing valid names when s is unknown
func ParseSkinType(s string) (SkinType, error) {
	trimmed := strings.TrimSpace(s)
	for _, st := range SkinTypes {
		if strings.EqualFold(trimmed, string(st)) {
			return st, nil
		}
	}
	return "", errors.NewInputValidationError("skin type", fmt.Sprintf("unknown skin type %q", s), SkinTypeNames())
}

// Valid reports whether s is one of the five known skin types.
func (s SkinType) Valid() bool {
	for _, st := range SkinTypes {
		if s == st {
			return true
		}
	}
	return false
}

// SkinFlags holds the five independent suitability flags of a product.
type SkinFlags struct {
	Oily        bool
	Dry         bool
	Normal      bool
	Combination bool
	Sensitive   bool
}

// Suits reports whether the flag for skin type s is set.
// Unknown skin types never match.
func (f SkinFlags) Suits(s SkinType) bool {
	switch s {
	case Oily:
		return f.Oily
	case Dry:
		return f.Dry
	case Normal:
		return f.Normal
	case Combination:
		return f.Combination
	case Sensitive:
		return f.Sensitive
	default:
		return false
	}
}

// set assigns the flag for skin type s.
func (f *SkinFlags) set(s SkinType, v bool) {
	switch s {
	case Oily:
		f.Oily = v
	case Dry:
		f.Dry = v
	case Normal:
		f.Normal = v
	case Combination:
		f.Combination = v
	case Sensitive:
		f.Sensitive = v
	}
}

// Product is one row of the catalog.
//
// Price and Rank are nullable: a missing or unparseable value has
// Valid == false and excludes the product from every numeric range filter.
type Product struct {
	Brand       string
	Name        string
	Price       sql.NullFloat64
	Rank        sql.NullFloat64
	Ingredients string
	Skin        SkinFlags
}

// DisplayName returns the "Brand - Name" header used when presenting a product.
func (p Product) DisplayName() string {
	return p.Brand + " - " + p.Name
}

// Catalog is the immutable in-memory product table of a session.
type Catalog struct {
	source   string
	products []Product
}

// New creates a catalog from products. The slice is copied, so later
// changes by the caller do not affect the catalog.
//
// Parameters:
//   - source: Where the products came from, for messages and logs
//   - products: Catalog rows in dataset order
//
// Returns:
//   - *Catalog: New immutable catalog
func New(source string, products []Product) *Catalog {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Catalog{source: source, products: cp}
}

// Source returns the path the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// At returns the product at index i in dataset order. It panics if i is
// out of range, like a slice index.
func (c *Catalog) At(i int) Product {
	return c.products[i]
}

// Products returns a copy of all products in dataset order.
func (c *Catalog) Products() []Product {
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// PriceBounds returns the lowest and highest valid price in the catalog.
//
// Returns:
//   - float64: Minimum valid price
//   - float64: Maximum valid price
//   - bool: false when no product has a valid price
func (c *Catalog) PriceBounds() (float64, float64, bool) {
	var lo, hi float64
	found := false
	for _, p := range c.products {
		if !p.Price.Valid {
			continue
		}
		if !found || p.Price.Float64 < lo {
			lo = p.Price.Float64
		}
		if !found || p.Price.Float64 > hi {
			hi = p.Price.Float64
		}
		found = true
	}
	return lo, hi, found
}
