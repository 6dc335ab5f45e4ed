// Package filtering selects and orders catalog products for skinmatch.
//
// Two modes share one range primitive (Criteria): skin-type mode keeps
// products whose suitability flag is set, ingredient mode keeps products
// whose ingredient list contains any query term as a substring.
//
// Skin Filtering:
//
//	criteria := filtering.Criteria{
//	    Price: filtering.Range{Min: 10, Max: 80},
//	    Rank:  filtering.Range{Min: 3, Max: 5},
//	}
//	products, err := filtering.FilterBySkin(cat, catalog.Oily, criteria)
//
// Ingredient Filtering:
//
//	terms := filtering.ParseQuery("Vitamin C, niacinamide")
//	result, err := filtering.FilterByIngredients(cat, terms, criteria)
//	if result.EmptyReason == filtering.ReasonUnrecognizedIngredient {
//	    // offer suggestions
//	}
//
// Sorting:
//
// Price is the primary key and rank the secondary key; both follow the
// same direction:
//
//	sorted := filtering.Sort(products, true)
//
// Search combines the above for the CLI and tags empty outcomes.
package filtering
