package ingredients

import (
	"math/rand/v2"

	"github.com/ajxudir/skinmatch/pkg/catalog"
	"github.com/ajxudir/skinmatch/pkg/verbose"
)

// DefaultSuggestions is how many ingredient names are suggested when a
// query recognizes nothing.
const DefaultSuggestions = 3

// Unique returns every distinct normalized ingredient name in the catalog.
//
// Names appear in first-seen order (catalog order, then list order), which
// keeps seeded suggestion sampling reproducible.
//
// Parameters:
//   - cat: Catalog to index
//
// Returns:
//   - []string: Distinct names; empty when no product lists ingredients
//
// Example:
//
//	// Products with "A, b ,A" and "C"
//	ingredients.Unique(cat) // ["a", "b", "c"]
func Unique(cat *catalog.Catalog) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := 0; i < cat.Len(); i++ {
		for _, name := range Split(cat.At(i).Ingredients) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Suggest samples up to n distinct names uniformly without replacement.
//
// It performs the following operations:
//   - Step 1: Clamps the sample size to min(n, len(names))
//   - Step 2: Runs a partial Fisher-Yates shuffle on a copy of names
//
// Parameters:
//   - names: Candidate names, assumed distinct (see Unique)
//   - n: Requested sample size; n <= 0 yields no suggestions
//   - rng: Random source; pass a seeded source for deterministic output
//
// Returns:
//   - []string: Sampled names, never more than min(n, len(names)); names is not modified
func Suggest(names []string, n int, rng *rand.Rand) []string {
	k := min(n, len(names))
	if k <= 0 {
		return []string{}
	}

	pool := make([]string, len(names))
	copy(pool, names)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	verbose.Printf("Sampled %d of %d ingredient suggestions", k, len(names))
	return pool[:k]
}

// NewRand returns a random source for Suggest. A non-zero seed gives a
// reproducible sequence; zero draws a random seed.
//
// Parameters:
//   - seed: Fixed seed, or 0 for a random one
//
// Returns:
//   - *rand.Rand: PCG-backed random source
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	verbose.Printf("Suggestion seed: %d", seed)
	return rand.New(rand.NewPCG(seed, seed))
}
