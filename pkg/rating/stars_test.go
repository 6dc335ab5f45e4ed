package rating

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/skinmatch/pkg/errors"
)

// TestFormatStars tests star rendering across the scale.
//
// It verifies:
//   - Endpoints render all empty and all filled
//   - Whole numbers render exactly
//   - Halves round to even
//   - Other fractions round to nearest
func TestFormatStars(t *testing.T) {
	tests := []struct {
		name string
		rank float64
		want string
	}{
		{"zero", 0, "☆☆☆☆☆"},
		{"five", 5, "⭐⭐⭐⭐⭐"},
		{"three", 3, "⭐⭐⭐☆☆"},
		{"three and a half rounds up to even", 3.5, "⭐⭐⭐⭐☆"},
		{"two and a half rounds down to even", 2.5, "⭐⭐☆☆☆"},
		{"half rounds down to zero", 0.5, "☆☆☆☆☆"},
		{"four and a half rounds to four", 4.5, "⭐⭐⭐⭐☆"},
		{"just above half", 2.51, "⭐⭐⭐☆☆"},
		{"below half", 4.1, "⭐⭐⭐⭐☆"},
		{"one", 1, "⭐☆☆☆☆"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatStars(tt.rank)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 5, utf8.RuneCountInString(got))
		})
	}
}

// TestFormatStarsInvalid tests that unusable ratings are reported, not coerced.
func TestFormatStarsInvalid(t *testing.T) {
	for _, rank := range []float64{-0.1, 5.01, 10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatStars(rank)
		fe, ok := errors.IsFormatError(err)
		require.True(t, ok, "rank %v", rank)
		if !math.IsNaN(rank) {
			assert.Equal(t, rank, fe.Value)
		}
	}
}

// TestFilledStars tests the star count directly.
func TestFilledStars(t *testing.T) {
	n, err := FilledStars(4.6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = FilledStars(-1)
	assert.Error(t, err)
}
