package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii string", "hello", 5},
		{"filled star is wide", "⭐", 2},
		{"empty star is narrow", "☆", 1},
		{"rating", "⭐⭐⭐☆☆", 8},
		{"cjk", "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayWidth(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "test", 0, "test"},
		{"negative width", "test", -1, "test"},
		{"exact width", "test", 4, "test"},
		{"longer than width", "testing", 4, "testing"},
		{"needs padding", "test", 8, "test    "},
		{"empty string", "", 4, "    "},
		{"wide glyphs", "⭐☆", 5, "⭐☆  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToWidth(tt.val, tt.width)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Water, Glyc…", Truncate("Water, Glycerin, Niacinamide", 12))
	assert.Equal(t, "short", Truncate("short", 12))
	assert.Equal(t, "anything", Truncate("anything", 0))
	assert.LessOrEqual(t, DisplayWidth(Truncate("⭐⭐⭐⭐⭐", 5)), 5)
}
