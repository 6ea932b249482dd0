package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWord(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "lower case",
			raw:      "apple",
			expected: "APPLE",
		},
		{
			name:     "mixed case",
			raw:      "GoPher",
			expected: "GOPHER",
		},
		{
			name:     "surrounding whitespace is kept",
			raw:      " kiwi ",
			expected: " KIWI ",
		},
		{
			name:     "non ascii letters",
			raw:      "éclair",
			expected: "ÉCLAIR",
		},
		{
			name:     "sharp s expands",
			raw:      "straße",
			expected: "STRASSE",
		},
		{
			name:     "empty",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWord(tt.raw)
			assert.Equal(t, tt.expected, w.Text)
			assert.False(t, w.Fallback)
		})
	}
}

func TestFallbackWord(t *testing.T) {
	w := FallbackWord("python")

	assert.Equal(t, DefaultFallback, w.Text)
	assert.True(t, w.Fallback)
	assert.Equal(t, WordResponse{Word: "PYTHON"}, w.Response())
}

func TestWord_Len(t *testing.T) {
	assert.Equal(t, 5, NewWord("apple").Len())
	assert.Equal(t, 4, Word{Text: "ÉCLA"}.Len())
	assert.Equal(t, 0, Word{}.Len())
}
