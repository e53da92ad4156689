package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qazvoice/kaztts-service/internal/segment"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "windows line endings",
			input:    "бірінші жол\r\nекінші жол",
			expected: "бірінші жол\nекінші жол",
		},
		{
			name:     "smart quotes and dashes",
			input:    "«Сәлем» — деді ол…",
			expected: `"Сәлем" - деді ол...`,
		},
		{
			name:     "space runs collapse",
			input:    "бір \t екі   үш",
			expected: "бір екі үш",
		},
		{
			name:     "padding around newlines",
			input:    "бір  \n  екі",
			expected: "бір\nекі",
		},
		{
			name:     "blank line runs collapse",
			input:    "бір\n\n\n\nекі",
			expected: "бір\n\nекі",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  сәлем  ",
			expected: "сәлем",
		},
	}

	normalizer := segment.NewNormalizer()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, normalizer.Normalize(tc.input))
		})
	}
}
