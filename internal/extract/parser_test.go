package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected float64
		ok       bool
	}{
		{
			name:     "turkish format with both separators",
			text:     "1.234,56 TL",
			expected: 1234.56,
			ok:       true,
		},
		{
			name:     "international format with both separators",
			text:     "$1,234.56",
			expected: 1234.56,
			ok:       true,
		},
		{
			name:     "last number wins",
			text:     "219 TL Sepette 208,05 TL",
			expected: 208.05,
			ok:       true,
		},
		{
			name:     "comma only is turkish decimal",
			text:     "₺520,50",
			expected: 520.5,
			ok:       true,
		},
		{
			name:     "dot with two fraction digits is decimal",
			text:     "134.42",
			expected: 134.42,
			ok:       true,
		},
		{
			name:     "dot with three digits is thousands separator",
			text:     "1.250 TL",
			expected: 1250,
			ok:       true,
		},
		{
			name:     "multiple dots are thousands separators",
			text:     "1.250.000",
			expected: 1250000,
			ok:       true,
		},
		{
			name:     "plain integer",
			text:     "211",
			expected: 211,
			ok:       true,
		},
		{
			name: "empty input",
			text: "",
		},
		{
			name: "no digits at all",
			text: "abc",
		},
		{
			name: "separators without digits",
			text: "fiyat: ,",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := ParsePrice(tc.text)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.expected, v, 0.0001)
			}
		})
	}
}

func TestParsePriceNeverPanics(t *testing.T) {
	// Junk the scraper has actually met in the wild
	inputs := []string{".", ",", "...", ",,,", ".,.,", "TL", "₺", " 1 2 3 "}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			ParsePrice(input)
		}, "input %q", input)
	}
}
