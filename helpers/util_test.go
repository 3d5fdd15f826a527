package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	testCases := []struct {
		rawURL   string
		expected string
		wantErr  bool
	}{
		{
			rawURL:   "https://www.trendyol.com/x/y-p-123",
			expected: "www.trendyol.com",
		},
		{
			rawURL:   "https://zuber.com.tr:8080/products/abc",
			expected: "zuber.com.tr",
		},
		{
			rawURL:  "not a url at all",
			wantErr: true,
		},
		{
			rawURL:  "/relative/path",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		host, err := Host(tc.rawURL)
		if tc.wantErr {
			assert.Error(t, err, tc.rawURL)
			continue
		}
		assert.NoError(t, err, tc.rawURL)
		assert.Equal(t, tc.expected, host)
	}
}
