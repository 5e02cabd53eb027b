package utils

import (
	"testing"
)

func TestIsStringInSlice(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack []string
		expected bool
	}{
		{
			name:     "string found in slice",
			needle:   "otterbourne",
			haystack: []string{"otterbourne", "highbridge", "allbrook"},
			expected: true,
		},
		{
			name:     "string not found in slice",
			needle:   "kingsworthy",
			haystack: []string{"otterbourne", "highbridge", "allbrook"},
			expected: false,
		},
		{
			name:     "empty slice",
			needle:   "otterbourne",
			haystack: []string{},
			expected: false,
		},
		{
			name:     "empty string in slice containing empty string",
			needle:   "",
			haystack: []string{"otterbourne", "", "allbrook"},
			expected: true,
		},
		{
			name:     "case sensitive",
			needle:   "Otterbourne",
			haystack: []string{"otterbourne", "highbridge"},
			expected: false,
		},
		{
			name:     "nil slice",
			needle:   "otterbourne",
			haystack: nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsStringInSlice(tt.needle, tt.haystack)
			if result != tt.expected {
				t.Errorf("IsStringInSlice(%q, %v) = %v, expected %v",
					tt.needle, tt.haystack, result, tt.expected)
			}
		})
	}
}
