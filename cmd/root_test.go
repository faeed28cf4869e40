package cmd

import (
	"net/http"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected http.Header
	}{
		{
			name:     "single header",
			input:    []string{"Authorization: Bearer token"},
			expected: http.Header{"Authorization": []string{"Bearer token"}},
		},
		{
			name:  "multiple headers",
			input: []string{"Authorization: Bearer token", "X-Api-Key: secret"},
			expected: http.Header{
				"Authorization": []string{"Bearer token"},
				"X-Api-Key":     []string{"secret"},
			},
		},
		{
			name:     "value containing the separator",
			input:    []string{"X-Note: a: b: c"},
			expected: http.Header{"X-Note": []string{"a: b: c"}},
		},
		{
			name:     "missing separator dropped silently",
			input:    []string{"NoSeparator"},
			expected: http.Header{},
		},
		{
			name:     "colon without space dropped silently",
			input:    []string{"Key:value"},
			expected: http.Header{},
		},
		{
			name:     "empty key dropped silently",
			input:    []string{": value"},
			expected: http.Header{},
		},
		{
			name:     "no headers",
			input:    nil,
			expected: http.Header{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseHeaders(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("parseHeaders(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
