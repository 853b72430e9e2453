package session

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "unchanged when width is 0",
			input:    "Paranoid Android",
			width:    0,
			expected: "Paranoid Android",
		},
		{
			name:     "unchanged when width is negative",
			input:    "Paranoid Android",
			width:    -1,
			expected: "Paranoid Android",
		},
		{
			name:     "short text is not padded",
			input:    "Creep",
			width:    10,
			expected: "Creep",
		},
		{
			name:     "exact width unchanged",
			input:    "Creep",
			width:    5,
			expected: "Creep",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "Everything In Its Right Place",
			width:    20,
			expected: "Everything In Its...",
		},
		{
			name:     "truncate wide characters",
			input:    "日本語のとても長いタイトル",
			width:    10,
			expected: "日本語...",
		},
		{
			name:     "minimum width for truncation",
			input:    "Creep",
			width:    3,
			expected: "...",
		},
		{
			name:     "narrower than ellipsis",
			input:    "Creep",
			width:    2,
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := fitWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("fitWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			// Result never exceeds the requested width
			if tt.width > 0 && runewidth.StringWidth(result) > tt.width {
				t.Errorf("fitWidth(%q, %d) produced width %d",
					tt.input, tt.width, runewidth.StringWidth(result))
			}
		})
	}
}
