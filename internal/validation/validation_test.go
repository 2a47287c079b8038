package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUtterance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		maxLen  int
		want    string
		wantErr error
	}{
		{name: "plain text", input: "how is KL today", maxLen: 280, want: "how is KL today"},
		{name: "trims surrounding whitespace", input: "  rank areas \t", maxLen: 280, want: "rank areas"},
		{name: "empty", input: "", maxLen: 280, wantErr: ErrUtteranceEmpty},
		{name: "whitespace only", input: "   \t ", maxLen: 280, wantErr: ErrUtteranceEmpty},
		{name: "at limit", input: strings.Repeat("a", 10), maxLen: 10, want: strings.Repeat("a", 10)},
		{name: "over limit", input: strings.Repeat("a", 11), maxLen: 10, wantErr: ErrUtteranceTooLong},
		{name: "limit counts runes not bytes", input: strings.Repeat("é", 10), maxLen: 10, want: strings.Repeat("é", 10)},
		{name: "no limit when zero", input: strings.Repeat("a", 500), maxLen: 0, want: strings.Repeat("a", 500)},
		{name: "embedded control character", input: "hello\x00world", maxLen: 280, wantErr: ErrUtteranceInvalidChars},
		{name: "interior tab is a control character", input: "hello\tworld", maxLen: 280, wantErr: ErrUtteranceInvalidChars},
		{name: "emoji allowed", input: "air quality 🌞", maxLen: 280, want: "air quality 🌞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUtterance(tt.input, tt.maxLen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateUtterance(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateUtterance(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateUtterance(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
