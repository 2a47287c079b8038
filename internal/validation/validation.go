package validation

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUtteranceEmpty is returned when the line is empty or whitespace-only after trim.
var ErrUtteranceEmpty = errors.New("utterance is empty")

// ErrUtteranceTooLong is returned when the utterance length exceeds the maximum.
var ErrUtteranceTooLong = errors.New("utterance too long")

// ErrUtteranceInvalidChars is returned when the utterance contains control characters.
var ErrUtteranceInvalidChars = errors.New("utterance contains control characters")

// ValidateUtterance trims the input, enforces a maximum length (in
// runes) and rejects control characters. Returns the trimmed string.
// Everything printable is allowed; the matchers downstream work on raw
// substrings and need no further restriction.
func ValidateUtterance(input string, maxLen int) (string, error) {
	s := strings.TrimSpace(input)
	r := []rune(s)
	if len(r) == 0 {
		return "", ErrUtteranceEmpty
	}
	if maxLen > 0 && len(r) > maxLen {
		return "", ErrUtteranceTooLong
	}
	for _, c := range r {
		if unicode.IsControl(c) {
			return "", ErrUtteranceInvalidChars
		}
	}
	return s, nil
}
