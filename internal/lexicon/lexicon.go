// Package lexicon implements the lexical primitives behind intent
// detection: case folding, substring keyword tests, area and location
// matching with a small abbreviation table, and date extraction.
//
// Matching is deliberately crude. There is no tokenization and no word
// boundary check, so a needle inside an unrelated word still matches
// ("best" matches "bestseller"). That is the extent of the system's
// language understanding.
package lexicon

import "strings"

// Normalize case-folds an utterance to lowercase. This is the sole
// normalization applied anywhere: no trimming, no punctuation stripping.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// ContainsKeyword reports whether needle occurs anywhere in haystack,
// case-insensitively.
func ContainsKeyword(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// ContainsAny reports whether any of the needles occurs in haystack.
func ContainsAny(haystack string, needles ...string) bool {
	h := Normalize(haystack)
	for _, n := range needles {
		if strings.Contains(h, n) {
			return true
		}
	}
	return false
}

// abbreviations maps short forms appearing in utterances to the full
// district name they stand for.
var abbreviations = map[string]string{
	"jb": "johor bahru",
	"kl": "kuala lumpur",
	"kk": "kota kinabalu",
}

// MatchesArea reports whether the utterance refers to the given
// district or state: by direct substring, by a known abbreviation whose
// full name appears in the district, or by the melaka/malacca synonym
// pair resolved against the state.
func MatchesArea(utterance, district, state string) bool {
	msg := Normalize(utterance)
	d := Normalize(district)
	st := Normalize(state)

	if strings.Contains(msg, d) || strings.Contains(msg, st) {
		return true
	}
	for abbr, full := range abbreviations {
		if strings.Contains(msg, abbr) && strings.Contains(d, full) {
			return true
		}
	}
	if (strings.Contains(msg, "melaka") || strings.Contains(msg, "malacca")) && strings.Contains(st, "malacca") {
		return true
	}
	return false
}

// MatchesLocation reports whether a detected location name refers to
// the given district or state. Direction is reversed relative to
// MatchesArea: the location must occur inside the district or state
// name, or be an abbreviation of the district.
func MatchesLocation(location, district, state string) bool {
	loc := Normalize(location)
	d := Normalize(district)
	st := Normalize(state)

	if strings.Contains(d, loc) || strings.Contains(st, loc) {
		return true
	}
	if full, ok := abbreviations[loc]; ok && strings.Contains(d, full) {
		return true
	}
	return false
}

// knownLocations is the fixed scan list for location detection, in
// priority order: the first name found in the utterance wins, with no
// disambiguation if several appear.
var knownLocations = []string{
	"kuala lumpur", "kl", "selangor", "penang", "johor", "johor bahru", "jb",
	"ipoh", "kuching", "kota kinabalu", "kk", "malacca", "melaka",
	"seremban", "alor setar", "kuala terengganu", "kota bharu",
	"shah alam", "petaling jaya", "pj", "subang", "puchong",
}

// DetectLocation scans the utterance for a known Malaysian place name
// or abbreviation and returns the first raw substring hit, or "" when
// none is present.
func DetectLocation(utterance string) string {
	msg := Normalize(utterance)
	for _, loc := range knownLocations {
		if strings.Contains(msg, loc) {
			return loc
		}
	}
	return ""
}
