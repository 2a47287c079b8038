package lexicon

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO form used throughout the dataset.
const DateLayout = "2006-01-02"

// monthCodes maps month names and abbreviations to their two-digit
// calendar code.
var monthCodes = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// Full month names match through their three-letter prefix, so
// "5 march" resolves via "mar".
var (
	dayMonthPattern = regexp.MustCompile(`(\d{1,2})\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)
	monthDayPattern = regexp.MustCompile(`(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s*(\d{1,2})`)
)

// DateExtractor resolves relative and patterned date mentions against a
// fixed reference day ("today" for the dataset).
type DateExtractor struct {
	reference time.Time
}

// NewDateExtractor builds an extractor whose "today" is the given
// reference day.
func NewDateExtractor(reference time.Time) *DateExtractor {
	return &DateExtractor{reference: reference}
}

// Reference returns the extractor's "today" in ISO form.
func (e *DateExtractor) Reference() string {
	return e.reference.Format(DateLayout)
}

// Extract pulls an explicit date out of the utterance, trying in order:
// "today", "yesterday", "<day> <month>" and "<month> <day>" patterns.
// Returns "" when the query carries no explicit date.
func (e *DateExtractor) Extract(utterance string) string {
	msg := Normalize(utterance)

	if strings.Contains(msg, "today") {
		return e.reference.Format(DateLayout)
	}
	if strings.Contains(msg, "yesterday") {
		return e.reference.AddDate(0, 0, -1).Format(DateLayout)
	}

	if m := dayMonthPattern.FindStringSubmatch(msg); m != nil {
		return e.composeDate(m[2], m[1])
	}
	if m := monthDayPattern.FindStringSubmatch(msg); m != nil {
		return e.composeDate(m[1], m[2])
	}
	return ""
}

func (e *DateExtractor) composeDate(month, day string) string {
	code, ok := monthCodes[month]
	if !ok {
		return ""
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%d-%s-%s", e.reference.Year(), code, day)
}
