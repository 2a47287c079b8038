package aggregate

import (
	"time"

	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
)

// The dataset covers a fixed one-month window.
const (
	WindowStart = "2025-10-29"
	WindowEnd   = "2025-11-29"
)

var (
	windowStart, _ = time.Parse(lexicon.DateLayout, WindowStart)
	windowEnd, _   = time.Parse(lexicon.DateLayout, WindowEnd)
)

// PreviousDate steps an ISO date back one calendar day. Dates outside
// the dataset window, the window's earliest date, and unparseable
// strings all yield "", signaling that no prior reading can exist.
func PreviousDate(date string) string {
	d, err := time.Parse(lexicon.DateLayout, date)
	if err != nil {
		return ""
	}
	if d.After(windowEnd) || !d.After(windowStart) {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(lexicon.DateLayout)
}

// InWindow reports whether an ISO date falls inside the dataset window.
func InWindow(date string) bool {
	d, err := time.Parse(lexicon.DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(windowStart) && !d.After(windowEnd)
}
