package aggregate

import (
	"strings"

	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// Trend verdict constants. A mean shift of more than five points in
// either direction counts as a real change.
const (
	TrendWorsened = "worsened"
	TrendImproved = "improved"
	TrendStable   = "stable"

	trendThreshold = 5.0
)

// Date sub-ranges compared by trend analysis: the month's opening days
// against its closing days.
var (
	earlyTrendDates = []string{"2025-11-01", "2025-11-02", "2025-11-03"}
	lateTrendDates  = []string{"2025-11-27", "2025-11-28", "2025-11-29"}
)

// TrendAnalysis compares mean API across the two fixed sub-ranges.
type TrendAnalysis struct {
	EarlyAverage float64
	LateAverage  float64
	Verdict      string
}

// AnalyzeTrend computes the early-vs-late month comparison. Returns
// false when either sub-range has no readings.
func AnalyzeTrend(readings []models.Reading) (TrendAnalysis, bool) {
	var early, late []models.Reading
	for _, r := range readings {
		if containsDate(earlyTrendDates, r.Date) {
			early = append(early, r)
		}
		if containsDate(lateTrendDates, r.Date) {
			late = append(late, r)
		}
	}
	if len(early) == 0 || len(late) == 0 {
		return TrendAnalysis{}, false
	}

	t := TrendAnalysis{
		EarlyAverage: meanAPI(early),
		LateAverage:  meanAPI(late),
	}
	switch change := t.LateAverage - t.EarlyAverage; {
	case change > trendThreshold:
		t.Verdict = TrendWorsened
	case change < -trendThreshold:
		t.Verdict = TrendImproved
	default:
		t.Verdict = TrendStable
	}
	return t, true
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func meanAPI(readings []models.Reading) float64 {
	total := 0
	for _, r := range readings {
		total += r.API
	}
	return float64(total) / float64(len(readings))
}

// MonthSummary is a per-month mean and record count.
type MonthSummary struct {
	Average float64
	Count   int
}

// SummarizeMonth averages all readings whose date starts with the given
// "YYYY-MM" prefix. Returns false when the month has no readings.
func SummarizeMonth(readings []models.Reading, monthPrefix string) (MonthSummary, bool) {
	var month []models.Reading
	for _, r := range readings {
		if strings.HasPrefix(r.Date, monthPrefix) {
			month = append(month, r)
		}
	}
	if len(month) == 0 {
		return MonthSummary{}, false
	}
	return MonthSummary{Average: meanAPI(month), Count: len(month)}, true
}

// Statistics is the dataset-wide summary for the "stat" intent. Status
// counts use the stored labels, not derived ones.
type Statistics struct {
	Records   int
	Districts int
	Average   float64
	Max       int
	Min       int
	Good      int
	Moderate  int
	Unhealthy int
}

// Summarize computes dataset-wide statistics. Returns false for an
// empty dataset.
func Summarize(readings []models.Reading) (Statistics, bool) {
	if len(readings) == 0 {
		return Statistics{}, false
	}
	s := Statistics{
		Records:   len(readings),
		Districts: CountDistricts(readings),
		Max:       readings[0].API,
		Min:       readings[0].API,
	}
	total := 0
	for _, r := range readings {
		total += r.API
		switch r.Status {
		case models.StatusGood:
			s.Good++
		case models.StatusModerate:
			s.Moderate++
		case models.StatusUnhealthy:
			s.Unhealthy++
		}
		if r.API > s.Max {
			s.Max = r.API
		}
		if r.API < s.Min {
			s.Min = r.API
		}
	}
	s.Average = float64(total) / float64(len(readings))
	return s, true
}
