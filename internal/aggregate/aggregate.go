// Package aggregate turns raw readings into the grouped, averaged and
// sorted views the intent cascade reports on. All functions are pure
// over a readings slice; the store is never mutated.
package aggregate

import (
	"sort"

	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// AreaAverage is one area's arithmetic mean API value.
type AreaAverage struct {
	Area    string
	Average float64
}

// AverageByArea groups readings by area key and computes the mean API
// per group. Output order follows first appearance of each area;
// callers sort explicitly.
func AverageByArea(readings []models.Reading) []AreaAverage {
	sums := make(map[string]int)
	counts := make(map[string]int)
	var order []string
	for _, r := range readings {
		key := r.AreaKey()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		sums[key] += r.API
		counts[key]++
	}

	averages := make([]AreaAverage, 0, len(order))
	for _, key := range order {
		averages = append(averages, AreaAverage{
			Area:    key,
			Average: float64(sums[key]) / float64(counts[key]),
		})
	}
	return averages
}

// SortAveragesAscending orders areas cleanest-first (lower mean is better).
func SortAveragesAscending(averages []AreaAverage) {
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average < averages[j].Average
	})
}

// SortAveragesDescending orders areas most-polluted-first.
func SortAveragesDescending(averages []AreaAverage) {
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average > averages[j].Average
	})
}

// TopAreas returns the n areas with the highest mean API.
func TopAreas(readings []models.Reading, n int) []AreaAverage {
	averages := AverageByArea(readings)
	SortAveragesDescending(averages)
	if len(averages) > n {
		averages = averages[:n]
	}
	return averages
}

// LatestByDistrict keeps, per district, the reading with the greatest
// date string (ISO dates make lexicographic order chronological).
// Equal dates are resolved last-seen-wins.
func LatestByDistrict(readings []models.Reading) map[string]models.Reading {
	latest := make(map[string]models.Reading)
	for _, r := range readings {
		cur, ok := latest[r.District]
		if !ok || r.Date >= cur.Date {
			latest[r.District] = r
		}
	}
	return latest
}

// LatestSortedByAPI flattens LatestByDistrict into a slice ordered by
// API value. Districts are pre-sorted by name so equal readings keep a
// deterministic order.
func LatestSortedByAPI(readings []models.Reading, descending bool) []models.Reading {
	latest := LatestByDistrict(readings)
	districts := make([]string, 0, len(latest))
	for d := range latest {
		districts = append(districts, d)
	}
	sort.Strings(districts)

	out := make([]models.Reading, 0, len(districts))
	for _, d := range districts {
		out = append(out, latest[d])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].API > out[j].API
		}
		return out[i].API < out[j].API
	})
	return out
}

// SortByAPI orders a copy of the readings by raw API value. Ties keep
// input order.
func SortByAPI(readings []models.Reading, descending bool) []models.Reading {
	out := make([]models.Reading, len(readings))
	copy(out, readings)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].API > out[j].API
		}
		return out[i].API < out[j].API
	})
	return out
}

// DateSummary condenses one day's readings: mean, the first-encountered
// extremes, and the number of areas reporting.
type DateSummary struct {
	Average float64
	Worst   models.Reading
	Best    models.Reading
	Count   int
}

// SummarizeDate computes the summary over readings already filtered to
// a single date. Returns false for an empty slice; callers must not
// average over zero records.
func SummarizeDate(readings []models.Reading) (DateSummary, bool) {
	if len(readings) == 0 {
		return DateSummary{}, false
	}
	s := DateSummary{Best: readings[0], Worst: readings[0], Count: len(readings)}
	total := 0
	for _, r := range readings {
		total += r.API
		if r.API > s.Worst.API {
			s.Worst = r
		}
		if r.API < s.Best.API {
			s.Best = r
		}
	}
	s.Average = float64(total) / float64(len(readings))
	return s, true
}

// HistoryForArea returns the area's readings sorted by date descending,
// supporting "latest", one-step trend and last-5-days views.
func HistoryForArea(readings []models.Reading, district, state string) []models.Reading {
	var out []models.Reading
	for _, r := range readings {
		if r.District == district && r.State == state {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// CountDistricts counts unique (district, state) pairs.
func CountDistricts(readings []models.Reading) int {
	seen := make(map[string]struct{})
	for _, r := range readings {
		seen[r.District+r.State] = struct{}{}
	}
	return len(seen)
}

// CountDays counts unique dates in the dataset.
func CountDays(readings []models.Reading) int {
	seen := make(map[string]struct{})
	for _, r := range readings {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}
