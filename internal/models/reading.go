package models

// Status is the categorical air-quality label attached to a reading.
type Status string

const (
	StatusGood      Status = "Good"
	StatusModerate  Status = "Moderate"
	StatusUnhealthy Status = "Unhealthy"
)

// StatusFromAPI maps a numeric API value to its category: <=50 Good,
// <=100 Moderate, above that Unhealthy. Used for labels derived from
// computed averages; the Status stored on a Reading comes from the
// source file and is never recomputed.
func StatusFromAPI(api float64) Status {
	if api <= 50 {
		return StatusGood
	}
	if api <= 100 {
		return StatusModerate
	}
	return StatusUnhealthy
}

// Reading is one district's daily Air Pollutant Index record.
// Immutable once loaded.
type Reading struct {
	District string
	State    string
	API      int
	Status   Status // stored label from the source file, taken as given
	Date     string // ISO "YYYY-MM-DD"; lexicographic order = chronological
}

// AreaKey is the derived grouping identity for averaging and
// latest-reading lookups.
func (r Reading) AreaKey() string {
	return r.District + ", " + r.State
}
