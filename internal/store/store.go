// Package store holds the normalized in-memory table of daily
// air-quality readings. The table is populated once at startup and is
// read-only afterwards, so it may be shared freely across queries.
package store

import (
	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// Store is an ordered sequence of readings, insertion order = file order.
type Store struct {
	readings []models.Reading
}

// New builds a store over the given readings. A nil slice yields an
// empty store; every query then degrades to a "no data" response.
func New(readings []models.Reading) *Store {
	return &Store{readings: readings}
}

// All returns the readings in insertion order. Callers must not mutate
// the returned slice.
func (s *Store) All() []models.Reading {
	return s.readings
}

// Len reports the number of loaded readings.
func (s *Store) Len() int {
	return len(s.readings)
}

// Empty reports whether no readings were loaded.
func (s *Store) Empty() bool {
	return len(s.readings) == 0
}

// ForDate returns all readings with an exact date match, in insertion order.
func (s *Store) ForDate(date string) []models.Reading {
	var out []models.Reading
	for _, r := range s.readings {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// ForArea returns all readings for an exact (district, state) pair, in
// insertion order.
func (s *Store) ForArea(district, state string) []models.Reading {
	var out []models.Reading
	for _, r := range s.readings {
		if r.District == district && r.State == state {
			out = append(out, r)
		}
	}
	return out
}
