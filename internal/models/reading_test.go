package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromAPI_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		api  float64
		want Status
	}{
		{"zero", 0, StatusGood},
		{"upper good", 50, StatusGood},
		{"lower moderate", 51, StatusModerate},
		{"upper moderate", 100, StatusModerate},
		{"lower unhealthy", 101, StatusUnhealthy},
		{"fractional average", 50.2, StatusModerate},
		{"extreme", 500, StatusUnhealthy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFromAPI(tc.api))
		})
	}
}

func TestAreaKey(t *testing.T) {
	r := Reading{District: "Johor Bahru", State: "Johor"}
	assert.Equal(t, "Johor Bahru, Johor", r.AreaKey())
}

func TestStoredStatusNotRecomputed(t *testing.T) {
	// The stored label and the threshold mapping can disagree for
	// malformed rows; both are preserved independently.
	r := Reading{API: 120, Status: StatusGood}
	assert.Equal(t, StatusGood, r.Status)
	assert.Equal(t, StatusUnhealthy, StatusFromAPI(float64(r.API)))
}
