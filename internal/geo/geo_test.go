package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/geo"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		wantKm     float64
		tolerance  float64
	}{
		{
			name: "same point is zero",
			lat1: 52.52, lng1: 13.405,
			lat2: 52.52, lng2: 13.405,
			wantKm: 0, tolerance: 0.001,
		},
		{
			name: "across Berlin",
			lat1: 52.52, lng1: 13.405,
			lat2: 52.53, lng2: 13.40,
			wantKm: 1.16, tolerance: 0.1,
		},
		{
			name: "Berlin to Munich",
			lat1: 52.52, lng1: 13.405,
			lat2: 48.137, lng2: 11.575,
			wantKm: 504, tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	forward := geo.Distance(52.52, 13.405, 48.137, 11.575)
	backward := geo.Distance(48.137, 11.575, 52.52, 13.405)
	assert.InDelta(t, forward, backward, 0.0001)
}

func TestWithinRadius(t *testing.T) {
	// Roughly 1.16 km apart.
	lat1, lng1 := 52.52, 13.405
	lat2, lng2 := 52.53, 13.40

	assert.True(t, geo.WithinRadius(lat1, lng1, lat2, lng2, 25))
	assert.True(t, geo.WithinRadius(lat1, lng1, lat2, lng2, 1.2))
	assert.False(t, geo.WithinRadius(lat1, lng1, lat2, lng2, 0.5))
}
