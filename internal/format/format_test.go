package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestETAAt(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name            string
		durationMinutes float64
		want            string
	}{
		{"zero duration", 0, "9:30 AM"},
		{"whole minutes", 15, "9:45 AM"},
		{"fractional minutes", 2.5, "9:32 AM"},
		{"crosses noon", 180, "12:30 PM"},
		{"crosses midnight", 900, "12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ETAAt(tt.durationMinutes, now))
		})
	}
}

func TestDistanceLabel(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		want  string
	}{
		{"short distance in feet", 0.05, "264 ft"},
		{"zero", 0, "0 ft"},
		{"just under threshold", 0.099, "523 ft"},
		{"at threshold", 0.1, "0.1 mi"},
		{"miles one decimal", 2.5, "2.5 mi"},
		{"rounding to one decimal", 1.26, "1.3 mi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistanceLabel(tt.miles))
		})
	}
}
