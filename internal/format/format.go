// Package format renders travel estimates as display strings for the UI layer.
package format

import (
	"fmt"
	"math"
	"time"
)

const (
	feetPerMile = 5280

	// clockLayout renders a 12-hour clock with an AM/PM suffix.
	clockLayout = "3:04 PM"
)

// ETAAt returns the estimated arrival time, durationMinutes from now,
// rendered on a 12-hour clock.
func ETAAt(durationMinutes float64, now time.Time) string {
	arrival := now.Add(time.Duration(durationMinutes * float64(time.Minute)))
	return arrival.Format(clockLayout)
}

// ETA is ETAAt against the real wall clock.
func ETA(durationMinutes float64) string {
	return ETAAt(durationMinutes, time.Now())
}

// DistanceLabel renders a distance in miles as a human-readable string:
// whole feet below a tenth of a mile, otherwise miles to one decimal place.
func DistanceLabel(miles float64) string {
	if miles < 0.1 {
		return fmt.Sprintf("%d ft", int(math.Round(miles*feetPerMile)))
	}
	return fmt.Sprintf("%.1f mi", miles)
}
