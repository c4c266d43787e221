package analytics

import "math"

// GrowthRate returns the rounded period-over-period growth percentage.
// A previous of zero yields 100 when anything grew and 0 otherwise, so a
// brand-new store does not divide by zero.
func GrowthRate(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// roundPercent converts a part/whole ratio to a rounded percentage.
func roundPercent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}
