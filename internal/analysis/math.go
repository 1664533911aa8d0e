package analysis

import (
	"math"
	"sort"
)

// SafeDiv divides a by b, returning zero when the denominator is zero.
// Ratio calculations in this package never propagate NaN or infinities.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Sanitize maps NaN and infinities to zero so downstream renderers only
// ever see finite values.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Percent returns part as a percentage of total, rounded to two decimals.
func Percent(part, total float64) float64 {
	return Round2(SafeDiv(part, total) * 100)
}

// median returns the middle value of an unsorted slice, averaging the two
// central values for even lengths. Zero for an empty slice.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
