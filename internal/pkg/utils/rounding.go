package utils

import (
	"math"
	"time"
)

// Round1 rounds v to one decimal place using round-half-up. Daily rates use
// this: 62.45 becomes 62.5, never 62.4.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// RoundWhole rounds v to the nearest whole number using round-half-up.
// Period percentages use this coarser granularity.
func RoundWhole(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DecimalHours converts a worked duration to decimal hours rounded half-up
// to one decimal place (8h05m -> 8.1).
func DecimalHours(d time.Duration) float64 {
	return Round1(d.Hours())
}

// Rate returns part/total*100 rounded to one decimal, or 0 when total is 0.
// Rates never divide by zero and always land in [0, 100] for part <= total.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}
