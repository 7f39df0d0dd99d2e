package textutil

import (
	"fmt"
	"math"
	"time"
)

// Ternary is a generic conditional helper that returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Plural returns word with an "s" suffix unless count is exactly one.
func Plural(count int, word string) string {
	return word + Ternary(count == 1, "", "s")
}

// FormatElapsed rounds d to the nearest second and renders it as H:MM:SS.
// Durations of a day or more gain a "N day(s), " prefix.
func FormatElapsed(d time.Duration) string {
	total := int64(math.Round(d.Seconds()))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	days := total / 86400
	rem := total % 86400
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, (rem%3600)/60, rem%60)
	if days == 0 {
		return sign + clock
	}
	return fmt.Sprintf("%s%d %s, %s", sign, days, Plural(int(days), "day"), clock)
}
