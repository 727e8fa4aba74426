package tokcount

import "strconv"

// FormatBadge formats a token count as a badge of at most three characters,
// e.g. "7", "4T" (tens), "3H" (hundreds), "12K", "2M".
// Each unit saturates before the next one takes over.
func FormatBadge(count int) string {
	switch {
	case count >= 1_000_000:
		return strconv.Itoa(min(count/1_000_000, 99)) + "M"
	case count >= 1_000:
		return strconv.Itoa(min(count/1_000, 99)) + "K"
	case count >= 100:
		return strconv.Itoa(min(count/100, 9)) + "H"
	case count >= 10:
		return strconv.Itoa(count/10) + "T"
	case count > 0:
		return strconv.Itoa(count)
	default:
		return "0"
	}
}
