package utils

import (
	"fmt"
	"strings"
	"time"
)

// Constants
const (
	EMAIL_DATE_LAYOUT = "Monday, January 2, 2006"
)

// FormatKSH formats an amount of Kenyan shillings with thousands separators,
// e.g. 18000 -> "KSH 18,000".
func FormatKSH(amount int64) string {
	return "KSH " + GroupDigits(amount)
}

// GroupDigits renders an integer with comma thousands separators
func GroupDigits(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}

// FormatEmailDate renders a calendar date the way guest emails show it,
// e.g. "Sunday, June 1, 2025".
func FormatEmailDate(t time.Time) string {
	return t.Format(EMAIL_DATE_LAYOUT)
}
