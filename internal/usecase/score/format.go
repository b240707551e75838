package score

import (
	"math"
	"strconv"
	"strings"
)

// formatINR renders a rupee amount with en-IN digit grouping
// (last three digits, then pairs): 1234567 -> "12,34,567".
func formatINR(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append(parts, tail)
		s = head + "," + strings.Join(parts, ",")
	}
	if neg {
		s = "-" + s
	}
	return s
}

// formatPct trims a percentage to a compact decimal form: 10 -> "10",
// 12.5 -> "12.5".
func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
