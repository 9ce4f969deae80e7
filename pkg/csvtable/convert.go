// Type coercion for field values.
//
// Fields are stored as strings and parsed on demand. Parsing never fails:
// content that does not parse as the requested type yields that type's zero
// value.
package csvtable

import (
	"strconv"
	"strings"
)

// parseInt converts a field value to an int.
//
// Plain integer parsing is tried first; values with a fractional part such
// as "42.7" fall back to a float parse and truncate toward zero. Anything
// else yields 0.
func parseInt(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// parseFloat converts a field value to a float64, yielding 0 when the value
// is not a valid number.
func parseFloat(value string) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBool converts a field value to a bool. The tokens "1" and "true"
// (case-insensitive, surrounding whitespace ignored) are true; every other
// value, including "yes" and non-zero numbers, is false.
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// formatInt renders an int as a field value.
func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatFloat renders a float64 as a field value using the shortest
// representation that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatBool renders a bool as a field value, "1" or "0".
func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
