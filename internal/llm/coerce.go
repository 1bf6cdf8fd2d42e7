package llm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reDecimal = regexp.MustCompile(`\d+(\.\d+)?`)

// Number extracts a best-effort numeric value from a messy model field
// (e.g. "$4.2 billion", "65%"). It never fails: missing or empty input
// yields zero, so callers must treat zero as ambiguous between "true
// zero" and "absent". Magnitude words are NOT applied ("4.2 billion"
// stays 4.2); whether consumers expect pre-scaled values is unresolved.
func Number(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return numberFromString(v)
	default:
		return numberFromString(fmt.Sprint(v))
	}
}

func numberFromString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	m := reDecimal.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Text extracts a trimmed string from a model field, treating nil and
// non-string values leniently. Missing values become "".
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// TextOr returns Text(value) or a fallback when the field is empty.
func TextOr(value any, fallback string) string {
	if s := Text(value); s != "" {
		return s
	}
	return fallback
}
