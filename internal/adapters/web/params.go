package web

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// queryNumber parses a numeric query parameter. Absent or malformed values
// come back as NaN, which the core paging normalization treats the same as
// any other non-finite input: replace with the default. Malformed input is
// therefore coerced, never rejected.
func queryNumber(q url.Values, key string) float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// queryInt parses an integer query parameter with a fallback for absent or
// malformed values.
func queryInt(q url.Values, key string, fallback int) int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// bodyString trims a request body field; empty or whitespace-only values
// are treated as absent.
func bodyString(v string) string {
	return strings.TrimSpace(v)
}
