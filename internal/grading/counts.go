package grading

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reInt        = regexp.MustCompile(`\d+`)
	reFloat      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reStepNumber = regexp.MustCompile(`step\s*(\d+)`)
)

// parseCount extracts a warmup/repetition count from free text. "none" and
// "0" read as zero; otherwise the first integer wins, so a range like
// "5-8 steps" reads as 5. ok is false when no number is present.
func parseCount(s string) (n int, ok bool) {
	low := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(low, "none") || low == "0" {
		return 0, true
	}
	m := reInt.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// firstNumber extracts the first numeric token (decimal allowed).
func firstNumber(s string) (float64, bool) {
	m := reFloat.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
