package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	trailingLetters = regexp.MustCompile(`[A-Za-z,]+$`)
	trailingDigits  = regexp.MustCompile(`\d+$`)
	plainDecimal    = regexp.MustCompile(`^[\d.]+$`)
)

// absentValues are cell texts (lower-cased) meaning "no breakpoint":
// insufficient evidence, in preparation, not applicable, or a dash.
var absentValues = map[string]bool{
	"":    true,
	"-":   true,
	"nan": true,
	"ie":  true,
	"ip":  true,
	"na":  true,
}

// NormalizeValue converts a raw breakpoint cell into a number.
// It returns nil for sentinels, footnote references and anything that does
// not reduce to a float after footnote markers are stripped.
func NormalizeValue(raw string) *float64 {
	val := strings.TrimSpace(raw)
	lower := strings.ToLower(val)
	if absentValues[lower] || strings.HasPrefix(lower, "note") {
		return nil
	}

	// Parentheses mark tentative values; keep the number.
	val = strings.NewReplacer("(", "", ")", "").Replace(val)
	val = trailingLetters.ReplaceAllString(val, "")
	if !plainDecimal.MatchString(val) {
		val = trailingDigits.ReplaceAllString(val, "")
	}
	val = strings.TrimSpace(val)
	if val == "" || val == "-" {
		return nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &f
}
