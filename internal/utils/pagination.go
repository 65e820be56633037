// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses s as a finite decimal number. Surrounding whitespace
// is ignored. It reports ok=false for empty, non-numeric, NaN and infinite
// input.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Trunc truncates f toward zero, clamped to the int32 range so callers can
// safely multiply page by limit.
func Trunc(f float64) int {
	f = math.Trunc(f)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// TruncNumber is ParseNumber followed by Trunc. The sign of fractional
// input is lost ("-0.5" is 0), so range checks belong on ParseNumber.
//
// Example:
//
//	n, ok := utils.TruncNumber("5.7")  // 5, true
//	n, ok = utils.TruncNumber("-2.3")  // -2, true
//	n, ok = utils.TruncNumber("ten")   // 0, false
func TruncNumber(s string) (int, bool) {
	f, ok := ParseNumber(s)
	if !ok {
		return 0, false
	}
	return Trunc(f), true
}
