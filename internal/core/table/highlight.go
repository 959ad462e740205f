package table

import (
	"strconv"
	"strings"
)

// OutOfRange reports whether a numeric result falls outside its reference
// range. References come in two forms: "min - max" or a comparison against a
// threshold ("< 10", ">= 0.5", "= 7"). Non-numeric results and unparseable
// references never flag a cell: highlighting fails open.
func OutOfRange(result, reference string) bool {
	value, ok := parseNumber(result)
	if !ok {
		return false
	}

	reference = strings.TrimSpace(reference)

	for _, op := range []string{"<=", ">=", "<", ">", "="} {
		if rest, found := strings.CutPrefix(reference, op); found {
			threshold, ok := parseNumber(rest)
			if !ok {
				return false
			}
			switch op {
			case "<":
				return !(value < threshold)
			case ">":
				return !(value > threshold)
			case "<=":
				return !(value <= threshold)
			case ">=":
				return !(value >= threshold)
			default:
				return value != threshold
			}
		}
	}

	lo, hi, ok := parseInterval(reference)
	if !ok {
		return false
	}
	return value < lo || value > hi
}

// parseInterval reads a "min - max" reference. Splitting happens on the last
// separator so a negative lower bound ("-2 - 4") still parses.
func parseInterval(s string) (lo, hi float64, ok bool) {
	s = strings.ReplaceAll(s, "–", "-")
	sep := strings.LastIndexByte(s, '-')
	if sep <= 0 {
		return 0, 0, false
	}
	lo, okLo := parseNumber(s[:sep])
	hi, okHi := parseNumber(s[sep+1:])
	if !okLo || !okHi || lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// parseNumber accepts a decimal comma as a decimal point, which lab reports
// in many locales use.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
