package oddsconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads odds written in any of the three notations:
//
//	"5/2", "10-11"         fractional (slash, or dash between digits)
//	"evens", "evs", "even" fractional 1/1
//	"2.50"                 decimal (contains a dot)
//	"+150", "-110", "150"  American (plain integer)
//
// Parse checks syntax only; range errors (American 0, decimal <= 1,
// denominator 0) are reported by the conversions.
func Parse(s string) (Odds, error) {
	text := strings.TrimSpace(s)

	switch strings.ToLower(text) {
	case "":
		return Odds{}, fmt.Errorf("%w: empty input", ErrMalformedOdds)
	case "evens", "evs", "even":
		return FromFractional(1, 1), nil
	}

	if num, den, ok := splitFraction(text); ok {
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return Odds{}, fmt.Errorf("%w: numerator %q", ErrMalformedOdds, num)
		}
		d, err := strconv.ParseUint(den, 10, 32)
		if err != nil {
			return Odds{}, fmt.Errorf("%w: denominator %q", ErrMalformedOdds, den)
		}
		return FromFractional(uint32(n), uint32(d)), nil
	}

	if strings.Contains(text, ".") {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return Odds{}, fmt.Errorf("%w: %q", ErrMalformedOdds, s)
		}
		return FromDecimal(d), nil
	}

	a, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Odds{}, fmt.Errorf("%w: %q", ErrMalformedOdds, s)
	}
	return FromAmerican(int32(a)), nil
}

// splitFraction splits "a/b", or "a-b" where the dash is not a leading sign.
func splitFraction(text string) (num, den string, ok bool) {
	if num, den, ok = strings.Cut(text, "/"); ok {
		return strings.TrimSpace(num), strings.TrimSpace(den), true
	}
	if i := strings.LastIndex(text, "-"); i > 0 {
		return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), true
	}
	return "", "", false
}
