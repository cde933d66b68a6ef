package oddsconv

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingStrategy is a decimal rounding rule.
type RoundingStrategy uint8

const (
	// RoundMidpointAwayFromZero rounds to nearest, ties away from zero (1.5 -> 2, -1.5 -> -2).
	RoundMidpointAwayFromZero RoundingStrategy = iota
	// RoundMidpointNearestEven rounds to nearest, ties to even (banker's rounding).
	RoundMidpointNearestEven
	// RoundMidpointTowardZero rounds to nearest, ties toward zero (1.5 -> 1, -1.5 -> -1).
	RoundMidpointTowardZero
	// RoundToZero truncates.
	RoundToZero
	// RoundAwayFromZero rounds any fraction away from zero.
	RoundAwayFromZero
	// RoundToNegativeInfinity is floor.
	RoundToNegativeInfinity
	// RoundToPositiveInfinity is ceiling.
	RoundToPositiveInfinity
)

var roundingNames = map[RoundingStrategy]string{
	RoundMidpointAwayFromZero: "midpoint_away_from_zero",
	RoundMidpointNearestEven:  "midpoint_nearest_even",
	RoundMidpointTowardZero:   "midpoint_toward_zero",
	RoundToZero:               "to_zero",
	RoundAwayFromZero:         "away_from_zero",
	RoundToNegativeInfinity:   "to_negative_infinity",
	RoundToPositiveInfinity:   "to_positive_infinity",
}

func (s RoundingStrategy) String() string {
	if name, ok := roundingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("RoundingStrategy(%d)", uint8(s))
}

// ParseRoundingStrategy parses a strategy name as returned by String.
// Hyphens are accepted in place of underscores.
func ParseRoundingStrategy(s string) (RoundingStrategy, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if name == "" {
		return RoundMidpointAwayFromZero, nil
	}
	for strategy, n := range roundingNames {
		if n == name {
			return strategy, nil
		}
	}
	return RoundMidpointAwayFromZero, fmt.Errorf("unknown rounding strategy: %q", s)
}

// Round rounds d to the given number of decimal places.
func (s RoundingStrategy) Round(d decimal.Decimal, places int32) decimal.Decimal {
	switch s {
	case RoundMidpointNearestEven:
		return d.RoundBank(places)
	case RoundMidpointTowardZero:
		truncated := d.Truncate(places)
		half := decimal.New(5, -(places + 1))
		if d.Sub(truncated).Abs().Equal(half) {
			return truncated
		}
		return d.Round(places)
	case RoundToZero:
		return d.RoundDown(places)
	case RoundAwayFromZero:
		return d.RoundUp(places)
	case RoundToNegativeInfinity:
		return d.RoundFloor(places)
	case RoundToPositiveInfinity:
		return d.RoundCeil(places)
	default:
		return d.Round(places)
	}
}
