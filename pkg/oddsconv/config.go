package oddsconv

import (
	"fmt"
	"strings"
)

// LookupVariant selects which curated tables are consulted before computing.
type LookupVariant uint8

const (
	// LookupNone disables lookup tables.
	LookupNone LookupVariant = iota
	// LookupBasic uses tables of common values that usually match the computed value closely.
	LookupBasic
	// LookupExtended uses the basic tables, then the extended ones. Covers more
	// values but gives rounder results, e.g. 1.0013 -> 1/750 instead of 1/768.
	LookupExtended
)

func (v LookupVariant) String() string {
	switch v {
	case LookupNone:
		return "none"
	case LookupBasic:
		return "basic"
	case LookupExtended:
		return "extended"
	default:
		return fmt.Sprintf("LookupVariant(%d)", uint8(v))
	}
}

// ParseLookupVariant parses "none", "basic" or "extended".
func ParseLookupVariant(s string) (LookupVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return LookupNone, nil
	case "basic", "":
		return LookupBasic, nil
	case "extended":
		return LookupExtended, nil
	default:
		return LookupNone, fmt.Errorf("unknown lookup variant: %q", s)
	}
}

// FractionStrategy selects how decimal odds are turned into fractions.
type FractionStrategy uint8

const (
	// FractionPlain scales to thousandths and reduces, so 1.33 gives 33/100.
	// Lookup tables, when enabled, may still return simplified fractions.
	FractionPlain FractionStrategy = iota
	// FractionSimplify uses continued fractions, so 1.33 gives 1/3.
	FractionSimplify
)

func (s FractionStrategy) String() string {
	switch s {
	case FractionPlain:
		return "plain"
	case FractionSimplify:
		return "simplify"
	default:
		return fmt.Sprintf("FractionStrategy(%d)", uint8(s))
	}
}

// ParseFractionStrategy parses "plain" or "simplify".
func ParseFractionStrategy(s string) (FractionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return FractionPlain, nil
	case "simplify", "":
		return FractionSimplify, nil
	default:
		return FractionSimplify, fmt.Errorf("unknown fraction strategy: %q", s)
	}
}

// ConversionConfig holds the settings used by the *Custom conversion functions.
//
// It is a plain value: the builder methods return an updated copy and never
// modify the receiver, so a config can be shared between goroutines.
type ConversionConfig struct {
	// LookupVariant selects lookup tables tried before computing.
	// With lookup enabled 1.67 or -150 convert to 4/6 instead of 2/3.
	LookupVariant LookupVariant
	// FractionStrategy selects how fractions are computed.
	FractionStrategy FractionStrategy
	// RoundingStrategy is applied wherever a decimal is rounded to an integer.
	RoundingStrategy RoundingStrategy
}

// DefaultConfig returns basic lookup, simplified fractions and rounding
// half away from zero.
func DefaultConfig() ConversionConfig {
	return ConversionConfig{
		LookupVariant:    LookupBasic,
		FractionStrategy: FractionSimplify,
		RoundingStrategy: RoundMidpointAwayFromZero,
	}
}

// NoLookup disables lookup tables.
func (c ConversionConfig) NoLookup() ConversionConfig {
	c.LookupVariant = LookupNone
	return c
}

// ExtendedLookup enables basic and extended lookup tables.
func (c ConversionConfig) ExtendedLookup() ConversionConfig {
	c.LookupVariant = LookupExtended
	return c
}

// PlainFractionStrategy switches to the plain fraction strategy.
func (c ConversionConfig) PlainFractionStrategy() ConversionConfig {
	c.FractionStrategy = FractionPlain
	return c
}

// WithFractionStrategy sets the fraction strategy.
func (c ConversionConfig) WithFractionStrategy(strategy FractionStrategy) ConversionConfig {
	c.FractionStrategy = strategy
	return c
}

// WithRoundingStrategy sets the rounding strategy.
func (c ConversionConfig) WithRoundingStrategy(strategy RoundingStrategy) ConversionConfig {
	c.RoundingStrategy = strategy
	return c
}

func (c ConversionConfig) lookupEnabled() bool {
	return c.LookupVariant != LookupNone
}

func (c ConversionConfig) extendedLookup() bool {
	return c.LookupVariant == LookupExtended
}
