package oddsconv

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies which representation an Odds value holds.
type Kind uint8

const (
	KindAmerican Kind = iota
	KindDecimal
	KindFractional
)

func (k Kind) String() string {
	switch k {
	case KindAmerican:
		return "american"
	case KindDecimal:
		return "decimal"
	case KindFractional:
		return "fractional"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Odds holds odds in exactly one of the three notations. Conversions return
// new values and never change the receiver.
//
// The zero value is American odds of 0, which every conversion rejects with
// ErrAmericanZero.
type Odds struct {
	kind     Kind
	american int32
	decimal  decimal.Decimal
	num, den uint32
}

// FromAmerican wraps American (moneyline) odds.
func FromAmerican(value int32) Odds {
	return Odds{kind: KindAmerican, american: value}
}

// FromDecimal wraps decimal odds.
func FromDecimal(value decimal.Decimal) Odds {
	return Odds{kind: KindDecimal, decimal: value}
}

// FromFractional wraps fractional odds num/den.
func FromFractional(num, den uint32) Odds {
	return Odds{kind: KindFractional, num: num, den: den}
}

// Kind returns the held representation.
func (o Odds) Kind() Kind {
	return o.kind
}

// American returns the held American odds, ok is false for other kinds.
func (o Odds) American() (value int32, ok bool) {
	return o.american, o.kind == KindAmerican
}

// Decimal returns the held decimal odds, ok is false for other kinds.
func (o Odds) Decimal() (value decimal.Decimal, ok bool) {
	return o.decimal, o.kind == KindDecimal
}

// Fractional returns the held fractional odds, ok is false for other kinds.
func (o Odds) Fractional() (num, den uint32, ok bool) {
	return o.num, o.den, o.kind == KindFractional
}

// String formats the held value without converting it: "+150", "-110", "2.5", "5/2".
func (o Odds) String() string {
	switch o.kind {
	case KindDecimal:
		return o.decimal.String()
	case KindFractional:
		return FormatFractional(o.num, o.den)
	default:
		return FormatAmerican(o.american)
	}
}

// ToAmerican converts to American odds using DefaultConfig.
func (o Odds) ToAmerican() (int32, error) {
	return o.ToAmericanCustom(DefaultConfig())
}

// ToAmericanCustom converts to American odds. American odds are returned as held
// unless they are 0.
func (o Odds) ToAmericanCustom(config ConversionConfig) (int32, error) {
	switch o.kind {
	case KindDecimal:
		return DecimalToAmericanCustom(o.decimal, config)
	case KindFractional:
		return FractionalToAmericanCustom(o.num, o.den, config)
	default:
		if o.american == 0 {
			return 0, ErrAmericanZero
		}
		return o.american, nil
	}
}

// ToFractional converts to fractional odds using DefaultConfig.
func (o Odds) ToFractional() (num, den uint32, err error) {
	return o.ToFractionalCustom(DefaultConfig())
}

// ToFractionalCustom converts to fractional odds. Fractional odds are returned
// as held, unreduced, unless the denominator is 0.
func (o Odds) ToFractionalCustom(config ConversionConfig) (num, den uint32, err error) {
	switch o.kind {
	case KindDecimal:
		return DecimalToFractionalCustom(o.decimal, config)
	case KindFractional:
		if o.den == 0 {
			return 0, 0, ErrDenominatorZero
		}
		return o.num, o.den, nil
	default:
		return AmericanToFractionalCustom(o.american, config)
	}
}

// ToDecimal converts to decimal odds using DefaultConfig.
func (o Odds) ToDecimal() (decimal.Decimal, error) {
	return o.ToDecimalCustom(DefaultConfig())
}

// ToDecimalCustom converts to decimal odds. Decimal odds are returned as held
// unless they are <= 1.0.
func (o Odds) ToDecimalCustom(config ConversionConfig) (decimal.Decimal, error) {
	switch o.kind {
	case KindDecimal:
		if o.decimal.LessThanOrEqual(one) {
			return decimal.Zero, ErrInvalidDecimal
		}
		return o.decimal, nil
	case KindFractional:
		return FractionalToDecimal(o.num, o.den)
	default:
		return AmericanToDecimalCustom(o.american, config)
	}
}

// ToFractionalStr converts to fractional odds using DefaultConfig and formats them as "num/den".
func (o Odds) ToFractionalStr() (string, error) {
	return o.ToFractionalStrCustom(DefaultConfig())
}

// ToFractionalStrCustom converts to fractional odds and formats them as "num/den".
func (o Odds) ToFractionalStrCustom(config ConversionConfig) (string, error) {
	num, den, err := o.ToFractionalCustom(config)
	if err != nil {
		return "", err
	}
	return FormatFractional(num, den), nil
}

// ToDecimalStr converts to decimal odds using DefaultConfig and formats them
// with two decimal places.
func (o Odds) ToDecimalStr() (string, error) {
	return o.ToDecimalStrCustom(DefaultConfig())
}

// ToDecimalStrCustom converts to decimal odds and formats them with two decimal
// places. config drives the conversion only; see FormatDecimal for the display
// rounding.
func (o Odds) ToDecimalStrCustom(config ConversionConfig) (string, error) {
	d, err := o.ToDecimalCustom(config)
	if err != nil {
		return "", err
	}
	return FormatDecimal(d), nil
}

// FormatDecimal formats decimal odds with exactly two decimal places, always
// rounding half away from zero (1.335 -> "1.34") whatever the configured
// RoundingStrategy is.
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatFractional formats fractional odds as "num/den".
func FormatFractional(num, den uint32) string {
	return strconv.FormatUint(uint64(num), 10) + "/" + strconv.FormatUint(uint64(den), 10)
}

// FormatAmerican formats American odds with an explicit sign for underdogs.
func FormatAmerican(value int32) string {
	if value > 0 {
		return "+" + strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatInt(int64(value), 10)
}
