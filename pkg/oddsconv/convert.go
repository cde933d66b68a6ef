package oddsconv

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"
)

const (
	// maxDenominator bounds continued-fraction denominators to what bookmakers quote.
	maxDenominator uint64 = 1000

	// plain strategy works in thousandths, reduced by gcd(n, plainGCDBase)
	plainScale   uint64 = 1000
	plainGCDBase uint64 = 100000
)

var (
	one         = decimal.NewFromInt(1)
	two         = decimal.NewFromInt(2)
	oneHundred  = decimal.NewFromInt(100)
	oneThousand = decimal.NewFromInt(1000)

	// simplifyEpsilon caps how close a convergent must be before it is accepted.
	// The effective epsilon is min(v-1, simplifyEpsilon), so small prices keep
	// precision (1.001 -> 1/1000) and larger ones come out round (1.333 -> 1/3).
	simplifyEpsilon = decimal.RequireFromString("0.05")

	minInt32  = decimal.NewFromInt(math.MinInt32)
	maxInt32  = decimal.NewFromInt(math.MaxInt32)
	maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// AmericanToDecimal converts American odds to decimal odds using DefaultConfig.
func AmericanToDecimal(value int32) (decimal.Decimal, error) {
	return AmericanToDecimalCustom(value, DefaultConfig())
}

// AmericanToDecimalCustom converts American odds to decimal odds.
//
//	+150 -> 2.5
//	-200 -> 1.5
//	-150 -> 1.67 from the lookup table, 1.6666666666666667 without it
func AmericanToDecimalCustom(value int32, config ConversionConfig) (decimal.Decimal, error) {
	if value == 0 {
		return decimal.Zero, ErrAmericanZero
	}

	if d, ok := LookupAmericanToDecimalWithConfig(value, config); ok {
		return d, nil
	}

	return americanToDecimal(value)
}

func americanToDecimal(value int32) (decimal.Decimal, error) {
	american := decimal.NewFromInt32(value)
	switch {
	case value > 0:
		return american.Div(oneHundred).Add(one), nil
	case value < 0:
		return oneHundred.Div(american.Neg()).Add(one), nil
	default:
		return decimal.Zero, ErrAmericanZero
	}
}

// FractionalToDecimal converts fractional odds to decimal odds. The result is
// exact up to division precision, so lookup tables are never consulted.
func FractionalToDecimal(num, den uint32) (decimal.Decimal, error) {
	if den == 0 {
		return decimal.Zero, ErrDenominatorZero
	}
	return fractionToDecimal(num, den), nil
}

func fractionToDecimal(num, den uint32) decimal.Decimal {
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den))).Add(one)
}

// DecimalToFractional converts decimal odds to fractional odds using DefaultConfig.
func DecimalToFractional(value decimal.Decimal) (num, den uint32, err error) {
	return DecimalToFractionalCustom(value, DefaultConfig())
}

// DecimalToFractionalCustom converts decimal odds to fractional odds, trying the
// lookup tables first and then the configured fraction strategy.
func DecimalToFractionalCustom(value decimal.Decimal, config ConversionConfig) (num, den uint32, err error) {
	if num, den, ok := LookupDecimalToFractionWithConfig(value, config); ok {
		return num, den, nil
	}

	if config.FractionStrategy == FractionPlain {
		return DecimalToFractionalPlain(value, config)
	}
	return DecimalToFractionalSimplify(value)
}

// DecimalToFractionalPlain converts decimal odds to a fraction over thousandths,
// reduced by gcd(n, 100000). It bypasses the lookup tables.
//
// The denominator is 1000/gcd truncated to an integer. When the gcd exceeds
// 1000 (e.g. 3.0 or any price rounding to 1.000) the truncation yields 0 and
// ErrDecimalOverflow is returned instead of a fraction with a zero denominator.
func DecimalToFractionalPlain(value decimal.Decimal, config ConversionConfig) (num, den uint32, err error) {
	if value.LessThanOrEqual(one) {
		return 0, 0, ErrInvalidDecimal
	}

	scaled := config.RoundingStrategy.Round(value.Sub(one).Mul(oneThousand), 0)
	numerator, ok := toUint64(scaled)
	if !ok {
		return 0, 0, ErrDecimalOverflow
	}

	divisor := gcd(numerator, plainGCDBase)
	n := numerator / divisor
	d := plainScale / divisor
	if d == 0 || n > math.MaxUint32 {
		return 0, 0, ErrDecimalOverflow
	}

	return uint32(n), uint32(d), nil
}

// DecimalToFractionalSimplify finds the best rational approximation of v-1 with
// a denominator of at most 1000 by walking continued-fraction convergents.
// It bypasses the lookup tables.
//
// Numerators above math.MaxUint32 (prices beyond ~4.29e9) saturate.
func DecimalToFractionalSimplify(value decimal.Decimal) (num, den uint32, err error) {
	if value.LessThanOrEqual(one) {
		return 0, 0, ErrInvalidDecimal
	}

	fractional := value.Sub(one)
	epsilon := decimal.Min(fractional, simplifyEpsilon)

	a := fractional
	n, d := uint64(1), uint64(0)
	nPrev, dPrev := uint64(0), uint64(1)

	for {
		aFloor := a.Floor()
		whole, ok := toUint64(aFloor)
		if !ok {
			// term too large to represent, keep the last convergent
			break
		}

		nNext := satAdd(satMul(whole, n), nPrev)
		dNext := satAdd(satMul(whole, d), dPrev)
		if dNext > maxDenominator {
			break
		}

		nPrev, dPrev = n, d
		n, d = nNext, dNext

		remainder := a.Sub(aFloor)
		if remainder.LessThan(epsilon) {
			break
		}

		a = one.Div(remainder)
	}

	// whole-number input: fractional part 1.0 leaves the seed denominator
	if d == 0 {
		d = 1
	}

	return saturateUint32(n), uint32(d), nil
}

// AmericanToFractional converts American odds to fractional odds using DefaultConfig.
func AmericanToFractional(value int32) (num, den uint32, err error) {
	return AmericanToFractionalCustom(value, DefaultConfig())
}

// AmericanToFractionalCustom converts American odds to fractional odds. A table
// miss goes through the computed decimal (never the american -> decimal table)
// and then DecimalToFractionalCustom with the same config.
func AmericanToFractionalCustom(value int32, config ConversionConfig) (num, den uint32, err error) {
	if num, den, ok := LookupAmericanToFractionWithConfig(value, config); ok {
		return num, den, nil
	}

	d, err := americanToDecimal(value)
	if err != nil {
		return 0, 0, err
	}
	return DecimalToFractionalCustom(d, config)
}

// DecimalToAmerican converts decimal odds to American odds using DefaultConfig.
func DecimalToAmerican(value decimal.Decimal) (int32, error) {
	return DecimalToAmericanCustom(value, DefaultConfig())
}

// DecimalToAmericanCustom converts decimal odds to American odds, rounding with
// the configured strategy.
//
//	2.5 -> +150
//	1.5 -> -200
func DecimalToAmericanCustom(value decimal.Decimal, config ConversionConfig) (int32, error) {
	switch {
	case value.GreaterThanOrEqual(two):
		american, err := roundToInt32(value.Sub(one).Mul(oneHundred), config.RoundingStrategy)
		if err != nil {
			return 0, err
		}
		return NormalizeAmericanOdds(american), nil
	case value.GreaterThan(one):
		return roundToInt32(oneHundred.Neg().Div(value.Sub(one)), config.RoundingStrategy)
	default:
		return 0, ErrInvalidDecimal
	}
}

// FractionalToAmerican converts fractional odds to American odds using DefaultConfig.
func FractionalToAmerican(num, den uint32) (int32, error) {
	return FractionalToAmericanCustom(num, den, DefaultConfig())
}

// FractionalToAmericanCustom converts fractional odds to American odds.
func FractionalToAmericanCustom(num, den uint32, config ConversionConfig) (int32, error) {
	if den == 0 {
		return 0, ErrDenominatorZero
	}
	return DecimalToAmericanCustom(fractionToDecimal(num, den), config)
}

// NormalizeAmericanOdds inverts magnitudes under 100 into the opposite sign:
// 1..99 become -10000/x and -99..-1 become 10000/-x. Everything else,
// including 0, is returned unchanged.
func NormalizeAmericanOdds(odds int32) int32 {
	switch {
	case odds > 0 && odds < 100:
		return -((100 * 100) / odds)
	case odds < 0 && odds > -100:
		return (100 * 100) / (-odds)
	default:
		return odds
	}
}

func roundToInt32(d decimal.Decimal, strategy RoundingStrategy) (int32, error) {
	rounded := strategy.Round(d, 0)
	if rounded.LessThan(minInt32) || rounded.GreaterThan(maxInt32) {
		return 0, ErrDecimalOverflow
	}
	return int32(rounded.IntPart()), nil
}

// toUint64 converts an integral, non-negative decimal.
func toUint64(d decimal.Decimal) (uint64, bool) {
	if d.IsNegative() || d.GreaterThan(maxUint64) {
		return 0, false
	}
	return d.BigInt().Uint64(), true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturateUint32(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
