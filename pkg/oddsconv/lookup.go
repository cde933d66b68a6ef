package oddsconv

import "github.com/shopspring/decimal"

// LookupDecimalToFraction looks decimal odds up in the basic decimal -> fractional table.
func LookupDecimalToFraction(odds decimal.Decimal) (num, den uint32, ok bool) {
	return LookupDecimalToFractionWithConfig(odds, DefaultConfig())
}

// LookupDecimalToFractionWithConfig looks decimal odds up in the tables selected
// by config: nothing for LookupNone, basic, or basic then extended.
func LookupDecimalToFractionWithConfig(odds decimal.Decimal, config ConversionConfig) (num, den uint32, ok bool) {
	if !config.lookupEnabled() {
		return 0, 0, false
	}

	key := decimalKey(odds)
	f, ok := decimalToFractionTable()[key]
	if !ok && config.extendedLookup() {
		f, ok = decimalToFractionExtendedTable()[key]
	}
	return f.num, f.den, ok
}

// LookupAmericanToFraction looks American odds up in the basic american -> fractional table.
func LookupAmericanToFraction(odds int32) (num, den uint32, ok bool) {
	return LookupAmericanToFractionWithConfig(odds, DefaultConfig())
}

// LookupAmericanToFractionWithConfig looks American odds up in the tables selected by config.
func LookupAmericanToFractionWithConfig(odds int32, config ConversionConfig) (num, den uint32, ok bool) {
	if !config.lookupEnabled() {
		return 0, 0, false
	}

	f, ok := americanToFractionTable()[odds]
	if !ok && config.extendedLookup() {
		f, ok = americanToFractionExtendedTable()[odds]
	}
	return f.num, f.den, ok
}

// LookupAmericanToDecimal looks American odds up in the basic american -> decimal table.
func LookupAmericanToDecimal(odds int32) (decimal.Decimal, bool) {
	return LookupAmericanToDecimalWithConfig(odds, DefaultConfig())
}

// LookupAmericanToDecimalWithConfig looks American odds up in the tables selected by config.
func LookupAmericanToDecimalWithConfig(odds int32, config ConversionConfig) (decimal.Decimal, bool) {
	if !config.lookupEnabled() {
		return decimal.Zero, false
	}

	d, ok := americanToDecimalTable()[odds]
	if !ok && config.extendedLookup() {
		d, ok = americanToDecimalExtendedTable()[odds]
	}
	return d, ok
}
