package oddsconv

import "errors"

// Conversion errors. All conversion functions return one of these (possibly
// wrapped), so callers can match with errors.Is.
var (
	// ErrAmericanZero is returned for American odds of 0.
	ErrAmericanZero = errors.New("american odds cannot be zero")
	// ErrDenominatorZero is returned for fractional odds with a zero denominator.
	ErrDenominatorZero = errors.New("fractional denominator cannot be zero")
	// ErrDecimalOverflow is returned when a result does not fit the target integer width.
	ErrDecimalOverflow = errors.New("decimal overflow")
	// ErrInvalidDecimal is returned for decimal odds <= 1.0
	ErrInvalidDecimal = errors.New("decimal odds must be greater than 1.0")
	// ErrMalformedOdds is returned by Parse for text that is not odds in any notation.
	ErrMalformedOdds = errors.New("malformed odds")
)
