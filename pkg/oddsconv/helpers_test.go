package oddsconv

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var decimalTolerance = decimal.RequireFromString("0.001")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimalNear checks that got is within 0.001 of want.
func assertDecimalNear(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Sub(dec(want)).Abs().LessThan(decimalTolerance),
		"expected %s to be close to %s", got, want)
}
