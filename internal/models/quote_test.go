package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Strings(t *testing.T) {
	quote := &Quote{
		American:    150,
		Decimal:     decimal.RequireFromString("2.5"),
		Numerator:   3,
		Denominator: 2,

		ImpliedProbability: decimal.RequireFromString("0.4"),
	}

	assert.Equal(t, "+150", quote.AmericanString())
	assert.Equal(t, "2.50", quote.DecimalString())
	assert.Equal(t, "3/2", quote.FractionalString())
	assert.Equal(t, "40.0%", quote.ImpliedPercent())

	quote.American = -200
	assert.Equal(t, "-200", quote.AmericanString())
}

// TestQuote_JSON tests the wire field names
func TestQuote_JSON(t *testing.T) {
	quote := &Quote{
		ID:          uuid.New(),
		Input:       "5/2",
		Kind:        "fractional",
		American:    250,
		Decimal:     decimal.RequireFromString("3.5"),
		Numerator:   5,
		Denominator: 2,
	}

	data, err := json.Marshal(QuoteBatch{Count: 1, Quotes: []*Quote{quote}})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 1, raw["count"])

	quotes := raw["quotes"].([]any)
	require.Len(t, quotes, 1)
	first := quotes[0].(map[string]any)
	assert.Equal(t, "5/2", first["input"])
	assert.Equal(t, "3.5", first["decimal"])
	assert.EqualValues(t, 250, first["american"])
	assert.Equal(t, quote.ID.String(), first["id"])
}
