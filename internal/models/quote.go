package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is one price expressed in all three odds notations
type Quote struct {
	ID          uuid.UUID       `json:"id"`
	Input       string          `json:"input"`       // Price as supplied by the caller
	Kind        string          `json:"kind"`        // Notation of the input: american, decimal or fractional
	American    int32           `json:"american"`
	Decimal     decimal.Decimal `json:"decimal"`
	Numerator   uint32          `json:"numerator"`
	Denominator uint32          `json:"denominator"`
	// Implied probability = 1 / decimal odds, e.g. 2.50 is 0.40
	ImpliedProbability decimal.Decimal `json:"implied_probability"`
	ConvertedAt        time.Time       `json:"converted_at"`
}

// AmericanString returns the American price with an explicit sign for underdogs
func (q *Quote) AmericanString() string {
	if q.American > 0 {
		return "+" + strconv.FormatInt(int64(q.American), 10)
	}
	return strconv.FormatInt(int64(q.American), 10)
}

// DecimalString returns the decimal price with two decimal places
func (q *Quote) DecimalString() string {
	return q.Decimal.StringFixed(2)
}

// FractionalString returns the fractional price as "num/den"
func (q *Quote) FractionalString() string {
	return strconv.FormatUint(uint64(q.Numerator), 10) + "/" + strconv.FormatUint(uint64(q.Denominator), 10)
}

// ImpliedPercent returns the implied probability as a percentage with one decimal place
func (q *Quote) ImpliedPercent() string {
	return q.ImpliedProbability.Shift(2).StringFixed(1) + "%"
}

// QuoteBatch is the JSON envelope for a set of quotes
type QuoteBatch struct {
	Count  int      `json:"count"`
	Quotes []*Quote `json:"quotes"`
}
