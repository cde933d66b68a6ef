package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

const namespace = "odds_converter"

// Metrics holds the conversion counters
type Metrics struct {
	conversions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// New registers the conversion counters on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Successful odds conversions by source and target notation.",
		}, []string{"source", "target"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_failures_total",
			Help:      "Failed odds conversions by target notation and reason.",
		}, []string{"target", "reason"}),
	}
}

// ObserveConversion records the outcome of one conversion
func (m *Metrics) ObserveConversion(source, target string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.failures.WithLabelValues(target, Reason(err)).Inc()
		return
	}
	m.conversions.WithLabelValues(source, target).Inc()
}

// Reason maps a conversion error to a low-cardinality label value
func Reason(err error) string {
	switch {
	case errors.Is(err, oddsconv.ErrAmericanZero):
		return "american_zero"
	case errors.Is(err, oddsconv.ErrDenominatorZero):
		return "denominator_zero"
	case errors.Is(err, oddsconv.ErrDecimalOverflow):
		return "decimal_overflow"
	case errors.Is(err, oddsconv.ErrInvalidDecimal):
		return "invalid_decimal"
	case errors.Is(err, oddsconv.ErrMalformedOdds):
		return "malformed"
	default:
		return "other"
	}
}
