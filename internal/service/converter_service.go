package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-converter/internal/metrics"
	"github.com/cypherlabdev/odds-converter/internal/models"
	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

// ConverterService turns parsed odds into quotes carrying every notation
type ConverterService struct {
	engine  Engine
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewConverterService creates a new converter service
func NewConverterService(
	engine Engine,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ConverterService {
	return &ConverterService{
		engine:  engine,
		metrics: m,
		logger:  logger.With().Str("component", "converter_service").Logger(),
	}
}

// Quote converts odds into all three notations.
// The first failing target aborts the quote.
func (s *ConverterService) Quote(ctx context.Context, odds oddsconv.Odds) (*models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := odds.Kind().String()

	american, err := s.engine.American(odds)
	s.metrics.ObserveConversion(source, oddsconv.KindAmerican.String(), err)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to american: %w", odds, err)
	}

	dec, err := s.engine.Decimal(odds)
	s.metrics.ObserveConversion(source, oddsconv.KindDecimal.String(), err)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to decimal: %w", odds, err)
	}

	num, den, err := s.engine.Fractional(odds)
	s.metrics.ObserveConversion(source, oddsconv.KindFractional.String(), err)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to fractional: %w", odds, err)
	}

	quote := &models.Quote{
		ID:                 uuid.New(),
		Input:              odds.String(),
		Kind:               source,
		American:           american,
		Decimal:            dec,
		Numerator:          num,
		Denominator:        den,
		ImpliedProbability: impliedProbability(dec),
		ConvertedAt:        time.Now().UTC(),
	}

	s.logger.Debug().
		Str("input", quote.Input).
		Str("american", quote.AmericanString()).
		Str("decimal", quote.Decimal.String()).
		Str("fractional", quote.FractionalString()).
		Msg("converted odds")

	return quote, nil
}

// impliedProbability converts decimal odds to implied probability
func impliedProbability(odds decimal.Decimal) decimal.Decimal {
	if odds.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(odds)
}

// QuoteBatch quotes a batch of odds. Odds that fail to convert are logged and
// skipped; only context cancellation fails the batch.
func (s *ConverterService) QuoteBatch(ctx context.Context, odds []oddsconv.Odds) ([]*models.Quote, error) {
	if len(odds) == 0 {
		return nil, nil
	}

	quotes := make([]*models.Quote, 0, len(odds))
	for _, o := range odds {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch conversion cancelled: %w", err)
		}

		quote, err := s.Quote(ctx, o)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("input", o.String()).
				Msg("failed to convert odds, skipping")
			continue
		}
		quotes = append(quotes, quote)
	}

	s.logger.Info().
		Int("input_count", len(odds)).
		Int("output_count", len(quotes)).
		Msg("converted batch")

	return quotes, nil
}
