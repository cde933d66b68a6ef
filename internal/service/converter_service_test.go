package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/odds-converter/internal/metrics"
	"github.com/cypherlabdev/odds-converter/internal/mocks"
	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

// testConverterServiceSetup is a helper struct to hold test dependencies
type testConverterServiceSetup struct {
	mockEngine *mocks.MockEngine
	registry   *prometheus.Registry
	service    *ConverterService
	ctrl       *gomock.Controller
}

// setupTestConverterService creates a service with a mocked engine
func setupTestConverterService(t *testing.T) *testConverterServiceSetup {
	ctrl := gomock.NewController(t)

	mockEngine := mocks.NewMockEngine(ctrl)
	registry := prometheus.NewRegistry()

	return &testConverterServiceSetup{
		mockEngine: mockEngine,
		registry:   registry,
		service:    NewConverterService(mockEngine, metrics.New(registry), zerolog.Nop()),
		ctrl:       ctrl,
	}
}

// cleanup cleans up test resources
func (s *testConverterServiceSetup) cleanup() {
	s.ctrl.Finish()
}

// TestQuote_Success tests that a quote carries every notation
func TestQuote_Success(t *testing.T) {
	setup := setupTestConverterService(t)
	defer setup.cleanup()

	odds := oddsconv.FromAmerican(150)
	setup.mockEngine.EXPECT().American(odds).Return(int32(150), nil)
	setup.mockEngine.EXPECT().Decimal(odds).Return(decimal.RequireFromString("2.5"), nil)
	setup.mockEngine.EXPECT().Fractional(odds).Return(uint32(6), uint32(4), nil)

	quote, err := setup.service.Quote(context.Background(), odds)
	require.NoError(t, err)

	assert.Equal(t, "+150", quote.Input)
	assert.Equal(t, "american", quote.Kind)
	assert.Equal(t, int32(150), quote.American)
	assert.True(t, quote.Decimal.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, "6/4", quote.FractionalString())
	assert.True(t, quote.ImpliedProbability.Equal(decimal.RequireFromString("0.4")))
	assert.NotEmpty(t, quote.ID)
	assert.False(t, quote.ConvertedAt.IsZero())
}

// TestQuote_EngineError tests that the first failure aborts the quote
func TestQuote_EngineError(t *testing.T) {
	setup := setupTestConverterService(t)
	defer setup.cleanup()

	odds := oddsconv.FromAmerican(0)
	setup.mockEngine.EXPECT().American(odds).Return(int32(0), oddsconv.ErrAmericanZero)

	quote, err := setup.service.Quote(context.Background(), odds)
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, oddsconv.ErrAmericanZero)
	assert.Contains(t, err.Error(), "failed to convert 0 to american")
}

// TestQuote_CancelledContext tests that no conversion runs after cancellation
func TestQuote_CancelledContext(t *testing.T) {
	setup := setupTestConverterService(t)
	defer setup.cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := setup.service.Quote(ctx, oddsconv.FromAmerican(150))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestQuoteBatch_SkipsFailures tests that failed odds are dropped from the batch
func TestQuoteBatch_SkipsFailures(t *testing.T) {
	setup := setupTestConverterService(t)
	defer setup.cleanup()

	good := oddsconv.FromFractional(1, 2)
	bad := oddsconv.FromFractional(1, 0)

	setup.mockEngine.EXPECT().American(good).Return(int32(-200), nil)
	setup.mockEngine.EXPECT().Decimal(good).Return(decimal.RequireFromString("1.5"), nil)
	setup.mockEngine.EXPECT().Fractional(good).Return(uint32(1), uint32(2), nil)
	setup.mockEngine.EXPECT().American(bad).Return(int32(0), oddsconv.ErrDenominatorZero)

	quotes, err := setup.service.QuoteBatch(context.Background(), []oddsconv.Odds{good, bad})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "1/2", quotes[0].Input)
	assert.Equal(t, int32(-200), quotes[0].American)
}

func TestQuoteBatch_Empty(t *testing.T) {
	setup := setupTestConverterService(t)
	defer setup.cleanup()

	quotes, err := setup.service.QuoteBatch(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, quotes)
}

// TestQuoteBatch_WithConverter tests the service against the real engine
func TestQuoteBatch_WithConverter(t *testing.T) {
	svc := NewConverterService(oddsconv.NewConverter(oddsconv.DefaultConfig()), nil, zerolog.Nop())

	quotes, err := svc.QuoteBatch(context.Background(), []oddsconv.Odds{
		oddsconv.FromAmerican(-150),
		oddsconv.FromDecimal(decimal.RequireFromString("1.0")),
		oddsconv.FromFractional(2, 1),
	})
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "4/6", quotes[0].FractionalString())
	assert.Equal(t, "1.67", quotes[0].DecimalString())
	assert.Equal(t, "+200", quotes[1].AmericanString())
	assert.Equal(t, "3.00", quotes[1].DecimalString())
	assert.Equal(t, "33.3%", quotes[1].ImpliedPercent())
}
