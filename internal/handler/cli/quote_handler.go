package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-converter/internal/models"
	"github.com/cypherlabdev/odds-converter/internal/service"
	"github.com/cypherlabdev/odds-converter/pkg/distance"
	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// ErrUnknownFormat is returned for an output format other than table, json or plain
var ErrUnknownFormat = errors.New("unknown output format")

// QuoteHandler parses command line prices, quotes them and renders the result
type QuoteHandler struct {
	service *service.ConverterService
	format  string
	out     io.Writer
	logger  zerolog.Logger
}

// NewQuoteHandler creates a new quote handler writing to out
func NewQuoteHandler(service *service.ConverterService, format string, out io.Writer, logger zerolog.Logger) (*QuoteHandler, error) {
	switch format {
	case FormatTable, FormatJSON, FormatPlain:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &QuoteHandler{
		service: service,
		format:  format,
		out:     out,
		logger:  logger.With().Str("component", "quote_handler").Logger(),
	}, nil
}

// Handle quotes every input. Inputs that fail to parse or convert are logged
// and left out of the output; the returned error reports how many failed.
func (h *QuoteHandler) Handle(ctx context.Context, inputs []string) error {
	odds := make([]oddsconv.Odds, 0, len(inputs))
	failed := 0

	for _, input := range inputs {
		o, err := oddsconv.Parse(input)
		if err != nil {
			h.logger.Warn().
				Err(err).
				Str("input", input).
				Msg("failed to parse odds")
			failed++
			continue
		}
		odds = append(odds, o)
	}

	quotes, err := h.service.QuoteBatch(ctx, odds)
	if err != nil {
		return fmt.Errorf("failed to quote odds: %w", err)
	}
	failed += len(odds) - len(quotes)

	if err := h.render(quotes); err != nil {
		return fmt.Errorf("failed to render quotes: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, len(inputs))
	}
	return nil
}

// HandleDistance formats race distances given in yards
func (h *QuoteHandler) HandleDistance(inputs []string) error {
	failed := 0

	for _, input := range inputs {
		yards, err := strconv.ParseUint(input, 10, 32)
		if err != nil {
			h.logger.Warn().
				Err(err).
				Str("input", input).
				Msg("failed to parse distance")
			failed++
			continue
		}

		if _, err := fmt.Fprintf(h.out, "%s\t%s\n", input, distance.FromYards(uint32(yards))); err != nil {
			return fmt.Errorf("failed to write distance: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d distances could not be parsed", failed, len(inputs))
	}
	return nil
}

func (h *QuoteHandler) render(quotes []*models.Quote) error {
	switch h.format {
	case FormatJSON:
		return h.renderJSON(quotes)
	case FormatPlain:
		return h.renderPlain(quotes)
	default:
		return h.renderTable(quotes)
	}
}

// renderJSON writes the quotes as an indented JSON document
func (h *QuoteHandler) renderJSON(quotes []*models.Quote) error {
	if quotes == nil {
		quotes = []*models.Quote{}
	}

	encoder := json.NewEncoder(h.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(models.QuoteBatch{
		Count:  len(quotes),
		Quotes: quotes,
	})
}

// renderPlain writes one line per quote: input, american, decimal, fractional
func (h *QuoteHandler) renderPlain(quotes []*models.Quote) error {
	for _, q := range quotes {
		if _, err := fmt.Fprintf(h.out, "%s %s %s %s\n",
			q.Input, q.AmericanString(), q.DecimalString(), q.FractionalString()); err != nil {
			return err
		}
	}
	return nil
}

func (h *QuoteHandler) renderTable(quotes []*models.Quote) error {
	table := tablewriter.NewWriter(h.out)
	table.Header("Input", "Kind", "American", "Decimal", "Fractional", "Implied")

	for _, q := range quotes {
		if err := table.Append(
			q.Input,
			q.Kind,
			q.AmericanString(),
			q.DecimalString(),
			q.FractionalString(),
			q.ImpliedPercent(),
		); err != nil {
			return err
		}
	}

	return table.Render()
}
