package oddsconv

import "github.com/shopspring/decimal"

// Converter converts Odds with a fixed ConversionConfig.
type Converter struct {
	config ConversionConfig
}

// NewConverter creates a converter bound to config.
func NewConverter(config ConversionConfig) *Converter {
	return &Converter{config: config}
}

// Config returns the bound configuration.
func (c *Converter) Config() ConversionConfig {
	return c.config
}

// American converts o to American odds.
func (c *Converter) American(o Odds) (int32, error) {
	return o.ToAmericanCustom(c.config)
}

// Decimal converts o to decimal odds.
func (c *Converter) Decimal(o Odds) (decimal.Decimal, error) {
	return o.ToDecimalCustom(c.config)
}

// Fractional converts o to fractional odds.
func (c *Converter) Fractional(o Odds) (num, den uint32, err error) {
	return o.ToFractionalCustom(c.config)
}
