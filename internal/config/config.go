package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

// Config holds all configuration for odds-converter
type Config struct {
	Conversion ConversionConfig `mapstructure:"conversion"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ConversionConfig holds conversion engine settings
type ConversionConfig struct {
	Lookup           string `mapstructure:"lookup"`            // none, basic, extended
	FractionStrategy string `mapstructure:"fraction_strategy"` // simplify, plain
	Rounding         string `mapstructure:"rounding"`          // e.g. midpoint_away_from_zero
}

// OutputConfig holds CLI output settings
type OutputConfig struct {
	Format string `mapstructure:"format"` // table, json, plain
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("conversion.lookup", oddsconv.LookupBasic.String())
	v.SetDefault("conversion.fraction_strategy", oddsconv.FractionSimplify.String())
	v.SetDefault("conversion.rounding", oddsconv.RoundMidpointAwayFromZero.String())

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("ODDS_CONVERTER")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToConversionConfig converts config names to engine configuration
func (c *ConversionConfig) ToConversionConfig() (oddsconv.ConversionConfig, error) {
	lookup, err := oddsconv.ParseLookupVariant(c.Lookup)
	if err != nil {
		return oddsconv.ConversionConfig{}, fmt.Errorf("invalid conversion.lookup: %w", err)
	}

	strategy, err := oddsconv.ParseFractionStrategy(c.FractionStrategy)
	if err != nil {
		return oddsconv.ConversionConfig{}, fmt.Errorf("invalid conversion.fraction_strategy: %w", err)
	}

	rounding, err := oddsconv.ParseRoundingStrategy(c.Rounding)
	if err != nil {
		return oddsconv.ConversionConfig{}, fmt.Errorf("invalid conversion.rounding: %w", err)
	}

	return oddsconv.ConversionConfig{
		LookupVariant:    lookup,
		FractionStrategy: strategy,
		RoundingStrategy: rounding,
	}, nil
}
