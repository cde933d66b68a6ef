package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

// writeTempConfig writes content to a temporary YAML file and returns its path
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify conversion defaults
	assert.Equal(t, "basic", config.Conversion.Lookup)
	assert.Equal(t, "simplify", config.Conversion.FractionStrategy)
	assert.Equal(t, "midpoint_away_from_zero", config.Conversion.Rounding)

	// Verify output defaults
	assert.Equal(t, "table", config.Output.Format)

	// Verify logging defaults
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	path := writeTempConfig(t, `
conversion:
  lookup: extended
  fraction_strategy: plain
  rounding: to_zero

output:
  format: json

logging:
  level: debug
  format: json
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "extended", config.Conversion.Lookup)
	assert.Equal(t, "plain", config.Conversion.FractionStrategy)
	assert.Equal(t, "to_zero", config.Conversion.Rounding)
	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_MalformedFile tests loading with malformed YAML
func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeTempConfig(t, `
conversion:
  lookup: [basic
`)

	config, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_PartialFile tests loading with partial configuration
func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeTempConfig(t, `
conversion:
  lookup: none

# Other configs will use defaults
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify overridden values
	assert.Equal(t, "none", config.Conversion.Lookup)

	// Verify defaults are still used for non-specified values
	assert.Equal(t, "simplify", config.Conversion.FractionStrategy)
	assert.Equal(t, "table", config.Output.Format)
}

// TestLoadConfig_EnvironmentVariables tests environment variable overrides
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	os.Setenv("ODDS_CONVERTER_CONVERSION_LOOKUP", "extended")
	os.Setenv("ODDS_CONVERTER_CONVERSION_FRACTION_STRATEGY", "plain")
	os.Setenv("ODDS_CONVERTER_OUTPUT_FORMAT", "plain")
	defer func() {
		os.Unsetenv("ODDS_CONVERTER_CONVERSION_LOOKUP")
		os.Unsetenv("ODDS_CONVERTER_CONVERSION_FRACTION_STRATEGY")
		os.Unsetenv("ODDS_CONVERTER_OUTPUT_FORMAT")
	}()

	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "extended", config.Conversion.Lookup)
	assert.Equal(t, "plain", config.Conversion.FractionStrategy)
	assert.Equal(t, "plain", config.Output.Format)
}

// TestToConversionConfig tests conversion to engine configuration
func TestToConversionConfig(t *testing.T) {
	conversion := ConversionConfig{
		Lookup:           "extended",
		FractionStrategy: "plain",
		Rounding:         "midpoint-nearest-even",
	}

	cfg, err := conversion.ToConversionConfig()
	require.NoError(t, err)

	assert.Equal(t, oddsconv.LookupExtended, cfg.LookupVariant)
	assert.Equal(t, oddsconv.FractionPlain, cfg.FractionStrategy)
	assert.Equal(t, oddsconv.RoundMidpointNearestEven, cfg.RoundingStrategy)
}

// TestToConversionConfig_Defaults tests that loaded defaults match the engine defaults
func TestToConversionConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	cfg, err := config.Conversion.ToConversionConfig()
	require.NoError(t, err)
	assert.Equal(t, oddsconv.DefaultConfig(), cfg)
}

// TestToConversionConfig_Invalid tests rejection of unknown names
func TestToConversionConfig_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		conversion ConversionConfig
		wantErr    string
	}{
		{"lookup", ConversionConfig{Lookup: "huge"}, "conversion.lookup"},
		{"fraction strategy", ConversionConfig{FractionStrategy: "exact"}, "conversion.fraction_strategy"},
		{"rounding", ConversionConfig{Rounding: "banker"}, "conversion.rounding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.conversion.ToConversionConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
