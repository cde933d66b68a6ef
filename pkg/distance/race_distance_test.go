package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFromYards tests breaking common race lengths into miles, furlongs and yards
func TestFromYards(t *testing.T) {
	tests := []struct {
		name  string
		yards uint32
		want  RaceDistance
	}{
		{"5f sprint", 1100, RaceDistance{0, 5, 0}},
		{"6f sprint", 1320, RaceDistance{0, 6, 0}},
		{"7f sprint", 1540, RaceDistance{0, 7, 0}},
		{"1m", 1760, RaceDistance{1, 0, 0}},
		{"1m 1f", 1980, RaceDistance{1, 1, 0}},
		{"1m 2f", 2200, RaceDistance{1, 2, 0}},
		{"1m 3f", 2420, RaceDistance{1, 3, 0}},
		{"1m 4f", 2640, RaceDistance{1, 4, 0}},
		{"1m 6f", 3080, RaceDistance{1, 6, 0}},
		{"2m", 3520, RaceDistance{2, 0, 0}},
		{"zero", 0, RaceDistance{0, 0, 0}},
		{"just under a furlong", 219, RaceDistance{0, 0, 219}},
		{"just under a mile", 1759, RaceDistance{0, 7, 219}},
		{"odd yards", 2000, RaceDistance{1, 1, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromYards(tt.yards)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, uint64(tt.yards), got.TotalYards())
		})
	}
}

func TestRaceDistance_String(t *testing.T) {
	assert.Equal(t, "1m 6f", RaceDistance{1, 6, 0}.String())
	assert.Equal(t, "7f 219y", RaceDistance{0, 7, 219}.String())
	assert.Equal(t, "2m 50y", RaceDistance{2, 0, 50}.String())
	assert.Equal(t, "6f", RaceDistance{0, 6, 0}.String())
	assert.Equal(t, "100y", RaceDistance{0, 0, 100}.String())
	assert.Equal(t, "0y", RaceDistance{}.String())
	assert.Equal(t, "1m 1f 20y", FromYards(2000).String())
}
