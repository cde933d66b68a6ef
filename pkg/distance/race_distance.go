package distance

import (
	"strconv"
	"strings"
)

const (
	yardsPerMile    = 1760
	yardsPerFurlong = 220
)

// RaceDistance is a race length broken down into miles, furlongs and yards.
type RaceDistance struct {
	Miles    uint32
	Furlongs uint32
	Yards    uint32
}

// FromYards splits a total distance in yards into miles, furlongs and the
// remaining yards.
func FromYards(total uint32) RaceDistance {
	rest := total % yardsPerMile
	return RaceDistance{
		Miles:    total / yardsPerMile,
		Furlongs: rest / yardsPerFurlong,
		Yards:    rest % yardsPerFurlong,
	}
}

// TotalYards returns the distance in yards.
func (d RaceDistance) TotalYards() uint64 {
	return uint64(d.Miles)*yardsPerMile + uint64(d.Furlongs)*yardsPerFurlong + uint64(d.Yards)
}

// String formats the distance the way racecards do, e.g. "1m 2f 10y".
// Zero parts are omitted; an empty distance is "0y".
func (d RaceDistance) String() string {
	parts := make([]string, 0, 3)
	if d.Miles > 0 {
		parts = append(parts, strconv.FormatUint(uint64(d.Miles), 10)+"m")
	}
	if d.Furlongs > 0 {
		parts = append(parts, strconv.FormatUint(uint64(d.Furlongs), 10)+"f")
	}
	if d.Yards > 0 {
		parts = append(parts, strconv.FormatUint(uint64(d.Yards), 10)+"y")
	}
	if len(parts) == 0 {
		return "0y"
	}
	return strings.Join(parts, " ")
}
