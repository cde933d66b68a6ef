package service

import (
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

//go:generate mockgen -source=engine_interface.go -destination=../mocks/mock_engine.go -package=mocks

// Engine is an interface that abstracts odds conversion operations
// This allows for easier testing and mocking
type Engine interface {
	American(odds oddsconv.Odds) (int32, error)
	Decimal(odds oddsconv.Odds) (decimal.Decimal, error)
	Fractional(odds oddsconv.Odds) (uint32, uint32, error)
}
