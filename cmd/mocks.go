package cmd

import (
	"context"

	"finora/internal/repository"

	"github.com/shopspring/decimal"
)

// UseMockAlpaca makes the market look open outside trading hours so the
// monitor can be exercised against live quotes. Dev only.
const UseMockAlpaca = false

type alwaysOpenAlpacaRepositoryHandler struct {
	realAlpacaRepository repository.AlpacaRepository
}

func NewAlwaysOpenAlpacaRepository(alpacaRepository repository.AlpacaRepository) repository.AlpacaRepository {
	return alwaysOpenAlpacaRepositoryHandler{
		realAlpacaRepository: alpacaRepository,
	}
}

func (m alwaysOpenAlpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	return m.realAlpacaRepository.GetLatestPrices(ctx, symbols)
}

func (m alwaysOpenAlpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	return true, nil
}
