package integration_tests

import (
	"context"

	"finora/internal/repository"

	"github.com/shopspring/decimal"
)

// NewMockAlpacaRepositoryForTests serves fixed quotes and an open market.
func NewMockAlpacaRepositoryForTests() repository.AlpacaRepository {
	return mockAlpacaForTestsHandler{}
}

type mockAlpacaForTestsHandler struct {
}

var mockQuotes = map[string]decimal.Decimal{
	"AAPL": decimal.NewFromFloat(130.04),
	"META": decimal.NewFromFloat(272.87),
	"GOOG": decimal.NewFromFloat(87.59),
}

func (m mockAlpacaForTestsHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, s := range symbols {
		if p, ok := mockQuotes[s]; ok {
			out[s] = p
		}
	}
	return out, nil
}

func (m mockAlpacaForTestsHandler) IsMarketOpen() (bool, error) {
	return true, nil
}
