package repository

import (
	"context"
	"fmt"
	"strings"

	"finora/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository reads market state from Alpaca. Orders are never
// placed; recommendations are tracked, not executed.
type AlpacaRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	IsMarketOpen() (bool, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		Client:   client,
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	Client   *alpaca.Client
	MdClient *marketdata.Client
}

// GetLatestPrices uses the bid, falling back to the ask when the bid is
// empty. Symbols are upper-cased before the lookup. A symbol with neither
// a bid nor an ask is left out of the result.
func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	normalized := make([]string, 0, len(symbols))
	for _, s := range symbols {
		normalized = append(normalized, strings.ToUpper(strings.TrimSpace(s)))
	}

	results, err := h.MdClient.GetLatestQuotes(normalized, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quotes: %w", err)
	}

	return latestPrices(ctx, results), nil
}

func latestPrices(ctx context.Context, quotes map[string]marketdata.Quote) map[string]decimal.Decimal {
	log := logger.FromContext(ctx)

	out := map[string]decimal.Decimal{}
	for symbol, quote := range quotes {
		price := quote.BidPrice
		if price == 0 {
			log.Warnf("zero bid for %s, using ask %f", symbol, quote.AskPrice)
			price = quote.AskPrice
		}
		if price == 0 {
			log.Warnf("no bid or ask for %s, leaving it out", symbol)
			continue
		}
		out[symbol] = decimal.NewFromFloat(price)
	}

	return out
}

func (h alpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return false, fmt.Errorf("failed to get market clock: %w", err)
	}

	return clock.IsOpen, nil
}
