package repository

import (
	"context"
	"fmt"
	"testing"

	"finora/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/stretchr/testify/require"
)

func Test_alpacaRepositoryHandler_GetLatestPrices(t *testing.T) {
	if true {
		t.Skip("hits the live Alpaca API; needs secrets-dev.json")
	}

	secrets, err := util.LoadSecretsFromFile("../../secrets-dev.json")
	require.NoError(t, err)

	handler := NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	prices, err := handler.GetLatestPrices(context.Background(), []string{"aapl", "MSFT"})
	require.NoError(t, err)
	require.Contains(t, prices, "AAPL")
	require.Contains(t, prices, "MSFT")
	fmt.Println(prices)
}

func Test_alpacaRepositoryHandler_GetLatestPrices_empty(t *testing.T) {
	handler := alpacaRepositoryHandler{}
	prices, err := handler.GetLatestPrices(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, prices)
}

func Test_latestPrices(t *testing.T) {
	prices := latestPrices(context.Background(), map[string]marketdata.Quote{
		"AAPL": {BidPrice: 130.5, AskPrice: 130.6},
		"META": {BidPrice: 0, AskPrice: 272.87},
		"HALT": {BidPrice: 0, AskPrice: 0},
	})

	require.Len(t, prices, 2)
	require.Equal(t, "130.5", prices["AAPL"].String())
	require.Equal(t, "272.87", prices["META"].String())
	require.NotContains(t, prices, "HALT")
}
