package commands

import (
	"strings"
	"testing"
	"time"

	"finora/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_tradesFromRows(t *testing.T) {
	t.Run("parses open and exited trades", func(t *testing.T) {
		csv := `symbol,direction,entryPrice,exitPrice,createdAt
aapl,buy,100,120,2024-01-02
TSLA,SHORT,200,,2024-02-03T10:00:00Z
`
		rows := []tradeCsvRow{}
		require.NoError(t, gocsv.Unmarshal(strings.NewReader(csv), &rows))

		trades, err := tradesFromRows(rows)
		require.NoError(t, err)
		require.Len(t, trades, 2)

		require.Equal(t, "AAPL", trades[0].Symbol)
		require.Equal(t, domain.Direction_Buy, trades[0].Direction)
		require.Equal(t, domain.TradeStatus_Exited, trades[0].Status)
		require.True(t, decimal.NewFromInt(20).Equal(trades[0].SignedReturn()))

		require.Equal(t, domain.Direction_Sell, trades[1].Direction)
		require.Equal(t, domain.TradeStatus_Active, trades[1].Status)
		require.Nil(t, trades[1].ExitPrice)
		require.Equal(t, time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC), trades[1].CreatedAt)
	})

	t.Run("reports the csv line of a bad row", func(t *testing.T) {
		_, err := tradesFromRows([]tradeCsvRow{
			{Symbol: "AAPL", Direction: "BUY", CreatedAt: "2024-01-02"},
			{Symbol: "AAPL", Direction: "HOLD", CreatedAt: "2024-01-02"},
		})
		require.ErrorContains(t, err, "line 3")
	})
}
