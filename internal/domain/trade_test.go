package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func price(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestTrade_SignedReturn(t *testing.T) {
	t.Run("long", func(t *testing.T) {
		trade := Trade{Direction: Direction_Buy, EntryPrice: price(100), ExitPrice: price(120)}
		require.Equal(t, "20", trade.SignedReturn().String())
	})

	t.Run("short", func(t *testing.T) {
		trade := Trade{Direction: Direction_Sell, EntryPrice: price(100), ExitPrice: price(80)}
		require.Equal(t, "20", trade.SignedReturn().String())
	})

	t.Run("losing short", func(t *testing.T) {
		trade := Trade{Direction: Direction_Sell, EntryPrice: price(100), ExitPrice: price(110)}
		require.Equal(t, "-10", trade.SignedReturn().String())
	})

	t.Run("not exited", func(t *testing.T) {
		trade := Trade{Direction: Direction_Buy, EntryPrice: price(100)}
		require.True(t, trade.SignedReturn().IsZero())
		require.False(t, trade.HasExited())
	})

	t.Run("malformed entry", func(t *testing.T) {
		trade := Trade{Direction: Direction_Buy, EntryPrice: ParsePrice("abc"), ExitPrice: price(120)}
		require.True(t, trade.SignedReturn().IsZero())
	})
}

func TestParsePrice(t *testing.T) {
	require.Nil(t, ParsePrice(""))
	require.Nil(t, ParsePrice("  "))
	require.Nil(t, ParsePrice("12x"))
	require.Equal(t, "101.5", ParsePrice(" 101.50 ").String())
}

func TestParseTimestamp(t *testing.T) {
	d, err := ParseTimestamp(" 2024-06-30 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseTimestamp("2024-02-03T10:00:00+05:30")
	require.NoError(t, err)
	require.True(t, d.Equal(time.Date(2024, 2, 3, 4, 30, 0, 0, time.UTC)))

	_, err = ParseTimestamp("30/06/2024")
	require.ErrorContains(t, err, "invalid timestamp")
}

func TestNewDirection(t *testing.T) {
	d, err := NewDirection("buy")
	require.NoError(t, err)
	require.Equal(t, Direction_Buy, d)

	d, err = NewDirection("SHORT")
	require.NoError(t, err)
	require.Equal(t, Direction_Sell, d)

	_, err = NewDirection("hold")
	require.Error(t, err)
}

func TestTrade_CheckLevels(t *testing.T) {
	buy := Trade{
		Symbol:        "INFY",
		Direction:     Direction_Buy,
		Status:        TradeStatus_Active,
		EntryPrice:    price(100),
		TargetPrice:   price(120),
		StoplossPrice: price(90),
	}
	sell := Trade{
		Symbol:        "TCS",
		Direction:     Direction_Sell,
		Status:        TradeStatus_Active,
		EntryPrice:    price(100),
		TargetPrice:   price(80),
		StoplossPrice: price(110),
	}

	tests := []struct {
		name  string
		trade Trade
		quote float64
		want  *AlertKind
	}{
		{"buy target", buy, 121, kind(AlertKind_TargetHit)},
		{"buy target exact", buy, 120, kind(AlertKind_TargetHit)},
		{"buy stoploss", buy, 89.5, kind(AlertKind_StoplossHit)},
		{"buy in range", buy, 105, nil},
		{"sell target", sell, 79, kind(AlertKind_TargetHit)},
		{"sell stoploss", sell, 111, kind(AlertKind_StoplossHit)},
		{"sell in range", sell, 95, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := tt.trade.CheckLevels(decimal.NewFromFloat(tt.quote))
			if tt.want == nil {
				require.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			require.Equal(t, *tt.want, alert.Kind)
			require.Equal(t, tt.trade.Symbol, alert.Symbol)
		})
	}

	t.Run("exited trades never alert", func(t *testing.T) {
		exited := buy
		exited.Status = TradeStatus_Exited
		require.Nil(t, exited.CheckLevels(decimal.NewFromInt(500)))
	})
}

func kind(k AlertKind) *AlertKind {
	return &k
}
