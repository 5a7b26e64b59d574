package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CurvePoint struct {
	Label string          `json:"label"`
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type TradeReturn struct {
	TradeID   uuid.UUID       `json:"tradeID"`
	Symbol    string          `json:"symbol"`
	Direction Direction       `json:"direction"`
	CreatedAt time.Time       `json:"createdAt"`
	Exited    bool            `json:"exited"`
	Return    decimal.Decimal `json:"return"`
}

type ReturnsSummary struct {
	TotalValue    decimal.Decimal `json:"totalValue"`
	Last10Return  decimal.Decimal `json:"last10Return"`
	Last10Percent decimal.Decimal `json:"last10Percent"`
	YTDReturn     decimal.Decimal `json:"ytdReturn"`
	YTDPercent    decimal.Decimal `json:"ytdPercent"`
	GrowthPercent decimal.Decimal `json:"growthPercent"`
	// XIRR is an approximate annualized return, not a true IRR solve.
	XIRR decimal.Decimal `json:"xirr"`

	NumTrades  int             `json:"numTrades"`
	NumExited  int             `json:"numExited"`
	NumActive  int             `json:"numActive"`
	WinRate    float64         `json:"winRate"`
	BestTrade  decimal.Decimal `json:"bestTrade"`
	WorstTrade decimal.Decimal `json:"worstTrade"`
	Volatility float64         `json:"volatility"`
}

// ReturnsReport is everything the returns panel renders for a set of trades.
type ReturnsReport struct {
	TradeReturns []TradeReturn  `json:"tradeReturns"`
	EquityCurve  []CurvePoint   `json:"equityCurve"`
	Last10Curve  []CurvePoint   `json:"last10Curve"`
	YTDCurve     []CurvePoint   `json:"ytdCurve"`
	Summary      ReturnsSummary `json:"summary"`
	ComputedAt   time.Time      `json:"computedAt"`
}
