package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	Direction_Buy  Direction = "BUY"
	Direction_Sell Direction = "SELL"
)

// NewDirection accepts BUY/SELL as well as LONG/SHORT, case-insensitive.
func NewDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "LONG":
		return Direction_Buy, nil
	case "SELL", "SHORT":
		return Direction_Sell, nil
	}
	return "", fmt.Errorf("invalid trade direction %q", s)
}

type TradeStatus string

const (
	TradeStatus_Active TradeStatus = "ACTIVE"
	TradeStatus_Exited TradeStatus = "EXITED"
)

// Trade is a recommendation as seen by the returns calculator and the
// monitor. Prices are nil when missing or not numeric.
type Trade struct {
	TradeID       uuid.UUID
	ClientID      *uuid.UUID
	Symbol        string
	Direction     Direction
	EntryPrice    *decimal.Decimal
	StoplossPrice *decimal.Decimal
	TargetPrice   *decimal.Decimal
	ExitPrice     *decimal.Decimal
	Status        TradeStatus
	CreatedAt     time.Time
	ExitedAt      *time.Time
}

// HasExited is true once an exit price is recorded.
func (t Trade) HasExited() bool {
	return t.ExitPrice != nil
}

// SignedReturn is exit-entry for longs and entry-exit for shorts. Trades
// without a usable entry and exit price return zero.
func (t Trade) SignedReturn() decimal.Decimal {
	if t.EntryPrice == nil || t.ExitPrice == nil {
		return decimal.Zero
	}
	switch t.Direction {
	case Direction_Buy:
		return t.ExitPrice.Sub(*t.EntryPrice)
	case Direction_Sell:
		return t.EntryPrice.Sub(*t.ExitPrice)
	}
	return decimal.Zero
}

// ParsePrice returns nil for blank or non-numeric input.
func ParsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// ParseTimestamp accepts RFC3339 or a plain YYYY-MM-DD date, read as UTC
// midnight.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
	}
	return t, nil
}
