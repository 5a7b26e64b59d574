package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlertKind string

const (
	AlertKind_TargetHit   AlertKind = "TARGET_HIT"
	AlertKind_StoplossHit AlertKind = "STOPLOSS_HIT"
)

// RecommendationAlert is raised when the latest quote of an active trade
// crosses its target or stoploss.
type RecommendationAlert struct {
	TradeID   uuid.UUID  `json:"tradeId"`
	ClientID  *uuid.UUID `json:"clientId"`
	Symbol    string     `json:"symbol"`
	Direction Direction  `json:"direction"`
	Kind      AlertKind  `json:"kind"`
	// Level is the target or stoploss that was crossed.
	Level decimal.Decimal `json:"level"`
	Quote decimal.Decimal `json:"quote"`
	// Exited is set when the monitor closed the trade at Level.
	Exited bool `json:"exited"`
	// ExitError holds why an auto-exit did not go through.
	ExitError *string `json:"exitError,omitempty"`
}

// CheckLevels compares a quote against the trade's target and stoploss.
// Target wins if both are crossed, which can only happen with inverted
// levels.
func (t Trade) CheckLevels(quote decimal.Decimal) *RecommendationAlert {
	if t.Status != TradeStatus_Active {
		return nil
	}

	hit := func(kind AlertKind, level decimal.Decimal) *RecommendationAlert {
		return &RecommendationAlert{
			TradeID:   t.TradeID,
			ClientID:  t.ClientID,
			Symbol:    t.Symbol,
			Direction: t.Direction,
			Kind:      kind,
			Level:     level,
			Quote:     quote,
		}
	}

	switch t.Direction {
	case Direction_Buy:
		if t.TargetPrice != nil && quote.GreaterThanOrEqual(*t.TargetPrice) {
			return hit(AlertKind_TargetHit, *t.TargetPrice)
		}
		if t.StoplossPrice != nil && quote.LessThanOrEqual(*t.StoplossPrice) {
			return hit(AlertKind_StoplossHit, *t.StoplossPrice)
		}
	case Direction_Sell:
		if t.TargetPrice != nil && quote.LessThanOrEqual(*t.TargetPrice) {
			return hit(AlertKind_TargetHit, *t.TargetPrice)
		}
		if t.StoplossPrice != nil && quote.GreaterThanOrEqual(*t.StoplossPrice) {
			return hit(AlertKind_StoplossHit, *t.StoplossPrice)
		}
	}

	return nil
}
