package api

import (
	"fmt"
	"strings"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/repository"
	"finora/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	ClientID      *string          `json:"clientId"`
	Symbol        *string          `json:"symbol"`
	Direction     *string          `json:"direction"`
	EntryPrice    *decimal.Decimal `json:"entryPrice"`
	StoplossPrice *decimal.Decimal `json:"stoplossPrice"`
	TargetPrice   *decimal.Decimal `json:"targetPrice"`
	Notes         *string          `json:"notes"`
	CreatedAt     *time.Time       `json:"createdAt"`
}

func (r tradeRequest) toInput() (*service.TradeInput, error) {
	in := service.TradeInput{
		Symbol:        r.Symbol,
		Direction:     r.Direction,
		EntryPrice:    r.EntryPrice,
		StoplossPrice: r.StoplossPrice,
		TargetPrice:   r.TargetPrice,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
	if r.ClientID != nil && *r.ClientID != "" {
		clientID, err := uuid.Parse(*r.ClientID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid clientId %q", service.ErrInvalidInput, *r.ClientID)
		}
		in.ClientID = &clientID
	}
	return &in, nil
}

type tradeResponse struct {
	TradeID       string           `json:"tradeId"`
	ClientID      *string          `json:"clientId"`
	Symbol        string           `json:"symbol"`
	Direction     string           `json:"direction"`
	EntryPrice    decimal.Decimal  `json:"entryPrice"`
	StoplossPrice *decimal.Decimal `json:"stoplossPrice"`
	TargetPrice   *decimal.Decimal `json:"targetPrice"`
	ExitPrice     *decimal.Decimal `json:"exitPrice"`
	Status        string           `json:"status"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"createdAt"`
	ExitedAt      *time.Time       `json:"exitedAt"`
}

func tradeToResponse(t model.Trade) tradeResponse {
	var clientID *string
	if t.ClientID != nil {
		s := t.ClientID.String()
		clientID = &s
	}
	return tradeResponse{
		TradeID:       t.TradeID.String(),
		ClientID:      clientID,
		Symbol:        t.Symbol,
		Direction:     t.Direction.String(),
		EntryPrice:    t.EntryPrice,
		StoplossPrice: t.StoplossPrice,
		TargetPrice:   t.TargetPrice,
		ExitPrice:     t.ExitPrice,
		Status:        t.Status.String(),
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		ExitedAt:      t.ExitedAt,
	}
}

func (m ApiHandler) listTrades(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	filter := repository.TradeListFilter{
		UserAccountID: userAccountID,
	}
	if s := c.Query("status"); s != "" {
		var status model.TradeStatus
		if err := status.Scan(strings.ToUpper(s)); err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid status %q", s), c, 400)
			return
		}
		filter.Status = &status
	}
	if s := c.Query("clientId"); s != "" {
		clientID, err := uuid.Parse(s)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid clientId %q", s), c, 400)
			return
		}
		filter.ClientID = &clientID
	}
	if s := c.Query("symbol"); s != "" {
		filter.Symbol = &s
	}

	trades, err := m.RecommendationService.ListTrades(c.Request.Context(), filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]tradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, tradeToResponse(t))
	}
	c.JSON(200, out)
}

func (m ApiHandler) createTrade(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toInput()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.RecommendationService.CreateTrade(c.Request.Context(), userAccountID, *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, tradeToResponse(*trade))
}

func (m ApiHandler) getTrade(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	tradeID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.RecommendationService.GetTrade(c.Request.Context(), userAccountID, tradeID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeToResponse(*trade))
}

func (m ApiHandler) updateTrade(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	tradeID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toInput()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.RecommendationService.UpdateTrade(c.Request.Context(), userAccountID, tradeID, *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeToResponse(*trade))
}

func (m ApiHandler) deleteTrade(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	tradeID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := m.RecommendationService.DeleteTrade(c.Request.Context(), userAccountID, tradeID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Status(204)
}

type exitTradeRequest struct {
	ExitPrice decimal.Decimal `json:"exitPrice"`
	ExitedAt  *time.Time      `json:"exitedAt"`
}

func (m ApiHandler) exitTrade(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	tradeID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody exitTradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	trade, err := m.RecommendationService.ExitTrade(c.Request.Context(), userAccountID, tradeID, service.ExitTradeInput{
		ExitPrice: requestBody.ExitPrice,
		ExitedAt:  requestBody.ExitedAt,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeToResponse(*trade))
}
