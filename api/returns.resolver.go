package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finora/internal/domain"
	"finora/internal/logger"
	"finora/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// flexiblePrice accepts a JSON number or string. Anything that is not a
// number decodes to nil so it contributes zero.
type flexiblePrice struct {
	value *decimal.Decimal
}

func (p *flexiblePrice) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		p.value = nil
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}
	p.value = domain.ParsePrice(raw)
	return nil
}

type returnsTradeRequest struct {
	TradeID   string        `json:"tradeId"`
	Symbol    string        `json:"symbol"`
	Direction string        `json:"direction"`
	Entry     flexiblePrice `json:"entryPrice"`
	Exit      flexiblePrice `json:"exitPrice"`
	CreatedAt string        `json:"createdAt"`
}

type computeReturnsRequest struct {
	Trades []returnsTradeRequest `json:"trades"`
	// Now overrides the reference time, RFC3339 or YYYY-MM-DD.
	Now *string `json:"now"`
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := domain.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err.Error())
	}
	return t, nil
}

func (r computeReturnsRequest) toDomain() ([]domain.Trade, time.Time, error) {
	var now time.Time
	if r.Now != nil && *r.Now != "" {
		t, err := parseTimestamp(*r.Now)
		if err != nil {
			return nil, time.Time{}, err
		}
		now = t
	}

	trades := make([]domain.Trade, 0, len(r.Trades))
	for i, t := range r.Trades {
		direction, err := domain.NewDirection(t.Direction)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("%w: trade %d: %s", service.ErrInvalidInput, i, err.Error())
		}
		createdAt, err := parseTimestamp(t.CreatedAt)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("trade %d: %w", i, err)
		}
		var tradeID uuid.UUID
		if t.TradeID != "" {
			tradeID, err = uuid.Parse(t.TradeID)
			if err != nil {
				return nil, time.Time{}, fmt.Errorf("%w: trade %d: invalid tradeId", service.ErrInvalidInput, i)
			}
		}
		status := domain.TradeStatus_Active
		if t.Exit.value != nil {
			status = domain.TradeStatus_Exited
		}
		trades = append(trades, domain.Trade{
			TradeID:    tradeID,
			Symbol:     strings.ToUpper(strings.TrimSpace(t.Symbol)),
			Direction:  direction,
			EntryPrice: t.Entry.value,
			ExitPrice:  t.Exit.value,
			Status:     status,
			CreatedAt:  createdAt,
		})
	}

	return trades, now, nil
}

// computeReturns is the stateless calculation over posted trades.
func (m ApiHandler) computeReturns(c *gin.Context) {
	var requestBody computeReturnsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	trades, now, err := requestBody.toDomain()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	report := m.ReturnsService.ComputeReturns(c.Request.Context(), trades, now)
	c.JSON(200, report)
}

type returnsResponse struct {
	domain.ReturnsReport
	Profile *domain.Profile `json:"profile,omitempty"`
}

func (m ApiHandler) getAdvisorReturns(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	profile, endProfile := domain.NewProfile()
	ctx := domain.NewCtxWithProfile(c.Request.Context(), profile)

	report, err := m.ReturnsService.GetAdvisorReturns(ctx, userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	endProfile()
	m.trackLatency(c, profile)

	c.JSON(200, returnsResponse{
		ReturnsReport: *report,
		Profile:       profileIfRequested(c, profile),
	})
}

func (m ApiHandler) getClientReturns(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	clientID, err := parseIDParam(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	profile, endProfile := domain.NewProfile()
	ctx := domain.NewCtxWithProfile(c.Request.Context(), profile)

	report, err := m.ReturnsService.GetClientReturns(ctx, userAccountID, clientID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	endProfile()
	m.trackLatency(c, profile)

	c.JSON(200, returnsResponse{
		ReturnsReport: *report,
		Profile:       profileIfRequested(c, profile),
	})
}

func profileIfRequested(c *gin.Context, p *domain.Profile) *domain.Profile {
	if c.Query("profile") == "true" {
		return p
	}
	return nil
}

func (m ApiHandler) trackLatency(c *gin.Context, profile *domain.Profile) {
	if m.LatencyTrackingRepository == nil {
		return
	}
	err := m.LatencyTrackingRepository.Add(c.FullPath(), *profile, getRequestID(c))
	if err != nil {
		logger.FromContext(c).Warnf("failed to track latency: %v", err)
	}
}
