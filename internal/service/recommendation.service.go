package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/domain"
	"finora/internal/logger"
	"finora/internal/repository"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecommendationService interface {
	CreateTrade(ctx context.Context, userAccountID uuid.UUID, in TradeInput) (*model.Trade, error)
	GetTrade(ctx context.Context, userAccountID, tradeID uuid.UUID) (*model.Trade, error)
	ListTrades(ctx context.Context, filter repository.TradeListFilter) ([]model.Trade, error)
	UpdateTrade(ctx context.Context, userAccountID, tradeID uuid.UUID, in TradeInput) (*model.Trade, error)
	DeleteTrade(ctx context.Context, userAccountID, tradeID uuid.UUID) error
	ExitTrade(ctx context.Context, userAccountID, tradeID uuid.UUID, in ExitTradeInput) (*model.Trade, error)
	// MonitorRecommendations checks every active trade of the advisor
	// against the latest quote. With autoExit, crossed trades are exited
	// at the crossed level.
	MonitorRecommendations(ctx context.Context, userAccountID uuid.UUID, autoExit bool) (*MonitorResult, error)
}

// TradeInput carries user-supplied trade fields. Nil fields are left
// unchanged on update.
type TradeInput struct {
	ClientID      *uuid.UUID
	Symbol        *string
	Direction     *string
	EntryPrice    *decimal.Decimal
	StoplossPrice *decimal.Decimal
	TargetPrice   *decimal.Decimal
	Notes         *string
	CreatedAt     *time.Time
}

type ExitTradeInput struct {
	ExitPrice decimal.Decimal
	ExitedAt  *time.Time
}

type MonitorResult struct {
	MarketOpen    bool                         `json:"marketOpen"`
	TradesChecked int                          `json:"tradesChecked"`
	Alerts        []domain.RecommendationAlert `json:"alerts"`
	// MissingQuotes lists symbols the quote provider returned nothing for.
	MissingQuotes []string `json:"missingQuotes"`
	// FailedExits counts alerts whose auto-exit failed. Those alerts carry
	// ExitError and the rest of the run still completes.
	FailedExits int `json:"failedExits"`
}

type recommendationServiceHandler struct {
	TradeRepository        repository.TradeRepository
	ClientRepository       repository.ClientRepository
	AlpacaRepository       repository.AlpacaRepository
	ReturnsCacheRepository repository.ReturnsCacheRepository
}

func NewRecommendationService(
	tradeRepository repository.TradeRepository,
	clientRepository repository.ClientRepository,
	alpacaRepository repository.AlpacaRepository,
	returnsCacheRepository repository.ReturnsCacheRepository,
) RecommendationService {
	return recommendationServiceHandler{
		TradeRepository:        tradeRepository,
		ClientRepository:       clientRepository,
		AlpacaRepository:       alpacaRepository,
		ReturnsCacheRepository: returnsCacheRepository,
	}
}

func (h recommendationServiceHandler) CreateTrade(ctx context.Context, userAccountID uuid.UUID, in TradeInput) (*model.Trade, error) {
	if in.Symbol == nil || strings.TrimSpace(*in.Symbol) == "" {
		return nil, invalidInput("trade symbol is required")
	}
	if in.Direction == nil {
		return nil, invalidInput("trade direction is required")
	}
	if in.EntryPrice == nil {
		return nil, invalidInput("trade entry price is required")
	}

	t := model.Trade{
		UserAccountID: userAccountID,
		Status:        model.TradeStatus_Active,
	}
	if _, err := h.applyTradeInput(&t, in); err != nil {
		return nil, err
	}

	out, err := h.TradeRepository.Add(nil, t)
	if err != nil {
		return nil, err
	}

	h.invalidateReturns(ctx, userAccountID, out.ClientID)
	logger.FromContext(ctx).Infof("created %s recommendation %s on %s", out.Direction, out.TradeID.String(), out.Symbol)
	return out, nil
}

func (h recommendationServiceHandler) GetTrade(ctx context.Context, userAccountID, tradeID uuid.UUID) (*model.Trade, error) {
	t, err := h.TradeRepository.Get(userAccountID, tradeID)
	if err != nil {
		return nil, notFoundOr(err, "trade "+tradeID.String())
	}
	return t, nil
}

func (h recommendationServiceHandler) ListTrades(ctx context.Context, filter repository.TradeListFilter) ([]model.Trade, error) {
	return h.TradeRepository.List(filter)
}

func (h recommendationServiceHandler) UpdateTrade(ctx context.Context, userAccountID, tradeID uuid.UUID, in TradeInput) (*model.Trade, error) {
	existing, err := h.TradeRepository.Get(userAccountID, tradeID)
	if err != nil {
		return nil, notFoundOr(err, "trade "+tradeID.String())
	}
	previousClientID := existing.ClientID

	columns, err := h.applyTradeInput(existing, in)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return existing, nil
	}

	out, err := h.TradeRepository.Update(nil, *existing, columns)
	if err != nil {
		return nil, notFoundOr(err, "trade "+tradeID.String())
	}

	h.invalidateReturns(ctx, userAccountID, previousClientID, out.ClientID)
	return out, nil
}

func (h recommendationServiceHandler) DeleteTrade(ctx context.Context, userAccountID, tradeID uuid.UUID) error {
	existing, err := h.TradeRepository.Get(userAccountID, tradeID)
	if err != nil {
		return notFoundOr(err, "trade "+tradeID.String())
	}

	if err := h.TradeRepository.Delete(userAccountID, tradeID); err != nil {
		return notFoundOr(err, "trade "+tradeID.String())
	}

	h.invalidateReturns(ctx, userAccountID, existing.ClientID)
	return nil
}

func (h recommendationServiceHandler) ExitTrade(ctx context.Context, userAccountID, tradeID uuid.UUID, in ExitTradeInput) (*model.Trade, error) {
	if !in.ExitPrice.IsPositive() {
		return nil, invalidInput("exit price must be positive, got %s", in.ExitPrice.String())
	}

	existing, err := h.TradeRepository.Get(userAccountID, tradeID)
	if err != nil {
		return nil, notFoundOr(err, "trade "+tradeID.String())
	}

	exitedAt := time.Now().UTC()
	if in.ExitedAt != nil {
		exitedAt = in.ExitedAt.UTC()
	}

	return h.exit(ctx, *existing, in.ExitPrice, exitedAt)
}

func (h recommendationServiceHandler) exit(ctx context.Context, t model.Trade, exitPrice decimal.Decimal, exitedAt time.Time) (*model.Trade, error) {
	if t.Status != model.TradeStatus_Active {
		return nil, fmt.Errorf("trade %s is already exited: %w", t.TradeID.String(), ErrConflict)
	}
	if exitedAt.Before(t.CreatedAt) {
		return nil, invalidInput("exit time %s is before the trade was created", exitedAt.Format(time.RFC3339))
	}

	t.ExitPrice = &exitPrice
	t.ExitedAt = &exitedAt
	t.Status = model.TradeStatus_Exited

	out, err := h.TradeRepository.Update(nil, t, postgres.ColumnList{
		table.Trade.ExitPrice,
		table.Trade.ExitedAt,
		table.Trade.Status,
	})
	if err != nil {
		return nil, notFoundOr(err, "trade "+t.TradeID.String())
	}

	h.invalidateReturns(ctx, t.UserAccountID, out.ClientID)
	logger.FromContext(ctx).Infof("exited trade %s at %s", out.TradeID.String(), exitPrice.String())
	return out, nil
}

func (h recommendationServiceHandler) MonitorRecommendations(ctx context.Context, userAccountID uuid.UUID, autoExit bool) (*MonitorResult, error) {
	log := logger.FromContext(ctx)

	status := model.TradeStatus_Active
	trades, err := h.TradeRepository.List(repository.TradeListFilter{
		UserAccountID: userAccountID,
		Status:        &status,
	})
	if err != nil {
		return nil, err
	}

	result := &MonitorResult{
		TradesChecked: len(trades),
		Alerts:        []domain.RecommendationAlert{},
		MissingQuotes: []string{},
	}
	if len(trades) == 0 {
		return result, nil
	}

	marketOpen, err := h.AlpacaRepository.IsMarketOpen()
	if err != nil {
		log.Warnf("could not read market clock: %v", err)
	}
	result.MarketOpen = marketOpen

	symbolSet := map[string]struct{}{}
	for _, t := range trades {
		symbolSet[t.Symbol] = struct{}{}
	}
	symbols := make([]string, 0, len(symbolSet))
	for s := range symbolSet {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	quotes, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes for %d symbols: %w", len(symbols), err)
	}
	for _, s := range symbols {
		if _, ok := quotes[s]; !ok {
			result.MissingQuotes = append(result.MissingQuotes, s)
		}
	}

	for _, t := range trades {
		quote, ok := quotes[t.Symbol]
		if !ok {
			continue
		}
		alert := TradeFromModel(t).CheckLevels(quote)
		if alert == nil {
			continue
		}

		if autoExit {
			_, err := h.exit(ctx, t, alert.Level, time.Now().UTC())
			if err != nil {
				log.Warnf("failed to auto-exit trade %s: %v", t.TradeID.String(), err)
				msg := err.Error()
				alert.ExitError = &msg
				result.FailedExits++
			} else {
				alert.Exited = true
			}
		}
		result.Alerts = append(result.Alerts, *alert)
	}

	log.Infof("checked %d recommendations, %d alerts, %d failed exits", result.TradesChecked, len(result.Alerts), result.FailedExits)
	return result, nil
}

func (h recommendationServiceHandler) applyTradeInput(t *model.Trade, in TradeInput) (postgres.ColumnList, error) {
	columns := postgres.ColumnList{}

	if in.ClientID != nil {
		if _, err := h.ClientRepository.Get(t.UserAccountID, *in.ClientID); err != nil {
			if isNotFound(err) {
				return nil, invalidInput("client %s does not exist", in.ClientID.String())
			}
			return nil, err
		}
		t.ClientID = in.ClientID
		columns = append(columns, table.Trade.ClientID)
	}
	if in.Symbol != nil {
		symbol := strings.ToUpper(strings.TrimSpace(*in.Symbol))
		if symbol == "" {
			return nil, invalidInput("trade symbol cannot be blank")
		}
		t.Symbol = symbol
		columns = append(columns, table.Trade.Symbol)
	}
	if in.Direction != nil {
		d, err := domain.NewDirection(*in.Direction)
		if err != nil {
			return nil, invalidInput("%s", err.Error())
		}
		t.Direction = model.TradeDirection(d)
		columns = append(columns, table.Trade.Direction)
	}
	if in.EntryPrice != nil {
		if !in.EntryPrice.IsPositive() {
			return nil, invalidInput("entry price must be positive, got %s", in.EntryPrice.String())
		}
		t.EntryPrice = *in.EntryPrice
		columns = append(columns, table.Trade.EntryPrice)
	}
	if in.StoplossPrice != nil {
		if !in.StoplossPrice.IsPositive() {
			return nil, invalidInput("stoploss price must be positive, got %s", in.StoplossPrice.String())
		}
		t.StoplossPrice = in.StoplossPrice
		columns = append(columns, table.Trade.StoplossPrice)
	}
	if in.TargetPrice != nil {
		if !in.TargetPrice.IsPositive() {
			return nil, invalidInput("target price must be positive, got %s", in.TargetPrice.String())
		}
		t.TargetPrice = in.TargetPrice
		columns = append(columns, table.Trade.TargetPrice)
	}
	if in.Notes != nil {
		t.Notes = util.NilIfEmpty(in.Notes)
		columns = append(columns, table.Trade.Notes)
	}
	if in.CreatedAt != nil {
		t.CreatedAt = in.CreatedAt.UTC()
		columns = append(columns, table.Trade.CreatedAt)
	}

	return columns, nil
}

// invalidateReturns drops cached reports touched by a trade write. Cache
// errors are logged and never fail the write.
func (h recommendationServiceHandler) invalidateReturns(ctx context.Context, userAccountID uuid.UUID, clientIDs ...*uuid.UUID) {
	keys := []string{repository.AdvisorReturnsKey(userAccountID)}
	for _, id := range clientIDs {
		if id != nil {
			keys = append(keys, repository.ClientReturnsKey(userAccountID, *id))
		}
	}
	if err := h.ReturnsCacheRepository.Invalidate(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warnf("failed to invalidate cached returns: %v", err)
	}
}

// TradeFromModel converts a stored trade into the calculator's view of it.
func TradeFromModel(t model.Trade) domain.Trade {
	entry := t.EntryPrice
	return domain.Trade{
		TradeID:       t.TradeID,
		ClientID:      t.ClientID,
		Symbol:        t.Symbol,
		Direction:     domain.Direction(t.Direction),
		EntryPrice:    &entry,
		StoplossPrice: t.StoplossPrice,
		TargetPrice:   t.TargetPrice,
		ExitPrice:     t.ExitPrice,
		Status:        domain.TradeStatus(t.Status),
		CreatedAt:     t.CreatedAt,
		ExitedAt:      t.ExitedAt,
	}
}
