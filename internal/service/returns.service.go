package service

import (
	"context"
	"fmt"
	"time"

	"finora/internal/calculator"
	"finora/internal/domain"
	"finora/internal/logger"
	"finora/internal/repository"

	"github.com/google/uuid"
)

type ReturnsService interface {
	GetClientReturns(ctx context.Context, userAccountID, clientID uuid.UUID) (*domain.ReturnsReport, error)
	GetAdvisorReturns(ctx context.Context, userAccountID uuid.UUID) (*domain.ReturnsReport, error)
	// ComputeReturns runs the calculation over caller-supplied trades
	// without touching storage. A zero now means the current time.
	ComputeReturns(ctx context.Context, trades []domain.Trade, now time.Time) domain.ReturnsReport
}

type returnsServiceHandler struct {
	TradeRepository        repository.TradeRepository
	ClientRepository       repository.ClientRepository
	ReturnsCacheRepository repository.ReturnsCacheRepository
	Now                    func() time.Time
}

func NewReturnsService(
	tradeRepository repository.TradeRepository,
	clientRepository repository.ClientRepository,
	returnsCacheRepository repository.ReturnsCacheRepository,
) ReturnsService {
	return returnsServiceHandler{
		TradeRepository:        tradeRepository,
		ClientRepository:       clientRepository,
		ReturnsCacheRepository: returnsCacheRepository,
		Now:                    time.Now,
	}
}

func (h returnsServiceHandler) GetClientReturns(ctx context.Context, userAccountID, clientID uuid.UUID) (*domain.ReturnsReport, error) {
	if _, err := h.ClientRepository.Get(userAccountID, clientID); err != nil {
		return nil, notFoundOr(err, "client "+clientID.String())
	}

	return h.cachedReturns(ctx, repository.ClientReturnsKey(userAccountID, clientID), repository.TradeListFilter{
		UserAccountID: userAccountID,
		ClientID:      &clientID,
	})
}

func (h returnsServiceHandler) GetAdvisorReturns(ctx context.Context, userAccountID uuid.UUID) (*domain.ReturnsReport, error) {
	return h.cachedReturns(ctx, repository.AdvisorReturnsKey(userAccountID), repository.TradeListFilter{
		UserAccountID: userAccountID,
	})
}

func (h returnsServiceHandler) ComputeReturns(ctx context.Context, trades []domain.Trade, now time.Time) domain.ReturnsReport {
	_, endSpan := domain.GetProfile(ctx).StartNewSpan("calculate returns")
	defer endSpan()

	if now.IsZero() {
		now = h.Now()
	}
	return calculator.CalculateReturns(trades, now)
}

func (h returnsServiceHandler) cachedReturns(ctx context.Context, key string, filter repository.TradeListFilter) (*domain.ReturnsReport, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("read returns cache")
	cached, err := h.ReturnsCacheRepository.Get(ctx, key)
	endSpan()
	if err != nil {
		log.Warnf("returns cache read failed for %s: %v", key, err)
	} else if cached != nil {
		return cached, nil
	}

	_, endSpan = profile.StartNewSpan("load trades")
	trades, err := h.TradeRepository.List(filter)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load trades for returns: %w", err)
	}

	domainTrades := make([]domain.Trade, 0, len(trades))
	for _, t := range trades {
		domainTrades = append(domainTrades, TradeFromModel(t))
	}

	report := h.ComputeReturns(ctx, domainTrades, h.Now())

	_, endSpan = profile.StartNewSpan("write returns cache")
	if err := h.ReturnsCacheRepository.Set(ctx, key, report); err != nil {
		log.Warnf("returns cache write failed for %s: %v", key, err)
	}
	endSpan()

	return &report, nil
}
