package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/domain"
	"finora/internal/repository"
	mock_repository "finora/internal/repository/mocks"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReturnsHandler(t *testing.T, now time.Time) (
	returnsServiceHandler,
	*mock_repository.MockTradeRepository,
	*mock_repository.MockClientRepository,
	*mock_repository.MockReturnsCacheRepository,
) {
	ctrl := gomock.NewController(t)
	trades := mock_repository.NewMockTradeRepository(ctrl)
	clients := mock_repository.NewMockClientRepository(ctrl)
	cache := mock_repository.NewMockReturnsCacheRepository(ctrl)
	return returnsServiceHandler{
		TradeRepository:        trades,
		ClientRepository:       clients,
		ReturnsCacheRepository: cache,
		Now:                    func() time.Time { return now },
	}, trades, clients, cache
}

func Test_returnsServiceHandler_GetAdvisorReturns(t *testing.T) {
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	advisorID := uuid.New()
	key := repository.AdvisorReturnsKey(advisorID)

	t.Run("cache hit skips the database", func(t *testing.T) {
		handler, _, _, cache := newReturnsHandler(t, now)
		cached := &domain.ReturnsReport{
			Summary: domain.ReturnsSummary{TotalValue: decimal.NewFromInt(142)},
		}
		cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

		out, err := handler.GetAdvisorReturns(context.Background(), advisorID)
		require.NoError(t, err)
		require.Equal(t, "142", out.Summary.TotalValue.String())
	})

	t.Run("miss computes and stores", func(t *testing.T) {
		handler, trades, _, cache := newReturnsHandler(t, now)
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
		trades.EXPECT().
			List(repository.TradeListFilter{UserAccountID: advisorID}).
			Return([]model.Trade{
				{
					TradeID:    uuid.New(),
					Symbol:     "AAPL",
					Direction:  model.TradeDirection_Buy,
					EntryPrice: decimal.NewFromInt(100),
					ExitPrice:  util.DecimalPointer(decimal.NewFromInt(120)),
					Status:     model.TradeStatus_Exited,
					CreatedAt:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				},
			}, nil)
		cache.EXPECT().
			Set(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r domain.ReturnsReport) error {
				require.Equal(t, "120", r.Summary.TotalValue.String())
				return nil
			})

		out, err := handler.GetAdvisorReturns(context.Background(), advisorID)
		require.NoError(t, err)
		require.Equal(t, "120", out.Summary.TotalValue.String())
		require.Equal(t, now, out.ComputedAt)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		handler, trades, _, cache := newReturnsHandler(t, now)
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("redis down"))
		trades.EXPECT().List(gomock.Any()).Return([]model.Trade{}, nil)
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(errors.New("redis down"))

		out, err := handler.GetAdvisorReturns(context.Background(), advisorID)
		require.NoError(t, err)
		require.Equal(t, "100", out.Summary.TotalValue.String())
		require.Empty(t, out.EquityCurve)
	})

	t.Run("database errors are", func(t *testing.T) {
		handler, trades, _, cache := newReturnsHandler(t, now)
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
		trades.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := handler.GetAdvisorReturns(context.Background(), advisorID)
		require.ErrorContains(t, err, "connection refused")
	})
}

func Test_returnsServiceHandler_GetClientReturns(t *testing.T) {
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	t.Run("unknown client", func(t *testing.T) {
		handler, _, clients, _ := newReturnsHandler(t, now)
		clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, qrm.ErrNoRows)

		_, err := handler.GetClientReturns(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scopes trades to the client", func(t *testing.T) {
		handler, trades, clients, cache := newReturnsHandler(t, now)
		advisorID := uuid.New()
		clientID := uuid.New()

		clients.EXPECT().Get(advisorID, clientID).Return(&model.Client{ClientID: clientID}, nil)
		cache.EXPECT().Get(gomock.Any(), repository.ClientReturnsKey(advisorID, clientID)).Return(nil, nil)
		trades.EXPECT().
			List(repository.TradeListFilter{UserAccountID: advisorID, ClientID: &clientID}).
			Return([]model.Trade{}, nil)
		cache.EXPECT().Set(gomock.Any(), repository.ClientReturnsKey(advisorID, clientID), gomock.Any()).Return(nil)

		_, err := handler.GetClientReturns(context.Background(), advisorID, clientID)
		require.NoError(t, err)
	})
}

func TestTradeFromModel(t *testing.T) {
	clientID := uuid.New()
	m := model.Trade{
		TradeID:    uuid.New(),
		ClientID:   &clientID,
		Symbol:     "AAPL",
		Direction:  model.TradeDirection_Sell,
		EntryPrice: decimal.NewFromInt(100),
		ExitPrice:  util.DecimalPointer(decimal.NewFromInt(80)),
		Status:     model.TradeStatus_Exited,
	}

	d := TradeFromModel(m)
	require.Equal(t, domain.Direction_Sell, d.Direction)
	require.Equal(t, domain.TradeStatus_Exited, d.Status)
	require.True(t, d.HasExited())
	require.Equal(t, "20", d.SignedReturn().String())
}
