package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/domain"
	"finora/internal/repository"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_computeReturns(t *testing.T) {
	t.Run("accepts string and numeric prices", func(t *testing.T) {
		a := newTestApi(t)
		body := map[string]any{
			"now": "2024-06-01",
			"trades": []map[string]any{
				{"symbol": "aapl", "direction": "BUY", "entryPrice": "100", "exitPrice": 110, "createdAt": "2024-01-15"},
				{"symbol": "TSLA", "direction": "short", "entryPrice": 50, "exitPrice": "n/a", "createdAt": "2024-02-01T10:00:00Z"},
			},
		}

		w := a.do(t, http.MethodPost, "/returns", body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report domain.ReturnsReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		require.Len(t, report.TradeReturns, 2)
		require.Equal(t, "AAPL", report.TradeReturns[0].Symbol)
		require.True(t, decimal.NewFromInt(10).Equal(report.TradeReturns[0].Return))
		require.False(t, report.TradeReturns[1].Exited)
		require.True(t, report.TradeReturns[1].Return.IsZero())
		require.True(t, decimal.NewFromInt(110).Equal(report.Summary.TotalValue))
		require.Equal(t, 1, report.Summary.NumExited)
		require.Equal(t, 1, report.Summary.NumActive)
	})

	t.Run("empty trades", func(t *testing.T) {
		a := newTestApi(t)
		w := a.do(t, http.MethodPost, "/returns", map[string]any{"trades": []any{}}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var report domain.ReturnsReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		require.True(t, decimal.NewFromInt(100).Equal(report.Summary.TotalValue))
	})

	t.Run("invalid direction", func(t *testing.T) {
		a := newTestApi(t)
		body := map[string]any{
			"trades": []map[string]any{
				{"symbol": "AAPL", "direction": "HOLD", "entryPrice": 1, "createdAt": "2024-01-15"},
			},
		}
		w := a.do(t, http.MethodPost, "/returns", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		a := newTestApi(t)
		body := map[string]any{
			"trades": []map[string]any{
				{"symbol": "AAPL", "direction": "BUY", "entryPrice": 1, "createdAt": "15/01/2024"},
			},
		}
		w := a.do(t, http.MethodPost, "/returns", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func Test_getClientReturns(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		a := newTestApi(t)
		a.expectLogin()
		clientID := uuid.New()
		a.clientRepository.EXPECT().
			Get(a.advisorID, clientID).
			Return(nil, qrm.ErrNoRows)

		w := a.do(t, http.MethodGet, "/clients/"+clientID.String()+"/returns", nil, signedToken(t, "auth|1", time.Now().Add(time.Hour)))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns report for client trades", func(t *testing.T) {
		a := newTestApi(t)
		a.expectLogin()
		clientID := uuid.New()
		a.clientRepository.EXPECT().
			Get(a.advisorID, clientID).
			Return(&model.Client{ClientID: clientID, UserAccountID: a.advisorID}, nil)
		a.tradeRepository.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(filter repository.TradeListFilter) ([]model.Trade, error) {
				require.Equal(t, clientID, *filter.ClientID)
				return []model.Trade{
					{
						TradeID:    uuid.New(),
						ClientID:   &clientID,
						Symbol:     "INFY",
						Direction:  model.TradeDirection_Buy,
						EntryPrice: decimal.NewFromInt(20),
						ExitPrice:  util.DecimalPointer(decimal.NewFromInt(25)),
						Status:     model.TradeStatus_Exited,
						CreatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					},
				}, nil
			})
		a.latencyRepository.EXPECT().
			Add("/clients/:id/returns", gomock.Any(), gomock.Not(gomock.Nil())).
			Return(nil)

		w := a.do(t, http.MethodGet, "/clients/"+clientID.String()+"/returns", nil, signedToken(t, "auth|1", time.Now().Add(time.Hour)))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report domain.ReturnsReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		require.True(t, decimal.NewFromInt(105).Equal(report.Summary.TotalValue))
	})
}
