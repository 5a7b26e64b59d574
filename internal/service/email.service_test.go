package service

import (
	"context"
	"database/sql"
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

type fakeReturnsService struct {
	reports map[uuid.UUID]*domain.ReturnsReport
	errs    map[uuid.UUID]error
}

func (f fakeReturnsService) GetClientReturns(_ context.Context, _ uuid.UUID, clientID uuid.UUID) (*domain.ReturnsReport, error) {
	if err, ok := f.errs[clientID]; ok {
		return nil, err
	}
	return f.reports[clientID], nil
}

func (f fakeReturnsService) GetAdvisorReturns(context.Context, uuid.UUID) (*domain.ReturnsReport, error) {
	return nil, errors.New("not used")
}

func (f fakeReturnsService) ComputeReturns(context.Context, []domain.Trade, time.Time) domain.ReturnsReport {
	return domain.ReturnsReport{}
}

func sampleReport() *domain.ReturnsReport {
	return &domain.ReturnsReport{
		TradeReturns: []domain.TradeReturn{
			{
				Symbol:    "AAPL",
				Direction: domain.Direction_Buy,
				CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				Exited:    true,
				Return:    decimal.NewFromInt(20),
			},
			{
				Symbol:    "TSLA",
				Direction: domain.Direction_Sell,
				CreatedAt: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			},
		},
		Summary: domain.ReturnsSummary{
			TotalValue:    decimal.NewFromInt(120),
			GrowthPercent: decimal.NewFromInt(20),
			NumTrades:     2,
			NumExited:     1,
			NumActive:     1,
			WinRate:       1,
		},
		ComputedAt: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}
}

func Test_emailServiceHandler_GeneratePerformanceEmail(t *testing.T) {
	t.Run("renders markdown tables to html", func(t *testing.T) {
		h := NewEmailService(nil, nil, nil, nil, nil, nil)

		subject, body, err := h.GeneratePerformanceEmail(
			context.Background(),
			model.UserAccount{FirstName: util.StringPointer("Priya")},
			model.Client{FullName: "Asha Rao"},
			*sampleReport(),
		)
		require.NoError(t, err)
		require.Equal(t, "Your trade performance as of Oct 16, 2026", subject)
		require.Contains(t, body, "<h1>Performance update for Asha Rao</h1>")
		require.Contains(t, body, "<table>")
		require.Contains(t, body, "<td>120.00</td>")
		require.Contains(t, body, "<td>+20.00</td>")
		require.Contains(t, body, "<td>open</td>")
		require.Contains(t, body, "Sent by Priya")
	})

	t.Run("prepends commentary and tolerates gpt failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		h := NewEmailService(nil, gptRepository, nil, nil, nil, nil)

		gptRepository.EXPECT().SummarizePerformance(gomock.Any(), gomock.Any()).Return("Solid month overall.", nil)
		_, body, err := h.GeneratePerformanceEmail(context.Background(), model.UserAccount{}, model.Client{FullName: "A"}, *sampleReport())
		require.NoError(t, err)
		require.Contains(t, body, "<p>Solid month overall.</p>")
		require.Contains(t, body, "Sent by your advisor")

		gptRepository.EXPECT().SummarizePerformance(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))
		_, body, err = h.GeneratePerformanceEmail(context.Background(), model.UserAccount{}, model.Client{FullName: "A"}, *sampleReport())
		require.NoError(t, err)
		require.NotContains(t, body, "Solid month")
	})
}

func Test_emailServiceHandler_SendPerformanceReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	emailRepository := mock_repository.NewMockEmailRepository(ctrl)
	clientRepository := mock_repository.NewMockClientRepository(ctrl)
	userAccountRepository := mock_repository.NewMockUserAccountRepository(ctrl)
	emailPreferenceRepository := mock_repository.NewMockEmailPreferenceRepository(ctrl)

	advisorID := uuid.New()
	withTrades := model.Client{ClientID: uuid.New(), FullName: "Asha", Email: util.StringPointer("asha@example.com")}
	noTrades := model.Client{ClientID: uuid.New(), FullName: "Kabir", Email: util.StringPointer("kabir@example.com")}
	broken := model.Client{ClientID: uuid.New(), FullName: "Ravi", Email: util.StringPointer("ravi@example.com")}
	bounce := model.Client{ClientID: uuid.New(), FullName: "Meera", Email: util.StringPointer("meera@example.com")}
	optedOut := model.Client{ClientID: uuid.New(), FullName: "Dev", Email: util.StringPointer("dev@example.com")}

	returnsService := fakeReturnsService{
		reports: map[uuid.UUID]*domain.ReturnsReport{
			withTrades.ClientID: sampleReport(),
			noTrades.ClientID:   {Summary: domain.ReturnsSummary{}},
			bounce.ClientID:     sampleReport(),
		},
		errs: map[uuid.UUID]error{
			broken.ClientID: errors.New("db timeout"),
		},
	}

	h := NewEmailService(emailRepository, nil, clientRepository, userAccountRepository, emailPreferenceRepository, returnsService)

	status := model.ClientStatus_Active
	userAccountRepository.EXPECT().Get(advisorID).Return(&model.UserAccount{UserAccountID: advisorID}, nil)
	clientRepository.EXPECT().
		List(repository.ClientListFilter{UserAccountID: advisorID, Status: &status, HasEmail: true}).
		Return([]model.Client{withTrades, noTrades, broken, bounce, optedOut}, nil)
	emailPreferenceRepository.EXPECT().
		ListOptedOut(advisorID, model.EmailType_PerformanceReport).
		Return([]model.EmailPreference{{ClientID: optedOut.ClientID, Frequency: model.EmailFrequency_Off}}, nil)
	emailRepository.EXPECT().SendEmail(gomock.Any(), "asha@example.com", gomock.Any(), gomock.Any()).Return(nil)
	emailRepository.EXPECT().SendEmail(gomock.Any(), "meera@example.com", gomock.Any(), gomock.Any()).Return(errors.New("bounced"))

	result, err := h.SendPerformanceReports(context.Background(), advisorID)
	require.NoError(t, err)
	require.Equal(t, 1, result.Sent)
	require.Equal(t, 2, result.Skipped)
	require.Equal(t, 2, result.Failed)
	require.Len(t, result.Outcomes, 5)
	require.Equal(t, ReportOutcome_Skipped, result.Outcomes[1].Status)
	require.Equal(t, "no trades", *result.Outcomes[1].Reason)
	require.Equal(t, "opted out", *result.Outcomes[4].Reason)
}

func Test_emailServiceHandler_UpdateReportPreference(t *testing.T) {
	t.Run("rejects unknown frequency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewEmailService(nil, nil, mock_repository.NewMockClientRepository(ctrl), nil, mock_repository.NewMockEmailPreferenceRepository(ctrl), nil)

		_, err := h.UpdateReportPreference(context.Background(), uuid.New(), uuid.New(), "daily")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		h := NewEmailService(nil, nil, clientRepository, nil, mock_repository.NewMockEmailPreferenceRepository(ctrl), nil)

		clientRepository.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, qrm.ErrNoRows)

		_, err := h.UpdateReportPreference(context.Background(), uuid.New(), uuid.New(), "off")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upserts preference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		emailPreferenceRepository := mock_repository.NewMockEmailPreferenceRepository(ctrl)
		h := NewEmailService(nil, nil, clientRepository, nil, emailPreferenceRepository, nil)

		advisorID, clientID := uuid.New(), uuid.New()
		clientRepository.EXPECT().Get(advisorID, clientID).Return(&model.Client{ClientID: clientID}, nil)
		emailPreferenceRepository.EXPECT().
			Upsert(nil, model.EmailPreference{
				ClientID:  clientID,
				EmailType: model.EmailType_PerformanceReport,
				Frequency: model.EmailFrequency_Off,
			}).
			DoAndReturn(func(_ *sql.Tx, p model.EmailPreference) (*model.EmailPreference, error) {
				return &p, nil
			})

		pref, err := h.UpdateReportPreference(context.Background(), advisorID, clientID, " Off ")
		require.NoError(t, err)
		require.Equal(t, model.EmailFrequency_Off, pref.Frequency)
	})
}
