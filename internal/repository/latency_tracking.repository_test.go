package repository

import (
	"testing"

	"finora/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLatencyTrackingRepository_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	profile, endProfile := domain.NewProfile()
	_, endSpan := profile.StartNewSpan("load trades")
	endSpan()
	endProfile()

	requestID := uuid.New()
	mock.ExpectExec(`INSERT INTO public.latency_tracking`).
		WithArgs(sqlmock.AnyArg(), "/returns", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewLatencyTrackingRepository(db).Add("/returns", *profile, &requestID)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
