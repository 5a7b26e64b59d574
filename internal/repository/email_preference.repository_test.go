package repository

import (
	"testing"
	"time"

	"finora/internal/db/models/postgres/public/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var emailPreferenceColumns = []string{
	"email_preference.email_preference_id",
	"email_preference.client_id",
	"email_preference.email_type",
	"email_preference.frequency",
	"email_preference.created_at",
	"email_preference.updated_at",
}

func TestEmailPreferenceRepository_Get(t *testing.T) {
	t.Run("missing preference is nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM public.email_preference").
			WillReturnRows(sqlmock.NewRows(emailPreferenceColumns))

		pref, err := NewEmailPreferenceRepository(db).Get(uuid.New(), model.EmailType_PerformanceReport)
		require.NoError(t, err)
		require.Nil(t, pref)
	})
}

func TestEmailPreferenceRepository_ListOptedOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`INNER JOIN public.client`).
		WillReturnRows(sqlmock.NewRows(emailPreferenceColumns).
			AddRow(uuid.NewString(), clientID.String(), "PERFORMANCE_REPORT", "OFF", now, now))

	prefs, err := NewEmailPreferenceRepository(db).ListOptedOut(uuid.New(), model.EmailType_PerformanceReport)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	require.Equal(t, clientID, prefs[0].ClientID)
	require.Equal(t, model.EmailFrequency_Off, prefs[0].Frequency)
	require.NoError(t, mock.ExpectationsWereMet())
}
