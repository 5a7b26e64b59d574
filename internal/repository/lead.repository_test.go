package repository

import (
	"testing"

	"finora/internal/db/models/postgres/public/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var leadColumns = []string{
	"lead.lead_id",
	"lead.user_account_id",
	"lead.full_name",
	"lead.email",
	"lead.phone",
	"lead.source",
	"lead.notes",
	"lead.status",
	"lead.converted_client_id",
	"lead.created_at",
	"lead.modified_at",
}

func Test_leadRepositoryHandler_Get_locksInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)FROM public.lead.*FOR UPDATE`).WillReturnRows(sqlmock.NewRows(leadColumns))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = NewLeadRepository(db).Get(tx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, qrm.ErrNoRows)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_leadRepositoryHandler_AddMany(t *testing.T) {
	t.Run("no leads skips the query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		out, err := NewLeadRepository(db).AddMany(nil, nil)
		require.NoError(t, err)
		require.Empty(t, out)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts every lead in one statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO public.lead`).WillReturnRows(sqlmock.NewRows(leadColumns))

		out, err := NewLeadRepository(db).AddMany(nil, []model.Lead{
			{UserAccountID: uuid.New(), FullName: "A", Status: model.LeadStatus_New},
			{UserAccountID: uuid.New(), FullName: "B", Status: model.LeadStatus_New},
		})
		require.NoError(t, err)
		require.Empty(t, out)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
