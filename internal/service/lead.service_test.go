package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"finora/internal/db/models/postgres/public/model"
	mock_repository "finora/internal/repository/mocks"
	"finora/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_leadServiceHandler_ConvertLead(t *testing.T) {
	t.Run("creates a client and marks the lead converted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ctrl := gomock.NewController(t)
		leadRepository := mock_repository.NewMockLeadRepository(ctrl)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		handler := leadServiceHandler{
			Db:               db,
			LeadRepository:   leadRepository,
			ClientRepository: clientRepository,
		}

		advisorID := uuid.New()
		lead := model.Lead{
			LeadID:        uuid.New(),
			UserAccountID: advisorID,
			FullName:      "Kabir Shah",
			Email:         util.StringPointer("kabir@example.com"),
			Status:        model.LeadStatus_Qualified,
		}
		clientID := uuid.New()

		mock.ExpectBegin()
		leadRepository.EXPECT().Get(gomock.Any(), advisorID, lead.LeadID).Return(&lead, nil)
		clientRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, c model.Client) (*model.Client, error) {
				require.NotNil(t, tx)
				require.Equal(t, "Kabir Shah", c.FullName)
				require.Equal(t, model.RiskProfile_Conservative, c.RiskProfile)
				require.Equal(t, &lead.LeadID, c.LeadID)
				c.ClientID = clientID
				return &c, nil
			})
		leadRepository.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, l model.Lead, _ postgres.ColumnList) (*model.Lead, error) {
				require.NotNil(t, tx)
				return &l, nil
			})
		mock.ExpectCommit()

		out, err := handler.ConvertLead(context.Background(), advisorID, lead.LeadID, util.StringPointer("conservative"))
		require.NoError(t, err)
		require.Equal(t, model.LeadStatus_Converted, out.Lead.Status)
		require.Equal(t, &clientID, out.Lead.ConvertedClientID)
		require.Equal(t, clientID, out.Client.ClientID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second conversion conflicts and rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ctrl := gomock.NewController(t)
		leadRepository := mock_repository.NewMockLeadRepository(ctrl)
		handler := leadServiceHandler{
			Db:               db,
			LeadRepository:   leadRepository,
			ClientRepository: mock_repository.NewMockClientRepository(ctrl),
		}

		existingClient := uuid.New()
		lead := model.Lead{
			LeadID:            uuid.New(),
			FullName:          "Kabir Shah",
			Status:            model.LeadStatus_Converted,
			ConvertedClientID: &existingClient,
		}

		mock.ExpectBegin()
		leadRepository.EXPECT().Get(gomock.Any(), gomock.Any(), lead.LeadID).Return(&lead, nil)
		mock.ExpectRollback()

		_, err = handler.ConvertLead(context.Background(), uuid.New(), lead.LeadID, nil)
		require.ErrorIs(t, err, ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("client insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ctrl := gomock.NewController(t)
		leadRepository := mock_repository.NewMockLeadRepository(ctrl)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		handler := leadServiceHandler{
			Db:               db,
			LeadRepository:   leadRepository,
			ClientRepository: clientRepository,
		}

		lead := model.Lead{LeadID: uuid.New(), FullName: "Kabir Shah", Status: model.LeadStatus_New}

		mock.ExpectBegin()
		leadRepository.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(&lead, nil)
		clientRepository.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		mock.ExpectRollback()

		_, err = handler.ConvertLead(context.Background(), uuid.New(), lead.LeadID, nil)
		require.ErrorContains(t, err, "db down")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_leadServiceHandler_ImportLeads(t *testing.T) {
	t.Run("inserts every row in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ctrl := gomock.NewController(t)
		leadRepository := mock_repository.NewMockLeadRepository(ctrl)
		handler := leadServiceHandler{
			Db:             db,
			LeadRepository: leadRepository,
		}
		advisorID := uuid.New()

		csv := strings.Join([]string{
			"fullName,email,phone,source,notes",
			"Ravi Kumar,ravi@example.com,,webinar,",
			" Anita Das ,,+91 98765 43210,referral,wants options",
		}, "\n")

		mock.ExpectBegin()
		leadRepository.EXPECT().
			AddMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, leads []model.Lead) ([]model.Lead, error) {
				require.NotNil(t, tx)
				require.Len(t, leads, 2)
				require.Equal(t, "Anita Das", leads[1].FullName)
				require.Nil(t, leads[1].Email)
				require.Equal(t, "referral", *leads[1].Source)
				for _, l := range leads {
					require.Equal(t, advisorID, l.UserAccountID)
					require.Equal(t, model.LeadStatus_New, l.Status)
				}
				return leads, nil
			})
		mock.ExpectCommit()

		out, err := handler.ImportLeads(context.Background(), advisorID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nameless rows are reported by line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := leadServiceHandler{
			LeadRepository: mock_repository.NewMockLeadRepository(ctrl),
		}

		csv := strings.Join([]string{
			"fullName,email,phone,source,notes",
			"Ravi Kumar,ravi@example.com,,,",
			",nobody@example.com,,,",
			"Anita Das,,,,",
			"  ,,,,",
		}, "\n")

		_, err := handler.ImportLeads(context.Background(), uuid.New(), strings.NewReader(csv))
		require.ErrorIs(t, err, ErrInvalidInput)
		require.ErrorContains(t, err, "line(s) 3, 5")
	})

	t.Run("header only is rejected", func(t *testing.T) {
		handler := leadServiceHandler{}
		_, err := handler.ImportLeads(context.Background(), uuid.New(), strings.NewReader("fullName,email,phone,source,notes\n"))
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func Test_leadServiceHandler_UpdateLead(t *testing.T) {
	newHandler := func(t *testing.T) (leadServiceHandler, sqlmock.Sqlmock, *mock_repository.MockLeadRepository) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		ctrl := gomock.NewController(t)
		leadRepository := mock_repository.NewMockLeadRepository(ctrl)
		return leadServiceHandler{Db: db, LeadRepository: leadRepository}, mock, leadRepository
	}

	t.Run("status cannot be set to converted", func(t *testing.T) {
		handler, mock, leadRepository := newHandler(t)

		lead := model.Lead{LeadID: uuid.New(), FullName: "Ravi", Status: model.LeadStatus_New}
		mock.ExpectBegin()
		leadRepository.EXPECT().Get(gomock.Any(), gomock.Any(), lead.LeadID).Return(&lead, nil)
		mock.ExpectRollback()

		_, err := handler.UpdateLead(context.Background(), uuid.New(), lead.LeadID, LeadInput{
			Status: util.StringPointer("converted"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("converted lead status is frozen", func(t *testing.T) {
		handler, mock, leadRepository := newHandler(t)

		lead := model.Lead{LeadID: uuid.New(), FullName: "Ravi", Status: model.LeadStatus_Converted}
		mock.ExpectBegin()
		leadRepository.EXPECT().Get(gomock.Any(), gomock.Any(), lead.LeadID).Return(&lead, nil)
		mock.ExpectRollback()

		_, err := handler.UpdateLead(context.Background(), uuid.New(), lead.LeadID, LeadInput{
			Status: util.StringPointer("LOST"),
		})
		require.ErrorIs(t, err, ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reads and writes under one transaction", func(t *testing.T) {
		handler, mock, leadRepository := newHandler(t)

		advisorID := uuid.New()
		lead := model.Lead{LeadID: uuid.New(), UserAccountID: advisorID, FullName: "Ravi", Status: model.LeadStatus_New}

		var readTx *sql.Tx
		mock.ExpectBegin()
		leadRepository.EXPECT().
			Get(gomock.Any(), advisorID, lead.LeadID).
			DoAndReturn(func(tx *sql.Tx, _, _ uuid.UUID) (*model.Lead, error) {
				require.NotNil(t, tx)
				readTx = tx
				return &lead, nil
			})
		leadRepository.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, l model.Lead, _ postgres.ColumnList) (*model.Lead, error) {
				require.Same(t, readTx, tx)
				require.Equal(t, model.LeadStatus_Contacted, l.Status)
				return &l, nil
			})
		mock.ExpectCommit()

		out, err := handler.UpdateLead(context.Background(), advisorID, lead.LeadID, LeadInput{
			Status: util.StringPointer("contacted"),
		})
		require.NoError(t, err)
		require.Equal(t, model.LeadStatus_Contacted, out.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
