package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/repository"
	mock_repository "finora/internal/repository/mocks"
	"finora/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_clientServiceHandler_CreateClient(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := clientServiceHandler{
			ClientRepository: mock_repository.NewMockClientRepository(ctrl),
		}

		_, err := handler.CreateClient(context.Background(), uuid.New(), ClientInput{
			FullName: util.StringPointer("   "),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("defaults risk profile and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		handler := clientServiceHandler{
			ClientRepository: clientRepository,
		}
		advisorID := uuid.New()

		clientRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, c model.Client) (*model.Client, error) {
				c.ClientID = uuid.New()
				return &c, nil
			})

		out, err := handler.CreateClient(context.Background(), advisorID, ClientInput{
			FullName: util.StringPointer(" Meera Iyer "),
			Email:    util.StringPointer("meera@example.com"),
			Phone:    util.StringPointer(""),
		})
		require.NoError(t, err)
		require.Equal(t, "Meera Iyer", out.FullName)
		require.Equal(t, advisorID, out.UserAccountID)
		require.Equal(t, model.RiskProfile_Moderate, out.RiskProfile)
		require.Equal(t, model.ClientStatus_Active, out.Status)
		require.Nil(t, out.Phone)
	})

	t.Run("rejects unknown risk profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := clientServiceHandler{
			ClientRepository: mock_repository.NewMockClientRepository(ctrl),
		}

		_, err := handler.CreateClient(context.Background(), uuid.New(), ClientInput{
			FullName:    util.StringPointer("Meera Iyer"),
			RiskProfile: util.StringPointer("yolo"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func Test_clientServiceHandler_UpdateClient(t *testing.T) {
	t.Run("updates only the provided columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		handler := clientServiceHandler{
			ClientRepository: clientRepository,
		}
		advisorID := uuid.New()
		existing := model.Client{
			ClientID:      uuid.New(),
			UserAccountID: advisorID,
			FullName:      "Meera Iyer",
			RiskProfile:   model.RiskProfile_Moderate,
			Status:        model.ClientStatus_Active,
		}

		clientRepository.EXPECT().Get(advisorID, existing.ClientID).Return(&existing, nil)
		clientRepository.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, c model.Client, columns postgres.ColumnList) (*model.Client, error) {
				names := []string{}
				for _, col := range columns {
					names = append(names, col.Name())
				}
				diff := cmp.Diff([]string{table.Client.RiskProfile.Name(), table.Client.Status.Name()}, names)
				require.Empty(t, diff)
				return &c, nil
			})

		out, err := handler.UpdateClient(context.Background(), advisorID, existing.ClientID, ClientInput{
			RiskProfile: util.StringPointer("aggressive"),
			Status:      util.StringPointer("INACTIVE"),
		})
		require.NoError(t, err)
		require.Equal(t, model.RiskProfile_Aggressive, out.RiskProfile)
		require.Equal(t, model.ClientStatus_Inactive, out.Status)
		require.Equal(t, "Meera Iyer", out.FullName)
	})

	t.Run("missing client is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clientRepository := mock_repository.NewMockClientRepository(ctrl)
		handler := clientServiceHandler{
			ClientRepository: clientRepository,
		}

		clientRepository.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, qrm.ErrNoRows)

		_, err := handler.UpdateClient(context.Background(), uuid.New(), uuid.New(), ClientInput{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func Test_clientServiceHandler_DeleteClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientRepository := mock_repository.NewMockClientRepository(ctrl)
	handler := clientServiceHandler{
		ClientRepository: clientRepository,
	}

	t.Run("missing client", func(t *testing.T) {
		clientRepository.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(qrm.ErrNoRows)

		err := handler.DeleteClient(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("client from a converted lead", func(t *testing.T) {
		clientRepository.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("client x: %w", repository.ErrClientReferenced))

		err := handler.DeleteClient(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, ErrConflict)
	})
}
