package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserAccountRepository interface {
	// GetOrCreate looks the advisor up by auth provider id and creates
	// the account on first sight.
	GetOrCreate(in model.UserAccount) (*model.UserAccount, error)
	Get(id uuid.UUID) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{
		Db: db,
	}
}

func (h userAccountRepositoryHandler) GetOrCreate(in model.UserAccount) (*model.UserAccount, error) {
	t := table.UserAccount

	getQuery := t.SELECT(t.AllColumns).WHERE(t.AuthProviderID.EQ(postgres.String(in.AuthProviderID)))
	out := model.UserAccount{}
	err := getQuery.Query(h.Db, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	} else if err == nil {
		return &out, nil
	}

	in.CreatedAt = time.Now().UTC()
	in.UpdatedAt = time.Now().UTC()
	createQuery := t.INSERT(t.MutableColumns).
		MODEL(in).
		ON_CONFLICT(t.AuthProviderID).
		DO_UPDATE(postgres.SET(t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt))).
		RETURNING(t.AllColumns)

	err = createQuery.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) Get(id uuid.UUID) (*model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(id)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account %s: %w", id.String(), err)
	}

	return &out, nil
}
