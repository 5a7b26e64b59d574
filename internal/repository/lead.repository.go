package repository

import (
	"database/sql"
	"fmt"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type LeadRepository interface {
	Add(tx *sql.Tx, l model.Lead) (*model.Lead, error)
	AddMany(tx *sql.Tx, leads []model.Lead) ([]model.Lead, error)
	Get(tx *sql.Tx, userAccountID, leadID uuid.UUID) (*model.Lead, error)
	List(filter LeadListFilter) ([]model.Lead, error)
	Update(tx *sql.Tx, l model.Lead, columns postgres.ColumnList) (*model.Lead, error)
	Delete(userAccountID, leadID uuid.UUID) error
}

type leadRepositoryHandler struct {
	Db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return leadRepositoryHandler{Db: db}
}

func (h leadRepositoryHandler) Add(tx *sql.Tx, l model.Lead) (*model.Lead, error) {
	out, err := h.AddMany(tx, []model.Lead{l})
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("failed to insert lead: expected 1 row, got %d", len(out))
	}

	return &out[0], nil
}

func (h leadRepositoryHandler) AddMany(tx *sql.Tx, leads []model.Lead) ([]model.Lead, error) {
	if len(leads) == 0 {
		return []model.Lead{}, nil
	}

	now := time.Now().UTC()
	for i := range leads {
		leads[i].CreatedAt = now
		leads[i].ModifiedAt = now
	}

	query := table.Lead.
		INSERT(table.Lead.MutableColumns).
		MODELS(leads).
		RETURNING(table.Lead.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.Lead{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert leads: %w", err)
	}

	return out, nil
}

// Get locks the row when called inside a transaction so that conversion
// cannot race with itself.
func (h leadRepositoryHandler) Get(tx *sql.Tx, userAccountID, leadID uuid.UUID) (*model.Lead, error) {
	query := table.Lead.
		SELECT(table.Lead.AllColumns).
		WHERE(postgres.AND(
			table.Lead.LeadID.EQ(postgres.UUID(leadID)),
			table.Lead.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
		query = query.FOR(postgres.UPDATE())
	}

	out := model.Lead{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead %s: %w", leadID.String(), err)
	}

	return &out, nil
}

type LeadListFilter struct {
	UserAccountID uuid.UUID
	Status        *model.LeadStatus
	Limit         int64
	Offset        int64
}

func (h leadRepositoryHandler) List(filter LeadListFilter) ([]model.Lead, error) {
	query := table.Lead.
		SELECT(table.Lead.AllColumns).
		ORDER_BY(table.Lead.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{
		table.Lead.UserAccountID.EQ(postgres.UUID(filter.UserAccountID)),
	}
	if filter.Status != nil {
		whereClauses = append(whereClauses,
			table.Lead.Status.EQ(postgres.NewEnumValue(filter.Status.String())),
		)
	}

	query = query.WHERE(postgres.AND(whereClauses...))
	if filter.Limit > 0 {
		query = query.LIMIT(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.OFFSET(filter.Offset)
	}

	result := []model.Lead{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return result, nil
}

func (h leadRepositoryHandler) Update(tx *sql.Tx, l model.Lead, columns postgres.ColumnList) (*model.Lead, error) {
	l.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.Lead.ModifiedAt)

	query := table.Lead.UPDATE(columns).
		MODEL(l).
		WHERE(postgres.AND(
			table.Lead.LeadID.EQ(postgres.UUID(l.LeadID)),
			table.Lead.UserAccountID.EQ(postgres.UUID(l.UserAccountID)),
		)).
		RETURNING(table.Lead.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Lead{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead %s: %w", l.LeadID.String(), err)
	}

	return &out, nil
}

func (h leadRepositoryHandler) Delete(userAccountID, leadID uuid.UUID) error {
	query := table.Lead.
		DELETE().
		WHERE(postgres.AND(
			table.Lead.LeadID.EQ(postgres.UUID(leadID)),
			table.Lead.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", leadID.String(), err)
	}

	return requireRowsAffected(result, "lead", leadID)
}
