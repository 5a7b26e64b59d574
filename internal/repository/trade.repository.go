package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeRepository interface {
	Add(tx *sql.Tx, t model.Trade) (*model.Trade, error)
	Get(userAccountID, tradeID uuid.UUID) (*model.Trade, error)
	// List returns trades oldest first, which is the order the returns
	// calculation expects.
	List(filter TradeListFilter) ([]model.Trade, error)
	Update(tx *sql.Tx, t model.Trade, columns postgres.ColumnList) (*model.Trade, error)
	Delete(userAccountID, tradeID uuid.UUID) error
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, t model.Trade) (*model.Trade, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	t.ModifiedAt = time.Now().UTC()

	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODEL(t).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) Get(userAccountID, tradeID uuid.UUID) (*model.Trade, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(postgres.AND(
			table.Trade.TradeID.EQ(postgres.UUID(tradeID)),
			table.Trade.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	out := model.Trade{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID.String(), err)
	}

	return &out, nil
}

type TradeListFilter struct {
	UserAccountID uuid.UUID
	ClientID      *uuid.UUID
	Status        *model.TradeStatus
	Symbol        *string
}

func (h tradeRepositoryHandler) List(filter TradeListFilter) ([]model.Trade, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		ORDER_BY(table.Trade.CreatedAt.ASC())

	whereClauses := []postgres.BoolExpression{
		table.Trade.UserAccountID.EQ(postgres.UUID(filter.UserAccountID)),
	}
	if filter.ClientID != nil {
		whereClauses = append(whereClauses,
			table.Trade.ClientID.EQ(postgres.UUID(*filter.ClientID)),
		)
	}
	if filter.Status != nil {
		whereClauses = append(whereClauses,
			table.Trade.Status.EQ(postgres.NewEnumValue(filter.Status.String())),
		)
	}
	if filter.Symbol != nil && *filter.Symbol != "" {
		whereClauses = append(whereClauses,
			table.Trade.Symbol.EQ(postgres.String(strings.ToUpper(*filter.Symbol))),
		)
	}

	query = query.WHERE(postgres.AND(whereClauses...))

	result := []model.Trade{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	return result, nil
}

func (h tradeRepositoryHandler) Update(tx *sql.Tx, t model.Trade, columns postgres.ColumnList) (*model.Trade, error) {
	t.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.Trade.ModifiedAt)

	query := table.Trade.UPDATE(columns).
		MODEL(t).
		WHERE(postgres.AND(
			table.Trade.TradeID.EQ(postgres.UUID(t.TradeID)),
			table.Trade.UserAccountID.EQ(postgres.UUID(t.UserAccountID)),
		)).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update trade %s: %w", t.TradeID.String(), err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) Delete(userAccountID, tradeID uuid.UUID) error {
	query := table.Trade.
		DELETE().
		WHERE(postgres.AND(
			table.Trade.TradeID.EQ(postgres.UUID(tradeID)),
			table.Trade.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", tradeID.String(), err)
	}

	return requireRowsAffected(result, "trade", tradeID)
}
