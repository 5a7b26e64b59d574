package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrClientReferenced is returned when deleting a client that a converted
// lead still points at.
var ErrClientReferenced = errors.New("client is referenced by a converted lead")

type ClientRepository interface {
	Add(tx *sql.Tx, c model.Client) (*model.Client, error)
	Get(userAccountID, clientID uuid.UUID) (*model.Client, error)
	List(filter ClientListFilter) ([]model.Client, error)
	Update(tx *sql.Tx, c model.Client, columns postgres.ColumnList) (*model.Client, error)
	Delete(userAccountID, clientID uuid.UUID) error
}

type clientRepositoryHandler struct {
	Db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return clientRepositoryHandler{Db: db}
}

func (h clientRepositoryHandler) Add(tx *sql.Tx, c model.Client) (*model.Client, error) {
	c.CreatedAt = time.Now().UTC()
	c.ModifiedAt = time.Now().UTC()

	query := table.Client.
		INSERT(table.Client.MutableColumns).
		MODEL(c).
		RETURNING(table.Client.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Client{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	return &out, nil
}

func (h clientRepositoryHandler) Get(userAccountID, clientID uuid.UUID) (*model.Client, error) {
	query := table.Client.
		SELECT(table.Client.AllColumns).
		WHERE(postgres.AND(
			table.Client.ClientID.EQ(postgres.UUID(clientID)),
			table.Client.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	out := model.Client{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID.String(), err)
	}

	return &out, nil
}

type ClientListFilter struct {
	UserAccountID uuid.UUID
	Status        *model.ClientStatus
	// Search matches a case-insensitive substring of the name.
	Search   *string
	HasEmail bool
	Limit    int64
	Offset   int64
}

func (h clientRepositoryHandler) List(filter ClientListFilter) ([]model.Client, error) {
	query := table.Client.
		SELECT(table.Client.AllColumns).
		ORDER_BY(table.Client.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{
		table.Client.UserAccountID.EQ(postgres.UUID(filter.UserAccountID)),
	}
	if filter.Status != nil {
		whereClauses = append(whereClauses,
			table.Client.Status.EQ(postgres.NewEnumValue(filter.Status.String())),
		)
	}
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses,
			postgres.LOWER(table.Client.FullName).LIKE(
				postgres.String("%"+strings.ToLower(*filter.Search)+"%"),
			),
		)
	}
	if filter.HasEmail {
		whereClauses = append(whereClauses, table.Client.Email.IS_NOT_NULL())
	}

	query = query.WHERE(postgres.AND(whereClauses...))
	if filter.Limit > 0 {
		query = query.LIMIT(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.OFFSET(filter.Offset)
	}

	result := []model.Client{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return result, nil
}

func (h clientRepositoryHandler) Update(tx *sql.Tx, c model.Client, columns postgres.ColumnList) (*model.Client, error) {
	c.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.Client.ModifiedAt)

	query := table.Client.UPDATE(columns).
		MODEL(c).
		WHERE(postgres.AND(
			table.Client.ClientID.EQ(postgres.UUID(c.ClientID)),
			table.Client.UserAccountID.EQ(postgres.UUID(c.UserAccountID)),
		)).
		RETURNING(table.Client.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Client{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", c.ClientID.String(), err)
	}

	return &out, nil
}

func (h clientRepositoryHandler) Delete(userAccountID, clientID uuid.UUID) error {
	query := table.Client.
		DELETE().
		WHERE(postgres.AND(
			table.Client.ClientID.EQ(postgres.UUID(clientID)),
			table.Client.UserAccountID.EQ(postgres.UUID(userAccountID)),
		))

	result, err := query.Exec(h.Db)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("client %s: %w", clientID.String(), ErrClientReferenced)
	} else if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID.String(), err)
	}

	return requireRowsAffected(result, "client", clientID)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func requireRowsAffected(result sql.Result, entity string, id uuid.UUID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for %s %s: %w", entity, id.String(), err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id.String(), qrm.ErrNoRows)
	}
	return nil
}
