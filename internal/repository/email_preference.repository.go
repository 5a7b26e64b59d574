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

// EmailPreferenceRepository manages per-client email preferences. A client
// with no row for an email type is opted in.
type EmailPreferenceRepository interface {
	Upsert(tx *sql.Tx, pref model.EmailPreference) (*model.EmailPreference, error)
	Get(clientID uuid.UUID, emailType model.EmailType) (*model.EmailPreference, error)
	// ListOptedOut returns the preferences of an advisor's clients who turned
	// the given email type off.
	ListOptedOut(userAccountID uuid.UUID, emailType model.EmailType) ([]model.EmailPreference, error)
}

type emailPreferenceRepositoryHandler struct {
	Db *sql.DB
}

func NewEmailPreferenceRepository(db *sql.DB) EmailPreferenceRepository {
	return emailPreferenceRepositoryHandler{Db: db}
}

func (h emailPreferenceRepositoryHandler) Upsert(tx *sql.Tx, pref model.EmailPreference) (*model.EmailPreference, error) {
	now := time.Now().UTC()
	pref.CreatedAt = now
	pref.UpdatedAt = now

	t := table.EmailPreference
	query := t.INSERT(t.MutableColumns).
		MODEL(pref).
		ON_CONFLICT(
			t.ClientID,
			t.EmailType,
		).
		DO_UPDATE(
			postgres.SET(
				t.Frequency.SET(t.EXCLUDED.Frequency),
				t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			),
		).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.EmailPreference{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert email preference: %w", err)
	}

	return &out, nil
}

func (h emailPreferenceRepositoryHandler) Get(clientID uuid.UUID, emailType model.EmailType) (*model.EmailPreference, error) {
	t := table.EmailPreference
	query := t.SELECT(t.AllColumns).
		WHERE(
			postgres.AND(
				t.ClientID.EQ(postgres.UUID(clientID)),
				// enum columns need NewEnumValue, a text literal does not compare
				t.EmailType.EQ(postgres.NewEnumValue(emailType.String())),
			),
		).
		LIMIT(1)

	out := model.EmailPreference{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email preference: %w", err)
	}

	return &out, nil
}

func (h emailPreferenceRepositoryHandler) ListOptedOut(userAccountID uuid.UUID, emailType model.EmailType) ([]model.EmailPreference, error) {
	t := table.EmailPreference
	query := t.SELECT(t.AllColumns).
		FROM(
			t.INNER_JOIN(table.Client, table.Client.ClientID.EQ(t.ClientID)),
		).
		WHERE(
			postgres.AND(
				table.Client.UserAccountID.EQ(postgres.UUID(userAccountID)),
				t.EmailType.EQ(postgres.NewEnumValue(emailType.String())),
				t.Frequency.EQ(postgres.NewEnumValue(model.EmailFrequency_Off.String())),
			),
		)

	out := []model.EmailPreference{}
	err := query.Query(h.Db, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list opted-out preferences for email type %s: %w", emailType.String(), err)
	}

	return out, nil
}
