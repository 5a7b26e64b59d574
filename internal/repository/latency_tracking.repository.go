package repository

import (
	"database/sql"
	"fmt"
	"time"

	"finora/internal/db/models/postgres/public/model"
	"finora/internal/db/models/postgres/public/table"
	"finora/internal/domain"

	"github.com/google/uuid"
)

type latencyTrackingRepositoryHandler struct {
	Db *sql.DB
}

// LatencyTrackingRepository stores the span timings of profiled requests.
type LatencyTrackingRepository interface {
	Add(route string, profile domain.Profile, requestID *uuid.UUID) error
}

func NewLatencyTrackingRepository(db *sql.DB) LatencyTrackingRepository {
	return latencyTrackingRepositoryHandler{db}
}

func (h latencyTrackingRepositoryHandler) Add(route string, profile domain.Profile, requestID *uuid.UUID) error {
	bytes, err := profile.ToJsonBytes()
	if err != nil {
		return err
	}

	m := model.LatencyTracking{
		RequestID:       requestID,
		Route:           route,
		ProcessingTimes: string(bytes),
		TotalMs:         profile.TotalMs,
		CreatedAt:       time.Now().UTC(),
	}
	query := table.LatencyTracking.INSERT(table.LatencyTracking.MutableColumns).MODEL(m)

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert latency tracking: %w", err)
	}

	return nil
}
