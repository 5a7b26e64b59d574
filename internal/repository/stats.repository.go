package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// AdvisorStats are the dashboard counters for one advisor.
type AdvisorStats struct {
	ActiveClients int `json:"activeClients"`
	TotalClients  int `json:"totalClients"`
	OpenLeads     int `json:"openLeads"`
	ActiveTrades  int `json:"activeTrades"`
	ExitedTrades  int `json:"exitedTrades"`
}

func GetAdvisorStats(db *sql.DB, userAccountID uuid.UUID) (*AdvisorStats, error) {
	query := `select
	(select count(*) from client where user_account_id = $1 and status = 'ACTIVE') as "active_clients",
	(select count(*) from client where user_account_id = $1) as "total_clients",
	(select count(*) from lead where user_account_id = $1 and status not in ('CONVERTED', 'LOST')) as "open_leads",
	(select count(*) from trade where user_account_id = $1 and status = 'ACTIVE') as "active_trades",
	(select count(*) from trade where user_account_id = $1 and status = 'EXITED') as "exited_trades";`

	row := db.QueryRow(query, userAccountID)

	out := AdvisorStats{}

	err := row.Scan(&out.ActiveClients, &out.TotalClients, &out.OpenLeads, &out.ActiveTrades, &out.ExitedTrades)
	if err != nil {
		return nil, fmt.Errorf("failed to get advisor stats: %w", err)
	}

	return &out, nil
}
