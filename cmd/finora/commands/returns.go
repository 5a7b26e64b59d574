package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"finora/internal/calculator"
	"finora/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

type tradeCsvRow struct {
	Symbol     string `csv:"symbol"`
	Direction  string `csv:"direction"`
	EntryPrice string `csv:"entryPrice"`
	ExitPrice  string `csv:"exitPrice"`
	CreatedAt  string `csv:"createdAt"`
}

func returnsCmd() *cobra.Command {
	var (
		file string
		now  string
	)
	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Compute a returns report from a trades CSV",
		Long: `Compute a returns report from a CSV with the columns
symbol,direction,entryPrice,exitPrice,createdAt. Leave exitPrice empty for
open trades.

Example:
  finora returns --file trades.csv --now 2024-06-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			rows := []tradeCsvRow{}
			if err := gocsv.UnmarshalFile(f, &rows); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}
			trades, err := tradesFromRows(rows)
			if err != nil {
				return err
			}

			reference := time.Now().UTC()
			if now != "" {
				reference, err = domain.ParseTimestamp(now)
				if err != nil {
					return err
				}
			}

			return printJSON(calculator.CalculateReturns(trades, reference))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "trades csv")
	cmd.Flags().StringVar(&now, "now", "", "reference date, YYYY-MM-DD or RFC3339 (default today)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func tradesFromRows(rows []tradeCsvRow) ([]domain.Trade, error) {
	trades := make([]domain.Trade, 0, len(rows))
	for i, row := range rows {
		// header is line 1
		line := i + 2
		direction, err := domain.NewDirection(row.Direction)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		createdAt, err := domain.ParseTimestamp(row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		t := domain.Trade{
			Symbol:     strings.ToUpper(strings.TrimSpace(row.Symbol)),
			Direction:  direction,
			EntryPrice: domain.ParsePrice(row.EntryPrice),
			ExitPrice:  domain.ParsePrice(row.ExitPrice),
			Status:     domain.TradeStatus_Active,
			CreatedAt:  createdAt,
		}
		if t.HasExited() {
			t.Status = domain.TradeStatus_Exited
		}
		trades = append(trades, t)
	}
	return trades, nil
}
