package commands

import (
	"database/sql"
	"fmt"

	"finora/internal/db"
	"finora/internal/logger"
	"finora/internal/util"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets, err := util.LoadSecrets()
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}

			migrator, err := db.NewMigrator(dbConn, logger.New())
			if err != nil {
				dbConn.Close()
				return err
			}
			defer migrator.Close()

			if down {
				return migrator.Down()
			}
			return migrator.Up()
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back every migration instead")
	return cmd
}
