package commands

import (
	"finora/internal/logger"

	"github.com/spf13/cobra"
)

func monitorCmd() *cobra.Command {
	var (
		advisor  string
		autoExit bool
	)
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Check active recommendations against the latest quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			advisorID, err := parseAdvisor(advisor)
			if err != nil {
				return err
			}
			deps, err := loadDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			ctx := logger.WithContext(cmd.Context(), logger.New().With("advisor", advisorID.String()))
			result, err := deps.ApiHandler.RecommendationService.MonitorRecommendations(ctx, advisorID, autoExit)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&advisor, "advisor", "", "advisor user account id")
	cmd.Flags().BoolVar(&autoExit, "auto-exit", false, "exit trades at the crossed target or stoploss")
	_ = cmd.MarkFlagRequired("advisor")
	return cmd
}
