package commands

import (
	"finora/internal/logger"

	"github.com/spf13/cobra"
)

func sendReportsCmd() *cobra.Command {
	var advisor string
	cmd := &cobra.Command{
		Use:   "send-reports",
		Short: "Email performance reports to every client of an advisor",
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
			result, err := deps.ApiHandler.EmailService.SendPerformanceReports(ctx, advisorID)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&advisor, "advisor", "", "advisor user account id")
	_ = cmd.MarkFlagRequired("advisor")
	return cmd
}
