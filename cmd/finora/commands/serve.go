package commands

import (
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := loadDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			if port == 0 {
				port = deps.Secrets.Port
			}
			return deps.ApiHandler.StartApi(port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from secrets)")
	return cmd
}
