package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"finora/cmd"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var secretsFile string

func Execute() error {
	root := &cobra.Command{
		Use:          "finora",
		Short:        "Advisory CRM: clients, leads, recommendations and returns",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if secretsFile != "" {
				os.Setenv("FINORA_SECRETS_FILE", secretsFile)
			}
		},
	}

	root.PersistentFlags().StringVar(&secretsFile, "secrets", "", "secrets file (default chosen by FINORA_ENV)")

	root.AddCommand(serveCmd(), migrateCmd(), returnsCmd(), monitorCmd(), sendReportsCmd())
	return root.Execute()
}

func loadDependencies() (*cmd.Dependencies, error) {
	deps, err := cmd.NewDependencies()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	return deps, nil
}

func parseAdvisor(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid advisor id %q: %w", s, err)
	}
	return id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
