package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res HealthResult
			if err := client.Get("/api/v1/health", &res); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(res)
			return nil
		},
	}
}
