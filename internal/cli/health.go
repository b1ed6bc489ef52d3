package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(cfg.ServerURL)

			var result struct {
				Status string `json:"status"`
			}
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			fmt.Printf("Server %s: %s\n", cfg.ServerURL, result.Status)
			return nil
		},
	}
}
