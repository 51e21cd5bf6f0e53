package cmd

import (
	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/log"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend health",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, client := mustClient()

		ctx, cancel := signalContext()
		defer cancel()

		health, err := client.Health(ctx)
		if err != nil {
			log.Debug("Health error: %v", err)
			log.Fatal(errorText(err, api.MsgHealthFailed))
		}

		if health.Status != "ok" {
			log.Warn("Backend %s is %s (database: %s)", cfg.URL, health.Status, health.Database)
			return
		}
		log.Success("Backend %s is healthy (database: %s)", cfg.URL, health.Database)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
