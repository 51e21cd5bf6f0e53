package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/config"
	"github.com/icmt/icmt/internal/icmt/daemon"
	"github.com/icmt/icmt/internal/icmt/webui"
	"github.com/icmt/icmt/internal/log"
)

var (
	serveHost    string
	servePort    int
	serveDaemon  bool
	servePidFile string
	serveLogFile string
	serveJSON    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registration pages to a browser",
	Long: `Start the server-rendered web front-end.

The front-end forwards every request to the configured backend using the
browser's own session cookie, so it keeps no state of its own. Pages:

  • /                    landing page
  • /login, /register    account forms
  • /event-registration  event registration form`,
	Example: `  # Start server on default localhost:8090
  icmt serve

  # Start server on custom host and port
  icmt serve --host 0.0.0.0 --port 3000

  # Run in the background
  icmt serve --daemon`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.Load(urlFlag)
		if err != nil {
			log.Fatal("Failed to load configuration: %v", err)
		}

		opts := webui.Options{Host: cfg.Server.Host, Port: cfg.Server.Port, APIURL: cfg.URL}
		if cmd.Flags().Changed("host") {
			opts.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			opts.Port = servePort
		}

		run := func(ctx context.Context) error { return webui.Run(ctx, opts) }

		if serveDaemon {
			log.Info("Starting icmt web front-end as daemon...")
			if err := daemon.Start(daemonConfig(), run); err != nil {
				log.Fatal("Failed to start daemon: %v", err)
			}
			return
		}

		ctx, cancel := signalContext()
		defer cancel()

		log.Info("Starting icmt web front-end...")
		if err := run(ctx); err != nil {
			log.Error("Server error: %v", err)
		}
	},
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show web daemon status",
	Example: `  icmt serve status
  icmt serve status --json`,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := daemon.ShowStatus(daemonConfig(), serveJSON, cmd.OutOrStdout()); err != nil {
			log.Error("Failed to show status: %v", err)
		}
	},
}

var serveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the web daemon",
	Run: func(_ *cobra.Command, _ []string) {
		log.Info("Stopping icmt web daemon...")
		if err := daemon.Stop(daemonConfig()); err != nil {
			log.Fatal("Failed to stop daemon: %v", err)
		}
	},
}

var serveLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Follow the web daemon log",
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := daemonConfig()

		log.Info("Following %s (Ctrl+C to stop)", cfg.LogFile)
		daemon.ShowRecentLogs(cfg.LogFile, 5)

		ctx, cancel := signalContext()
		defer cancel()

		if err := daemon.FollowLogs(ctx, cfg.LogFile, cmd.OutOrStdout()); err != nil {
			log.Fatal("Failed to follow logs: %v", err)
		}
	},
}

func daemonConfig() daemon.Config {
	cfg := daemon.DefaultConfig
	if servePidFile != "" {
		cfg.PidFile = servePidFile
	}
	if serveLogFile != "" {
		cfg.LogFile = serveLogFile
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(serveStatusCmd, serveStopCmd, serveLogsCmd)

	serveCmd.Flags().StringVarP(&serveHost, "host", "H", config.DefaultHost, "Host to bind the server to")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to bind the server to")
	serveCmd.Flags().BoolVar(&serveDaemon, "daemon", false, "Run in the background")
	serveCmd.PersistentFlags().StringVar(&servePidFile, "pid-file", "", "Custom PID file location")
	serveCmd.PersistentFlags().StringVar(&serveLogFile, "log-file", "", "Custom log file location")
	serveStatusCmd.Flags().BoolVar(&serveJSON, "json", false, "Output status in JSON format")
}
