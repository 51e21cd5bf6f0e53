package cmd

import (
	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/config"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/log"
)

var (
	initEmail    string
	initPassword string
	initName     string
	initProfile  string
	initHost     string
	initPort     int
	initNoPrompt bool
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Write the icmt configuration file",
	Long: `Create .icmt/conf.yaml in the current directory.

Values can be given as flags or entered interactively. Credentials are
optional; leave them out to be prompted at login time instead.`,
	Example: `  # Initialize with prompts
  icmt init

  # Initialize with flags
  icmt init --url https://api.icmt.example.com --email ada@example.com`,
	Run: func(_ *cobra.Command, _ []string) {
		base := config.Config{
			URL:     urlFlag,
			Profile: initProfile,
			Creds:   api.Credentials{Email: initEmail, Password: initPassword, Name: initName},
			Server:  config.ServerConfig{Host: initHost, Port: initPort},
		}

		cfg, err := buildInitConfig(newPrompter(initNoPrompt), base)
		if err != nil {
			log.Fatal("Initialization failed: %v", err)
		}

		if err := config.Save(".", cfg); err != nil {
			log.Fatal("Failed to write configuration: %v", err)
		}
		log.Success("Configuration written to %s", config.Path("."))
	},
}

// buildInitConfig fills in the backend URL when missing and checks it parses.
func buildInitConfig(p prompter, cfg config.Config) (*config.Config, error) {
	if cfg.URL == "" {
		answer, err := p.Input("Backend URL:", "", true)
		if err != nil && !errors.Is(err, errors.ErrPromptDisabled) {
			return nil, err
		}
		cfg.URL = answer
	}

	client, err := api.New(cfg.URL)
	if err != nil {
		return nil, err
	}
	cfg.URL = client.URL

	if cfg.Profile == "" {
		cfg.Profile = config.DefaultProfile
	}
	return &cfg, nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initEmail, "email", "", "Account email to store")
	initCmd.Flags().StringVar(&initPassword, "password", "", "Account password to store")
	initCmd.Flags().StringVar(&initName, "name", "", "Display name used by register")
	initCmd.Flags().StringVar(&initProfile, "profile", "", "Session cache profile")
	initCmd.Flags().StringVarP(&initHost, "host", "H", "", "Default host for icmt serve")
	initCmd.Flags().IntVarP(&initPort, "port", "p", 0, "Default port for icmt serve")
	initCmd.Flags().BoolVar(&initNoPrompt, "no-prompt", false, "Never prompt for missing input")
}
