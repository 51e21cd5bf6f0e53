/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/

// Package cmd provides command-line interface commands for icmt
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

var urlFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "icmt",
	Short: "Command-line client for ICMT event registration",
	Long: `icmt - command-line and web front-end for the ICMT event backend

Sign in, browse the events open for registration and enroll in them from
the terminal, or serve the registration pages to a browser.

Features:
  • Account register, login and logout with a cached session
  • Interactive event registration form
  • Server-rendered web front-end, optionally as a daemon`,
	Example: `  # Point icmt at a backend
  icmt init --url https://api.icmt.example.com

  # Sign in
  icmt login

  # Register for an event
  icmt enroll

  # Serve the web pages on localhost:8090
  icmt serve`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		printLanding(cmd.OutOrStdout(), page.NewLanding())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "Backend URL (overrides config and ICMT_URL)")
}
