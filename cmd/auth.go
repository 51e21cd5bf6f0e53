package cmd

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

var (
	authEmail    string
	authPassword string
	authName     string
	authNoPrompt bool
	authGenerate bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the ICMT backend",
	Long: `Sign in and cache the session cookie for later commands.

Credentials are taken from flags, then ICMT_EMAIL / ICMT_PASSWORD or the
config file, and finally prompted for.`,
	Example: `  # Prompt for credentials
  icmt login

  # Non-interactive
  icmt login --email ada@example.com --password hunter2 --no-prompt`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, client := mustClient()
		if cfg.HasCredentials() {
			log.Debug("Stored credentials found for %s", cfg.Creds.Email)
		}

		creds := withFlagCredentials(cmd, cfg.Creds)
		creds, err := resolveCredentials(newPrompter(authNoPrompt), creds, false)
		if err != nil {
			log.Fatal("Login canceled: %v", err)
		}

		ctx, cancel := signalContext()
		defer cancel()

		nav := &navigation{}
		account := page.NewAccount(client, nav.navigate)
		if err := account.Login(ctx, creds); err != nil {
			log.Debug("Login error: %v", err)
			log.Fatal(account.Error())
		}

		saveSession(client)
		log.Success("Logged in as %s", account.User().Email)
		nav.follow(cmd.OutOrStdout())
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an ICMT account",
	Long: `Create an account on the ICMT backend and cache the resulting session.

Use --generate-password to have a strong password generated for you; it is
printed once and not stored anywhere else.`,
	Example: `  # Prompt for everything
  icmt register

  # Generate a password
  icmt register --email ada@example.com --name "Ada Lovelace" --generate-password`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, client := mustClient()

		creds := withFlagCredentials(cmd, cfg.Creds)
		if authGenerate {
			generated, err := password.Generate(24, 10, 0, false, false)
			if err != nil {
				log.Fatal("Failed to generate password: %v", err)
			}
			creds.Password = generated
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generated password: %s\n", generated)
			log.Warn("Store this password now, it will not be shown again")
		}

		creds, err := resolveCredentials(newPrompter(authNoPrompt), creds, true)
		if err != nil {
			log.Fatal("Registration canceled: %v", err)
		}

		ctx, cancel := signalContext()
		defer cancel()

		nav := &navigation{}
		account := page.NewAccount(client, nav.navigate)
		if err := account.Register(ctx, creds); err != nil {
			log.Debug("Register error: %v", err)
			log.Fatal(account.Error())
		}

		saveSession(client)
		user := account.User()
		log.Success("Account created for %s (%s)", user.Name, user.Email)
		nav.follow(cmd.OutOrStdout())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Example: `  icmt logout`,
	Run: func(cmd *cobra.Command, _ []string) {
		_, client := mustClient()

		ctx, cancel := signalContext()
		defer cancel()

		nav := &navigation{}
		account := page.NewAccount(client, nav.navigate)
		if err := account.Logout(ctx); err != nil {
			log.Debug("Logout error: %v", err)
			log.Fatal(account.Error())
		}

		if err := client.ClearSession(); err != nil {
			log.Warn("Failed to clear cached session: %v", err)
		}
		log.Success("Logged out")
		nav.follow(cmd.OutOrStdout())
	},
}

func withFlagCredentials(cmd *cobra.Command, creds api.Credentials) api.Credentials {
	if cmd.Flags().Changed("email") {
		creds.Email = authEmail
	}
	if cmd.Flags().Changed("password") {
		creds.Password = authPassword
	}
	if cmd.Flags().Changed("name") {
		creds.Name = authName
	}
	return creds
}

// resolveCredentials prompts for whatever is still missing. With prompting
// disabled the gaps are left for the account page to report.
func resolveCredentials(p prompter, creds api.Credentials, withName bool) (api.Credentials, error) {
	ask := func(field *string, fn func() (string, error)) error {
		if *field != "" {
			return nil
		}
		answer, err := fn()
		if errors.Is(err, errors.ErrPromptDisabled) {
			return nil
		}
		if err != nil {
			return err
		}
		*field = answer
		return nil
	}

	if withName {
		if err := ask(&creds.Name, func() (string, error) { return p.Input("Name:", "", false) }); err != nil {
			return creds, err
		}
	}
	if err := ask(&creds.Email, func() (string, error) { return p.Input("Email:", "", true) }); err != nil {
		return creds, err
	}
	if err := ask(&creds.Password, func() (string, error) { return p.Password("Password:") }); err != nil {
		return creds, err
	}
	return creds, nil
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		c.Flags().BoolVar(&authNoPrompt, "no-prompt", false, "Never prompt for missing input")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "Display name")
	registerCmd.Flags().BoolVar(&authGenerate, "generate-password", false, "Generate a strong password")
}
