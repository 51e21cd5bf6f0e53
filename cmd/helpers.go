package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/config"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

// mustClient resolves the configuration and builds a client whose session
// is restored from the cookie cache of the configured profile.
func mustClient() (*config.Config, *api.Client) {
	cfg, err := config.Load(urlFlag)
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	client, err := api.NewCached(cfg.URL, cfg.Profile)
	if err != nil {
		log.Fatal("Failed to create API client: %v", err)
	}
	log.Debug("Using backend %s (profile %s)", cfg.URL, cfg.Profile)
	return cfg, client
}

func saveSession(client *api.Client) {
	if err := client.SaveSession(); err != nil {
		log.Warn("Failed to cache session: %v", err)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printLanding(w io.Writer, landing page.Landing) {
	_, _ = color.New(color.FgCyan, color.Bold).Fprintln(w, landing.Title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(landing.Title)))
	for _, link := range landing.Links {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", link.Label, commandFor(link.Href))
	}
}

// commandFor maps a page route to the command that renders it here.
func commandFor(route string) string {
	switch route {
	case "/login":
		return "icmt login"
	case "/register":
		return "icmt register"
	case "/event-registration":
		return "icmt enroll"
	}
	return "icmt"
}

// navigation records where a page asked to go so the command can follow it
// after reporting the result.
type navigation struct {
	target string
}

func (n *navigation) navigate(to string) {
	n.target = to
}

func (n *navigation) follow(w io.Writer) {
	if n.target == page.RootRoute {
		_, _ = fmt.Fprintln(w)
		printLanding(w, page.NewLanding())
	}
}

// errorText is the user-facing message for a failed backend call.
func errorText(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func parseEventID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.Wrapf(errors.ErrInvalidEventID, "%q", raw)
	}
	return id, nil
}
