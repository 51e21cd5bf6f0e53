package webui

import (
	"context"
	stderrors "errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/log"
)

const (
	shutdownTimeout = 5 * time.Second
	maxFormBytes    = 64 << 10 // 64 KiB
)

// Options configures the web front-end runtime.
type Options struct {
	Host   string
	Port   int
	APIURL string
}

// Addr is the listen address for the options
func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

type server struct {
	opts      Options
	api       *api.Client
	templates *template.Template
	now       func() time.Time
}

func newServer(opts Options) (*server, error) {
	client, err := api.New(opts.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	s := &server{opts: opts, api: client, now: time.Now}
	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return s, nil
}

// Run serves the front-end until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	srv, err := newServer(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize web server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              opts.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Web front-end listening on http://%s (backend %s)", opts.Addr(), srv.api.URL)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down web front-end")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
