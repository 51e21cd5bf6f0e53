// Package webui serves the icmt pages as a server-rendered web front-end.
package webui

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/form"
	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

//go:embed assets/*.gohtml
var assetsFS embed.FS

const (
	templateLanding      = "landing"
	templateAccount      = "account"
	templateRegistration = "registration"

	fieldEventID  = "eventId"
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldName     = "name"

	modeLogin    = "login"
	modeRegister = "register"
)

type acknowledgements struct {
	IDRequirement string
	Filming       string
	TeamMerge     string
	FinancialAid  string
}

type viewData struct {
	Title        string
	Error        string
	Landing      page.Landing
	Mode         string
	Email        string
	Name         string
	Registration page.RegistrationView
	Acks         acknowledgements
}

func (s *server) loadTemplates() error {
	tmpl, err := template.ParseFS(assetsFS, "assets/*.gohtml")
	if err != nil {
		return err
	}

	s.templates = tmpl
	return nil
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleLanding)
	mux.HandleFunc("/login", s.handleAccount(modeLogin))
	mux.HandleFunc("/register", s.handleAccount(modeRegister))
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/event-registration", s.handleEventRegistration)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

func (s *server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.renderWithStatus(w, templateLanding, s.landingViewData(), http.StatusOK)
}

func (s *server) handleAccount(mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := viewData{Title: accountTitle(mode), Mode: mode}

		switch r.Method {
		case http.MethodGet:
			s.renderWithStatus(w, templateAccount, data, http.StatusOK)
			return
		case http.MethodPost:
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			data.Error = "invalid form payload"
			s.renderWithStatus(w, templateAccount, data, http.StatusBadRequest)
			return
		}

		creds := api.Credentials{
			Email:    r.PostFormValue(fieldEmail),
			Password: r.PostFormValue(fieldPassword),
		}
		if mode == modeRegister {
			creds.Name = r.PostFormValue(fieldName)
		}
		data.Email = strings.TrimSpace(creds.Email)
		data.Name = strings.TrimSpace(creds.Name)

		before := r.Cookies()
		client := s.api.WithSession(before)
		var target string
		account := page.NewAccount(client, func(to string) { target = to })

		var err error
		if mode == modeRegister {
			err = account.Register(r.Context(), creds)
		} else {
			err = account.Login(r.Context(), creds)
		}
		writeSession(w, r, before, client)

		if err != nil {
			log.Debug("%s failed for %s: %v", mode, data.Email, err)
			data.Error = account.Error()
			s.renderWithStatus(w, templateAccount, data, statusFor(err))
			return
		}

		log.Info("%s succeeded for %s", accountTitle(mode), data.Email)
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	before := r.Cookies()
	client := s.api.WithSession(before)
	var target string
	account := page.NewAccount(client, func(to string) { target = to })

	err := account.Logout(r.Context())
	writeSession(w, r, before, client)

	if err != nil {
		data := s.landingViewData()
		data.Error = account.Error()
		s.renderWithStatus(w, templateLanding, data, statusFor(err))
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *server) handleEventRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	before := r.Cookies()
	client := s.api.WithSession(before)
	var target string
	reg := page.NewRegistration(client, func(to string) { target = to }, page.WithClock(s.now))
	reg.Load(r.Context())

	if r.Method == http.MethodGet {
		writeSession(w, r, before, client)
		s.renderWithStatus(w, templateRegistration, s.registrationViewData(reg), http.StatusOK)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeSession(w, r, before, client)
		data := s.registrationViewData(reg)
		data.Error = "invalid form payload"
		s.renderWithStatus(w, templateRegistration, data, http.StatusBadRequest)
		return
	}

	reg.SelectEvent(strings.TrimSpace(r.PostFormValue(fieldEventID)))
	reg.Update(func(f *form.Form) {
		for _, field := range form.Fields {
			// Field ids come from form.Fields, so Set cannot fail.
			_ = f.Set(field, r.PostFormValue(field))
		}
	})

	err := reg.Submit(r.Context())
	writeSession(w, r, before, client)

	if err != nil {
		log.Debug("Event registration failed: %v", err)
		s.renderWithStatus(w, templateRegistration, s.registrationViewData(reg), statusFor(err))
		return
	}

	log.Info("Registration accepted for event %s", reg.View().Selected)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *server) landingViewData() viewData {
	landing := page.NewLanding()
	return viewData{Title: landing.Title, Landing: landing}
}

func (s *server) registrationViewData(reg *page.Registration) viewData {
	view := reg.View()
	return viewData{
		Title:        "Event Registration",
		Error:        view.Error,
		Registration: view,
		Acks: acknowledgements{
			IDRequirement: form.TextIDRequirement,
			Filming:       form.TextFilming,
			TeamMerge:     form.TextTeamMerge,
			FinancialAid:  form.TextFinancialAid,
		},
	}
}

func (s *server) renderWithStatus(w http.ResponseWriter, name string, data viewData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("Template render error: %v", err)
	}
}

// statusFor maps a page error to the response status. Problems with the
// submitted form are the client's; everything else came from the backend.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrValidationFailed),
		errors.Is(err, errors.ErrNoEventSelected),
		errors.Is(err, errors.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrSubmissionInFlight),
		errors.Is(err, errors.ErrPageClosed):
		return http.StatusConflict
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

func accountTitle(mode string) string {
	if mode == modeRegister {
		return "Register"
	}
	return "Login"
}
