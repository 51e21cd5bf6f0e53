//nolint:errcheck,gosec // Test file with acceptable error handling patterns
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/icmt/icmt/internal/icmt/errors"
)

// mockServer creates a test HTTP server that simulates the ICMT backend
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func readCacheFile(path string, out any) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body is not JSON: %v (%s)", err, raw)
	}
	return body
}

func TestNew_EmptyURL(t *testing.T) {
	if _, err := New("  "); !errors.Is(err, errors.ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
}

func TestNew_InvalidURL(t *testing.T) {
	if _, err := New("not-a-url"); err == nil {
		t.Fatal("expected error for URL without scheme and host")
	}
}

func TestNew_TrimTrailingSlash(t *testing.T) {
	c, err := New("http://example.test/")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if c.URL != "http://example.test" {
		t.Errorf("URL = %q, want trailing slash removed", c.URL)
	}
}

func TestRegister_RoundTrip(t *testing.T) {
	const respBody = `{"user":{"id":"7d1c7a4e-4a57-4a0c-9d59-0a6f5cb1e7d2","email":"ada@example.com","name":"Ada","avatar_url":null}}`

	var got map[string]any
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/register": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST method, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct == "" {
				t.Error("Expected a JSON content type")
			}
			got = decodeBody(t, r)
			w.Write([]byte(respBody))
		},
	})

	c := newTestClient(t, server)
	resp, err := c.Register(context.Background(), Credentials{Email: "ada@example.com", Password: "s3cret", Name: "Ada"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	wantBody := map[string]any{"email": "ada@example.com", "password": "s3cret", "name": "Ada"}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}

	want := &AuthResponse{User: User{
		ID:    "7d1c7a4e-4a57-4a0c-9d59-0a6f5cb1e7d2",
		Email: "ada@example.com",
		Name:  "Ada",
	}}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_EmptyNameIsSent(t *testing.T) {
	var got map[string]any
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/register": func(w http.ResponseWriter, r *http.Request) {
			got = decodeBody(t, r)
			w.Write([]byte(`{"user":{"id":"1","email":"ada@example.com","name":"","avatar_url":null}}`))
		},
	})

	if _, err := newTestClient(t, server).Register(context.Background(), Credentials{Email: "ada@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	wantBody := map[string]any{"email": "ada@example.com", "password": "pw", "name": ""}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestLogin_SendsOnlyEmailAndPassword(t *testing.T) {
	var got map[string]any
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			got = decodeBody(t, r)
			w.Write([]byte(`{"user":{"id":"1","email":"ada@example.com","name":"Ada","avatar_url":"https://cdn.test/a.png"}}`))
		},
	})

	c := newTestClient(t, server)
	resp, err := c.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "pw", Name: "ignored"})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if diff := cmp.Diff(map[string]any{"email": "ada@example.com", "password": "pw"}, got); diff != "" {
		t.Errorf("login body mismatch (-want +got):\n%s", diff)
	}
	if resp.User.AvatarURL == nil || *resp.User.AvatarURL != "https://cdn.test/a.png" {
		t.Errorf("avatar_url not passed through: %+v", resp.User)
	}
}

func TestAuthFailures(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		body    string
		call    func(*Client) error
		wantMsg string
	}{
		{
			name:   "login with server message",
			path:   "/api/auth/login",
			status: http.StatusUnauthorized,
			body:   `{"error":"Invalid credentials"}`,
			call: func(c *Client) error {
				_, err := c.Login(context.Background(), Credentials{Email: "a", Password: "b"})
				return err
			},
			wantMsg: "Invalid credentials",
		},
		{
			name:   "login with unparseable body",
			path:   "/api/auth/login",
			status: http.StatusUnauthorized,
			body:   `<html>nope</html>`,
			call: func(c *Client) error {
				_, err := c.Login(context.Background(), Credentials{})
				return err
			},
			wantMsg: MsgLoginFailed,
		},
		{
			name:   "register conflict with empty body",
			path:   "/api/auth/register",
			status: http.StatusConflict,
			call: func(c *Client) error {
				_, err := c.Register(context.Background(), Credentials{})
				return err
			},
			wantMsg: MsgRegisterFailed,
		},
		{
			name:   "register with empty error string",
			path:   "/api/auth/register",
			status: http.StatusBadRequest,
			body:   `{"error":""}`,
			call: func(c *Client) error {
				_, err := c.Register(context.Background(), Credentials{})
				return err
			},
			wantMsg: MsgRegisterFailed,
		},
		{
			name:   "logout failure",
			path:   "/api/auth/logout",
			status: http.StatusInternalServerError,
			body:   `{"error":"Session error"}`,
			call: func(c *Client) error {
				return c.Logout(context.Background())
			},
			wantMsg: "Session error",
		},
		{
			name:   "logout failure without body",
			path:   "/api/auth/logout",
			status: http.StatusInternalServerError,
			call: func(c *Client) error {
				return c.Logout(context.Background())
			},
			wantMsg: MsgLogoutFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(t, map[string]http.HandlerFunc{
				tt.path: func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
					w.Write([]byte(tt.body))
				},
			})

			err := tt.call(newTestClient(t, server))
			var apiErr *APIError
			if !stderrors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T (%v)", err, err)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestLogout_Success(t *testing.T) {
	calls := 0
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/logout": func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.ContentLength > 0 {
				t.Errorf("logout should not send a body, got %d bytes", r.ContentLength)
			}
			w.WriteHeader(http.StatusOK)
		},
	})

	if err := newTestClient(t, server).Logout(context.Background()); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly one request, got %d", calls)
	}
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	c := newTestClient(t, server)
	server.Close()

	_, err := c.Login(context.Background(), Credentials{Email: "a", Password: "b"})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		t.Fatalf("transport failure should not be an APIError, got %v", apiErr)
	}
}

func TestSessionCookieIsSent(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "id", Value: "session-1", Path: "/"})
			w.Write([]byte(`{"user":{"id":"1","email":"a","name":"A","avatar_url":null}}`))
		},
		"/api/events": func(w http.ResponseWriter, r *http.Request) {
			ck, err := r.Cookie("id")
			if err != nil || ck.Value != "session-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"events":[]}`))
		},
	})

	c := newTestClient(t, server)
	if _, err := c.Login(context.Background(), Credentials{Email: "a", Password: "b"}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := c.Events(context.Background()); err != nil {
		t.Fatalf("Events() should carry the session cookie: %v", err)
	}
}

func TestWithSession(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/events": func(w http.ResponseWriter, r *http.Request) {
			if ck, err := r.Cookie("id"); err != nil || ck.Value != "browser" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "refreshed", Value: "yes", Path: "/"})
			w.Write([]byte(`{"events":[]}`))
		},
	})

	base := newTestClient(t, server)
	scoped := base.WithSession([]*http.Cookie{{Name: "id", Value: "browser"}})
	if _, err := scoped.Events(context.Background()); err != nil {
		t.Fatalf("Events() with session failed: %v", err)
	}

	names := map[string]string{}
	for _, ck := range scoped.SessionCookies() {
		names[ck.Name] = ck.Value
	}
	if diff := cmp.Diff(map[string]string{"id": "browser", "refreshed": "yes"}, names); diff != "" {
		t.Errorf("session cookies mismatch (-want +got):\n%s", diff)
	}
	if len(base.SessionCookies()) != 0 {
		t.Error("WithSession must not share the original jar")
	}
}

func TestNewCached_PersistsSession(t *testing.T) {
	originalWD, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to switch working directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWD) })

	logins := 0
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			logins++
			http.SetCookie(w, &http.Cookie{
				Name:    "id",
				Value:   "cached",
				Path:    "/",
				Expires: time.Now().Add(time.Hour),
			})
			w.Write([]byte(`{"user":{"id":"1","email":"a","name":"A","avatar_url":null}}`))
		},
		"/api/auth/logout": func(w http.ResponseWriter, r *http.Request) {
			if _, err := r.Cookie("id"); err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		},
	})

	first, err := NewCached(server.URL, "test")
	if err != nil {
		t.Fatalf("NewCached() failed: %v", err)
	}
	if _, err := first.Login(context.Background(), Credentials{Email: "a", Password: "b"}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := first.SaveSession(); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	second, err := NewCached(server.URL, "test")
	if err != nil {
		t.Fatalf("NewCached() failed: %v", err)
	}
	if err := second.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() with cached cookie failed: %v", err)
	}
	if logins != 1 {
		t.Errorf("expected a single login, got %d", logins)
	}

	if err := second.ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	third, err := NewCached(server.URL, "test")
	if err != nil {
		t.Fatalf("NewCached() failed: %v", err)
	}
	if len(third.SessionCookies()) != 0 {
		t.Error("expected no cookies after ClearSession")
	}
}

func TestNewCached_PersistsCookieExpiry(t *testing.T) {
	originalWD, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to switch working directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWD) })

	expires := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "id", Value: "dated", Path: "/", Expires: expires})
			http.SetCookie(w, &http.Cookie{Name: "refresh", Value: "aged", Path: "/", MaxAge: 3600})
			http.SetCookie(w, &http.Cookie{Name: "csrf", Value: "tab", Path: "/"})
			w.Write([]byte(`{"user":{"id":"1","email":"a","name":"A","avatar_url":null}}`))
		},
	})

	c, err := NewCached(server.URL, "expiry")
	if err != nil {
		t.Fatalf("NewCached() failed: %v", err)
	}
	if _, err := c.Login(context.Background(), Credentials{Email: "a", Password: "b"}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := c.SaveSession(); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	var file storedCookiesFile
	if err := readCacheFile(c.store.path, &file); err != nil {
		t.Fatalf("read cache: %v", err)
	}
	got := map[string]time.Time{}
	for _, ck := range file.Cookies {
		got[ck.Name] = ck.Expires
	}
	if !got["id"].Equal(expires) {
		t.Errorf("id expires = %v, want %v", got["id"], expires)
	}
	if d := time.Until(got["refresh"]); d < 59*time.Minute || d > time.Hour {
		t.Errorf("refresh expires in %v, want about an hour", d)
	}
	if at, ok := got["csrf"]; !ok || !at.IsZero() {
		t.Errorf("csrf should be stored as a session cookie, got %v (present %v)", at, ok)
	}

	// An entry that lapsed since the last run is not restored.
	file.Cookies = append(file.Cookies, storedCookie{Name: "stale", Value: "old", Expires: time.Now().Add(-time.Minute)})
	data, _ := yaml.Marshal(file)
	if err := os.WriteFile(c.store.path, data, 0600); err != nil {
		t.Fatalf("rewrite cache: %v", err)
	}
	restored, err := NewCached(server.URL, "expiry")
	if err != nil {
		t.Fatalf("NewCached() failed: %v", err)
	}
	for _, ck := range restored.SessionCookies() {
		if ck.Name == "stale" {
			t.Error("expired cookie was restored from the cache")
		}
	}
	if !restored.expiry["id"].Equal(expires) {
		t.Errorf("restored expiry = %v, want %v", restored.expiry["id"], expires)
	}
}

func TestIssuedCookies(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/auth/logout": func(w http.ResponseWriter, _ *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "id", Value: "", Path: "/", MaxAge: -1})
			http.SetCookie(w, &http.Cookie{Name: "seen", Value: "1", Path: "/", MaxAge: 60})
			w.WriteHeader(http.StatusOK)
		},
	})

	c := newTestClient(t, server).WithSession([]*http.Cookie{{Name: "id", Value: "abc"}, {Name: "theme", Value: "dark"}})
	if len(c.IssuedCookies()) != 0 {
		t.Fatal("no cookies should be issued before a request")
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	issued := c.IssuedCookies()
	if len(issued) != 2 {
		t.Fatalf("issued %d cookies, want 2", len(issued))
	}
	if issued[0].Name != "id" || issued[0].MaxAge >= 0 {
		t.Errorf("id should be issued as a deletion, got %+v", issued[0])
	}
	if issued[1].Name != "seen" || issued[1].MaxAge != 60 || issued[1].Expires.IsZero() {
		t.Errorf("seen should keep its lifetime, got %+v", issued[1])
	}
}

func TestEvents(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/events": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("Expected GET method, got %s", r.Method)
			}
			w.Write([]byte(`{"events":[
				{"id":"3f0c1a52-9a53-4b7f-8d2a-1a1b2c3d4e5f","name":"ICMT 2026","description":null,
				 "location":"Columbia","startDate":"2026-11-14T09:00:00Z","endDate":null,"registrationOpen":true}
			]}`))
		},
	})

	events, err := newTestClient(t, server).Events(context.Background())
	if err != nil {
		t.Fatalf("Events() failed: %v", err)
	}

	loc := "Columbia"
	start := time.Date(2026, 11, 14, 9, 0, 0, 0, time.UTC)
	want := []Event{{
		ID:               uuid.MustParse("3f0c1a52-9a53-4b7f-8d2a-1a1b2c3d4e5f"),
		Name:             "ICMT 2026",
		Location:         &loc,
		StartDate:        &start,
		RegistrationOpen: true,
	}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEvents_MissingList(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/events": func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{}`))
		},
	})

	events, err := newTestClient(t, server).Events(context.Background())
	if err != nil {
		t.Fatalf("Events() failed: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", events)
	}
}

func TestRegisterParticipant(t *testing.T) {
	const eventID = "3f0c1a52-9a53-4b7f-8d2a-1a1b2c3d4e5f"

	calls := 0
	var got map[string]any
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/events/" + eventID + "/register": func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST method, got %s", r.Method)
			}
			got = decodeBody(t, r)
			w.Write([]byte(`{"participant":{"id":"0b7e2b9e-2b53-4e1c-a3f5-5b9f5c2e8a11","eventId":"` + eventID + `","firstName":"Ada"}}`))
		},
	})

	sub := Submission{
		FirstName:                 "Ada",
		LastName:                  "Lovelace",
		Email:                     "ada@example.com",
		TShirtSize:                "M",
		Division:                  "A",
		ExpectedGraduationYear:    2028,
		University:                "Columbia",
		AcknowledgedIDRequirement: true,
		AcknowledgedFilming:       true,
		AcknowledgedTeamMerge:     true,
	}
	p, err := newTestClient(t, server).RegisterParticipant(context.Background(), eventID, sub)
	if err != nil {
		t.Fatalf("RegisterParticipant() failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly one request, got %d", calls)
	}
	if p == nil || p.EventID.String() != eventID {
		t.Errorf("participant not decoded: %+v", p)
	}

	want := map[string]any{
		"firstName":                 "Ada",
		"lastName":                  "Lovelace",
		"email":                     "ada@example.com",
		"tshirtSize":                "M",
		"division":                  "A",
		"expectedGraduationYear":    float64(2028),
		"university":                "Columbia",
		"resumeUrl":                 nil,
		"acknowledgedIdRequirement": true,
		"acknowledgedFilming":       true,
		"acknowledgedTeamMerge":     true,
		"interestedInFinancialAid":  false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("submission body mismatch (-want +got):\n%s", diff)
	}
	if _, ok := got["resumeUrl"]; !ok {
		t.Error("resumeUrl must be present as an explicit null")
	}
}

func TestRegisterParticipant_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "server message", body: `{"error":"Event full"}`, wantMsg: "Event full"},
		{name: "unparseable body", body: `Bad Gateway`, wantMsg: "Registration failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(t, map[string]http.HandlerFunc{
				"/api/events/evt/register": func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte(tt.body))
				},
			})

			_, err := newTestClient(t, server).RegisterParticipant(context.Background(), "evt", Submission{})
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParticipants(t *testing.T) {
	id := uuid.MustParse("3f0c1a52-9a53-4b7f-8d2a-1a1b2c3d4e5f")
	server := mockServer(t, map[string]http.HandlerFunc{
		"/api/events/" + id.String() + "/participants": func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"participants":[{"id":"0b7e2b9e-2b53-4e1c-a3f5-5b9f5c2e8a11","eventId":"` + id.String() + `","firstName":"Ada","lastName":"Lovelace","division":"B"}]}`))
		},
	})

	ps, err := newTestClient(t, server).Participants(context.Background(), id)
	if err != nil {
		t.Fatalf("Participants() failed: %v", err)
	}
	if len(ps) != 1 || ps[0].LastName != "Lovelace" || ps[0].Division != "B" {
		t.Errorf("unexpected participants: %+v", ps)
	}
}

func TestHealth(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/health": func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":"ok","database":"connected"}`))
		},
	})

	h, err := newTestClient(t, server).Health(context.Background())
	if err != nil {
		t.Fatalf("Health() failed: %v", err)
	}
	if diff := cmp.Diff(&Health{Status: "ok", Database: "connected"}, h); diff != "" {
		t.Errorf("health mismatch (-want +got):\n%s", diff)
	}
}

func TestHealth_Unavailable(t *testing.T) {
	server := mockServer(t, map[string]http.HandlerFunc{
		"/health": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
	})

	_, err := newTestClient(t, server).Health(context.Background())
	if err == nil || err.Error() != MsgHealthFailed {
		t.Errorf("error = %v, want %q", err, MsgHealthFailed)
	}
}
