// Package api is the HTTP client for the ICMT event-management backend.
package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/imroc/req/v3"
	"golang.org/x/net/publicsuffix"

	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/log"
)

const userAgent = "icmt-client/1.0"

// Client talks to the backend REST API. Every request carries the session
// cookies held in the client's jar, and cookies set by the server are kept.
type Client struct {
	URL    string
	base   *url.URL
	client *req.Client
	jar    *cookiejar.Jar
	store  *cookieStore

	mu sync.Mutex
	// issued holds the latest Set-Cookie seen per name, with any Max-Age
	// already resolved into Expires.
	issued map[string]*http.Cookie
	// expiry tracks when each jar cookie lapses; the jar does not expose it.
	expiry map[string]time.Time
}

// APIError is returned for any non-success HTTP status. Message is either the
// server-provided error string or the operation's fixed fallback.
//
//nolint:revive // APIError reads better than Error at call sites
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates a client for the backend at rawURL with an empty session.
func New(rawURL string) (*Client, error) {
	rawURL = strings.TrimRight(strings.TrimSpace(rawURL), "/")
	if rawURL == "" {
		return nil, errors.ErrEmptyURL
	}

	base, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, err
	}

	jar := newJar()
	return &Client{
		URL:    rawURL,
		base:   base,
		client: newHTTPClient(jar),
		jar:    jar,
	}, nil
}

// NewCached creates a client whose session cookies are restored from, and
// saved back to, the local cookie cache for the given profile.
func NewCached(rawURL, profile string) (*Client, error) {
	c, err := New(rawURL)
	if err != nil {
		return nil, err
	}

	store, err := newCookieStore(c.base, profile)
	if err != nil {
		return nil, err
	}
	c.store = store

	restored, err := store.load(c.jar)
	if err != nil {
		log.Warn("Ignoring unreadable session cache: %v", err)
		return c, nil
	}
	if len(restored) > 0 {
		c.mu.Lock()
		c.expiry = make(map[string]time.Time, len(restored))
		for _, ck := range restored {
			if !ck.Expires.IsZero() {
				c.expiry[ck.Name] = ck.Expires
			}
		}
		c.mu.Unlock()
		log.Debug("Restored cached session for %s", c.URL)
	}
	return c, nil
}

func newHTTPClient(jar http.CookieJar) *req.Client {
	client := req.C().
		SetUserAgent(userAgent).
		SetTLSClientConfig(&tls.Config{MinVersion: tls.VersionTLS12}).
		SetCookieJar(jar).
		EnableKeepAlives()

	if transport := client.GetTransport(); transport != nil {
		transport.SetMaxIdleConns(32).
			SetIdleConnTimeout(90 * time.Second)
	}
	return client
}

func newJar() *cookiejar.Jar {
	// cookiejar.New never returns a non-nil error.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// WithSession returns a copy of the client whose jar holds exactly the given
// cookies. The copy shares the underlying transport but never the jar.
func (c *Client) WithSession(cookies []*http.Cookie) *Client {
	jar := newJar()
	scoped := make([]*http.Cookie, 0, len(cookies))
	for _, ck := range cookies {
		if ck == nil || ck.Name == "" {
			continue
		}
		scoped = append(scoped, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: "/"})
	}
	if len(scoped) > 0 {
		jar.SetCookies(c.base, scoped)
	}

	return &Client{
		URL:    c.URL,
		base:   c.base,
		client: c.client.Clone().SetCookieJar(jar),
		jar:    jar,
	}
}

// SessionCookies returns the cookies the client currently sends to the backend.
func (c *Client) SessionCookies() []*http.Cookie {
	if c == nil || c.jar == nil {
		return nil
	}
	return c.jar.Cookies(c.base)
}

// IssuedCookies returns the cookies the backend set on this client's
// responses, latest per name, with their full attributes. Deletions appear
// with a negative MaxAge.
func (c *Client) IssuedCookies() []*http.Cookie {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	cookies := make([]*http.Cookie, 0, len(c.issued))
	for _, ck := range c.issued {
		cp := *ck
		cookies = append(cookies, &cp)
	}
	sort.Slice(cookies, func(i, j int) bool { return cookies[i].Name < cookies[j].Name })
	return cookies
}

func (c *Client) recordCookies(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.issued == nil {
		c.issued = make(map[string]*http.Cookie)
	}
	if c.expiry == nil {
		c.expiry = make(map[string]time.Time)
	}

	for _, ck := range cookies {
		cp := *ck
		if cp.MaxAge > 0 {
			cp.Expires = now.Add(time.Duration(cp.MaxAge) * time.Second)
		} else if cp.MaxAge == 0 && !cp.Expires.IsZero() && !cp.Expires.After(now) {
			cp.MaxAge = -1
		}
		c.issued[cp.Name] = &cp

		if cp.MaxAge < 0 || cp.Expires.IsZero() {
			delete(c.expiry, cp.Name)
			continue
		}
		c.expiry[cp.Name] = cp.Expires
	}
}

// SaveSession persists the current cookies when the client is cache-backed.
func (c *Client) SaveSession() error {
	if c.store == nil {
		return nil
	}
	c.mu.Lock()
	expiry := make(map[string]time.Time, len(c.expiry))
	for name, at := range c.expiry {
		expiry[name] = at
	}
	c.mu.Unlock()
	return c.store.save(c.jar, expiry)
}

// ClearSession drops the cached cookies when the client is cache-backed.
func (c *Client) ClearSession() error {
	if c.store == nil {
		return nil
	}
	return c.store.clear()
}

type errorBody struct {
	Error string `json:"error"`
}

// decodeAPIError builds the error for a failed response. Bodies that are not
// JSON, or that carry no error string, fall back to the given message.
func decodeAPIError(status int, body []byte, fallback string) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == "" {
		return &APIError{Status: status, Message: fallback}
	}
	return &APIError{Status: status, Message: eb.Error}
}

// doRequest issues one request and decodes a JSON success body into data.
func (c *Client) doRequest(ctx context.Context, method, path string, body, data any, fallback string) error {
	if c == nil || c.client == nil {
		return errors.ErrNotInitialized
	}

	fullURL := c.URL + path
	log.DebugH3("Making %s request to: %s", method, fullURL)

	r := c.client.R().SetContext(ctx)
	if body != nil {
		r.SetBodyJsonMarshal(body)
	}

	resp, err := r.Send(method, fullURL)
	if err != nil {
		log.Debug("%s request failed for %s: %v", method, fullURL, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.Response != nil {
		c.recordCookies(resp.Cookies())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, resp.Bytes(), fallback)
		log.Debug("%s %s returned %d: %s", method, fullURL, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if data != nil {
		if len(resp.Bytes()) == 0 {
			log.DebugH3("%s response has empty body, skipping decode for: %s", method, fullURL)
			return nil
		}
		if err := resp.UnmarshalJson(data); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}

	log.DebugH3("%s request successful for: %s", method, fullURL)
	return nil
}

func (c *Client) get(ctx context.Context, path string, data any, fallback string) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, data, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, data any, fallback string) error {
	return c.doRequest(ctx, http.MethodPost, path, body, data, fallback)
}
