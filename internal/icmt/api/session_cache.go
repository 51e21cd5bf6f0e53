package api

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v2"
)

// CacheDir is where session cookies are cached, relative to the working directory.
var CacheDir = filepath.Join(".icmt", "cache", "cookies")

type cookieStore struct {
	path    string
	baseURL *url.URL
	mu      sync.Mutex
}

type storedCookie struct {
	Name    string    `yaml:"name"`
	Value   string    `yaml:"value"`
	Expires time.Time `yaml:"expires,omitempty"`
}

type storedCookiesFile struct {
	SavedAt time.Time      `yaml:"savedAt"`
	URL     string         `yaml:"url"`
	Cookies []storedCookie `yaml:"cookies"`
}

func newCookieStore(baseURL *url.URL, profile string) (*cookieStore, error) {
	path, err := cookieStorePath(baseURL, profile)
	if err != nil {
		return nil, err
	}
	return &cookieStore{path: path, baseURL: baseURL}, nil
}

// load seeds jar with the cached cookies that have not expired and returns them.
func (s *cookieStore) load(jar *cookiejar.Jar) ([]*http.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session cache: %w", err)
	}

	var file storedCookiesFile
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return nil, fmt.Errorf("parse session cache: %w", err)
	}

	now := time.Now()
	cookies := make([]*http.Cookie, 0, len(file.Cookies))
	for _, c := range file.Cookies {
		if !c.Expires.IsZero() && !c.Expires.After(now) {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/", Expires: c.Expires})
	}
	if len(cookies) == 0 {
		return nil, nil
	}

	jar.SetCookies(s.baseURL, cookies)
	return cookies, nil
}

// save writes the jar's cookies with the expiry recorded for each name.
// Cookies without one are session cookies and are kept until logout.
func (s *cookieStore) save(jar *cookiejar.Jar, expiry map[string]time.Time) error {
	if s == nil || jar == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cookies := jar.Cookies(s.baseURL)
	if len(cookies) == 0 {
		return s.removeLocked()
	}

	now := time.Now()
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		expires := expiry[c.Name]
		if !expires.IsZero() && !expires.After(now) {
			continue
		}
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value, Expires: expires})
	}
	if len(stored) == 0 {
		return s.removeLocked()
	}

	data, err := yaml.Marshal(storedCookiesFile{
		SavedAt: time.Now(),
		URL:     s.baseURL.String(),
		Cookies: stored,
	})
	if err != nil {
		return fmt.Errorf("encode session cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create session cache dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session cache: %w", err)
	}
	return nil
}

func (s *cookieStore) clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked()
}

func (s *cookieStore) removeLocked() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session cache: %w", err)
	}
	return nil
}

func normalizeBaseURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", rawURL)
	}

	normalized := *parsed
	normalized.Path = "/"
	normalized.RawQuery = ""
	normalized.Fragment = ""
	return &normalized, nil
}

func cookieStorePath(baseURL *url.URL, profile string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}

	name := baseURL.Scheme + "-" + baseURL.Host
	if profile != "" {
		name += "-" + profile
	}
	name = strings.NewReplacer(":", "-", string(filepath.Separator), "_").Replace(name)

	return filepath.Join(cwd, CacheDir, name+".yaml"), nil
}
