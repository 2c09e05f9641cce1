package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SessionStore persists the session cookies (sessionid, csrftoken) for a
// server so a login survives restarts.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by the file at path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Path returns the backing file path.
func (s *SessionStore) Path() string {
	return s.path
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type storedSession struct {
	Server  string         `json:"server"`
	Cookies []storedCookie `json:"cookies"`
}

// Load restores saved cookies for base into jar.
// A missing file, or a file saved for another server, is not an error.
func (s *SessionStore) Load(jar http.CookieJar, base *url.URL) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session from %s: %w", s.path, err)
	}

	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parsing session %s: %w", s.path, err)
	}
	if st.Server != serverKey(base) {
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(st.Cookies))
	for _, c := range st.Cookies {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	jar.SetCookies(base, cookies)
	return nil
}

// Save writes the jar's cookies for base to disk (0600).
func (s *SessionStore) Save(jar http.CookieJar, base *url.URL) error {
	st := storedSession{Server: serverKey(base)}
	for _, c := range jar.Cookies(base) {
		st.Cookies = append(st.Cookies, storedCookie{Name: c.Name, Value: c.Value})
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the saved session.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session %s: %w", s.path, err)
	}
	return nil
}

func serverKey(u *url.URL) string {
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
