package network

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/auth"
)

// SessionCookieName is the server's session cookie.
const SessionCookieName = "sessionid"

// sessionService implements app.SessionService with the server's HTML
// login/register forms.
type sessionService struct {
	client *Client
	store  *auth.SessionStore
}

// NewSessionService creates a SessionService. store may be nil, in which
// case nothing is persisted.
func NewSessionService(client *Client, store *auth.SessionStore) *sessionService {
	return &sessionService{client: client, store: store}
}

// Restore loads a previously saved session into the client's jar.
func (s *sessionService) Restore() error {
	if s.store == nil {
		return nil
	}
	return s.store.Load(s.client.Jar(), s.client.BaseURL())
}

func (s *sessionService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	// The login page issues the csrftoken cookie.
	if err := s.client.Page(ctx, "/login"); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}
	before := s.client.Cookie(SessionCookieName)
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	if err := s.client.PostForm(ctx, "/login", form); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if !s.newSession(before) {
		return fmt.Errorf("logging in: invalid username and/or password: %w", domain.ErrUnauthorized)
	}
	log.WithField("user", username).Info("logged in")
	return s.persist()
}

func (s *sessionService) Register(ctx context.Context, username, email, password, confirmation string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if password != confirmation {
		return fmt.Errorf("passwords must match")
	}
	if err := s.client.Page(ctx, "/register"); err != nil {
		return fmt.Errorf("opening register page: %w", err)
	}
	before := s.client.Cookie(SessionCookieName)
	form := url.Values{}
	form.Set("username", username)
	form.Set("email", strings.TrimSpace(email))
	form.Set("password", password)
	form.Set("confirmation", confirmation)
	if err := s.client.PostForm(ctx, "/register", form); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	if !s.newSession(before) {
		return fmt.Errorf("registering: username already taken or rejected")
	}
	log.WithField("user", username).Info("registered")
	return s.persist()
}

// newSession reports whether the server issued a session cookie other than
// before. A restored cookie surviving a rejected form is not a login.
func (s *sessionService) newSession(before string) bool {
	after := s.client.Cookie(SessionCookieName)
	return after != "" && after != before
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.client.Page(ctx, "/logout"); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}

func (s *sessionService) persist() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.client.Jar(), s.client.BaseURL()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
