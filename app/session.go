package app

import "context"

// SessionService manages the authenticated session cookie.
type SessionService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, username, email, password, confirmation string) error
}

// Composer captures post content from the user outside the TUI.
// Implemented by infra/editor spawning $EDITOR.
type Composer interface {
	Compose(ctx context.Context, initial string) (string, error)
}
