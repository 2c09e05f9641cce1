package domain

import (
	"strconv"
	"strings"
)

// View is the feed scope being displayed: every post, posts by followed
// users, or the posts of a single profile (its decimal user id).
type View string

const (
	ViewAll       View = "all"
	ViewFollowing View = "following"
)

// ProfileView returns the view scoped to one user's posts.
func ProfileView(userID int64) View {
	return View(strconv.FormatInt(userID, 10))
}

// ParseView validates a raw view value.
func ParseView(s string) (View, error) {
	s = strings.TrimSpace(s)
	switch View(s) {
	case ViewAll, ViewFollowing:
		return View(s), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return "", ErrInvalidView
	}
	return ProfileView(id), nil
}

// IsFeed reports whether v is one of the two non-profile feeds.
func (v View) IsFeed() bool {
	return v == ViewAll || v == ViewFollowing
}

// ProfileID returns the user id of a profile view.
func (v View) ProfileID() (int64, bool) {
	if v.IsFeed() {
		return 0, false
	}
	id, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// ViewState is the committed (view, page) pair of the feed client.
// It only ever holds the last successfully loaded page.
type ViewState struct {
	View View
	Page int
}

// InitialViewState is the state the client starts in.
func InitialViewState() ViewState {
	return ViewState{View: ViewAll, Page: 1}
}

// Next is the request target one page forward in the same view.
func (s ViewState) Next() ViewState {
	return ViewState{View: s.View, Page: s.Page + 1}
}

// Prev is the request target one page back in the same view, never below 1.
func (s ViewState) Prev() ViewState {
	p := s.Page - 1
	if p < 1 {
		p = 1
	}
	return ViewState{View: s.View, Page: p}
}

// Valid reports whether the state can be requested.
func (s ViewState) Valid() bool {
	if s.Page < 1 {
		return false
	}
	_, err := ParseView(string(s.View))
	return err == nil
}
