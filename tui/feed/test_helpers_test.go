package feed

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/netfeed/domain"
)

type feedCall struct {
	View domain.View
	Page int
}

type stubFeed struct {
	calls *[]feedCall
	page  domain.Page
	err   error
}

func (s stubFeed) Posts(_ context.Context, view domain.View, page int) (domain.Page, error) {
	if s.calls != nil {
		*s.calls = append(*s.calls, feedCall{View: view, Page: page})
	}
	if s.err != nil {
		return domain.Page{}, s.err
	}
	p := s.page
	p.CurrentPage = page
	return p, nil
}

type stubPosts struct {
	err error
}

func (s stubPosts) Create(context.Context, string) (string, error) {
	return "Post created successfully.", s.err
}
func (s stubPosts) Edit(context.Context, int64, string) (string, error) {
	return "Post edited successfully.", s.err
}
func (s stubPosts) ToggleLike(context.Context, int64) (string, error) {
	return "Post liked successfully.", s.err
}
func (s stubPosts) Comment(context.Context, int64, string) (string, error) {
	return "Comment added successfully.", s.err
}

type stubProfiles struct {
	profile domain.Profile
	err     error
}

func (s stubProfiles) Profile(_ context.Context, id int64) (domain.Profile, error) {
	if s.err != nil {
		return domain.Profile{}, s.err
	}
	p := s.profile
	p.ID = id
	return p, nil
}
func (s stubProfiles) ToggleFollow(context.Context, int64) (string, error) {
	return "Followed.", s.err
}

var errBoom = errors.New("boom")

func makePost(id int64, authorID int64) domain.Post {
	return domain.Post{
		ID:              id,
		Author:          domain.Author{ID: authorID, Username: "user"},
		Content:         "hello",
		Timestamp:       "Mar 04 2025, 01:30 PM",
		CanEdit:         true,
		IsAuthenticated: true,
	}
}

func newTestModel(feed stubFeed) Model {
	return New(feed, stubPosts{}, stubProfiles{}, domain.InitialViewState())
}

// loaded returns a model with page committed for state.
func loaded(m Model, state domain.ViewState, page domain.Page) Model {
	page.CurrentPage = state.Page
	m, _ = m.Update(PostsLoadedMsg{ReqSeq: m.reqSeq, View: state.View, Page: page})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back, as the Bubble Tea loop would.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Msg) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd()
	m, _ = m.Update(msg)
	return m, msg
}
