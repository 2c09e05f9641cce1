package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/tui/compose"
	"github.com/CrestNiraj12/netfeed/tui/feed"
)

type stubFeed struct{ calls *[]domain.ViewState }

func (s stubFeed) Posts(_ context.Context, view domain.View, page int) (domain.Page, error) {
	*s.calls = append(*s.calls, domain.ViewState{View: view, Page: page})
	return domain.Page{CurrentPage: page, NumPages: 1}, nil
}

type stubPosts struct{ created *string }

func (s stubPosts) Create(_ context.Context, content string) (string, error) {
	*s.created = content
	return "Post created successfully.", nil
}
func (stubPosts) Edit(context.Context, int64, string) (string, error) { return "", nil }
func (stubPosts) ToggleLike(context.Context, int64) (string, error)   { return "", nil }
func (stubPosts) Comment(context.Context, int64, string) (string, error) {
	return "", nil
}

type stubProfiles struct{}

func (stubProfiles) Profile(context.Context, int64) (domain.Profile, error) {
	return domain.Profile{}, nil
}
func (stubProfiles) ToggleFollow(context.Context, int64) (string, error) { return "", nil }

func TestApp_ComposeRoundTrip(t *testing.T) {
	var calls []domain.ViewState
	var created string
	a := NewApp(Deps{
		Feed:     stubFeed{calls: &calls},
		Posts:    stubPosts{created: &created},
		Profiles: stubProfiles{},
		Initial:  domain.InitialViewState(),
	})

	model, _ := a.Update(feed.ComposeRequestMsg{})
	a = model.(App)
	if a.active != composeView {
		t.Fatalf("expected composer to open")
	}

	// q while composing is text, not quit.
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	a = model.(App)
	if a.active != composeView {
		t.Fatalf("q must not leave the composer")
	}

	model, cmd := a.Update(compose.DoneMsg{Content: "hello"})
	a = model.(App)
	if a.active != feedView {
		t.Fatalf("expected feed view after compose")
	}
	model, cmd = a.Update(cmd())
	a = model.(App)
	if created != "hello" {
		t.Fatalf("expected post created, got %q", created)
	}
	cmd()
	if len(calls) != 1 || calls[0] != domain.InitialViewState() {
		t.Fatalf("expected reload of (all, 1), got %#v", calls)
	}
}

func TestApp_QuitFromFeed(t *testing.T) {
	var calls []domain.ViewState
	a := NewApp(Deps{Feed: stubFeed{calls: &calls}, Posts: stubPosts{}, Profiles: stubProfiles{}})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
