package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/netfeed/app"
	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/editor"
	"github.com/CrestNiraj12/netfeed/tui/common"
	"github.com/CrestNiraj12/netfeed/tui/compose"
	"github.com/CrestNiraj12/netfeed/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed      app.FeedService
	Posts     app.PostService
	Profiles  app.ProfileService
	Editor    *editor.EnvEditor
	Initial   domain.ViewState
	StatePath string
}

type activeView int

const (
	feedView activeView = iota
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	feed    feed.Model
	compose compose.Model
	keys    common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed:   feed.New(deps.Feed, deps.Posts, deps.Profiles, deps.Initial).WithStatePath(deps.StatePath),
		keys:   common.DefaultKeyMap(),
	}
}

// Init delegates to the feed.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.active == feedView && !a.feed.Typing() && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case feed.ComposeRequestMsg:
		a.active = composeView
		if msg.UseEditor {
			a.compose = compose.NewEditor(a.deps.Editor)
		} else {
			a.compose = compose.NewInline()
		}
		return a, a.compose.Init()

	case compose.DoneMsg:
		// The composer is dropped here, which clears it before the post is sent.
		a.active = feedView
		a.compose = compose.Model{}
		if msg.Err != nil {
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Update(feed.NewPostResultMsg{Err: msg.Err})
			return a, cmd
		}
		var cmd tea.Cmd
		a.feed, cmd = a.feed.SubmitNewPost(msg.Content)
		return a, cmd
	}

	// Feed results and spinner ticks must reach the feed even while composing.
	if a.active == composeView {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			a.compose, cmd = a.compose.Update(msg)
			return a, cmd
		}
		var c1, c2 tea.Cmd
		a.compose, c1 = a.compose.Update(msg)
		a.feed, c2 = a.feed.Update(msg)
		return a, tea.Batch(c1, c2)
	}

	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	return a, cmd
}

// View renders the active sub-model.
func (a App) View() string {
	if a.active == composeView {
		return a.compose.View()
	}
	return a.feed.View()
}
