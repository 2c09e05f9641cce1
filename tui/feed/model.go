package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/netfeed/app"
	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/tui/common"
)

// --- Messages ---

// PostsLoadedMsg is sent when a page fetch completes successfully.
type PostsLoadedMsg struct {
	ReqSeq int
	View   domain.View
	Page   domain.Page
}

// PostsErrorMsg is sent when a page fetch fails.
type PostsErrorMsg struct {
	ReqSeq int
	View   domain.View
	Page   int
	Err    error
}

// ProfileLoadedMsg is sent when a profile summary arrives.
type ProfileLoadedMsg struct {
	ReqSeq  int
	UserID  int64
	Page    int // Posts page to load next.
	Profile domain.Profile
}

// ProfileErrorMsg is sent when a profile fetch fails.
type ProfileErrorMsg struct {
	ReqSeq int
	UserID int64
	Err    error
}

// FollowResultMsg is sent after a follow/unfollow attempt.
type FollowResultMsg struct {
	UserID  int64
	Message string
	Err     error
}

// LikeResultMsg is sent after a like/unlike attempt.
type LikeResultMsg struct {
	PostID  int64
	Message string
	Err     error
}

// EditResultMsg is sent after an edit attempt.
type EditResultMsg struct {
	PostID  int64
	Message string
	Err     error
}

// CommentResultMsg is sent after a comment attempt.
type CommentResultMsg struct {
	PostID  int64
	Message string
	Err     error
}

// NewPostResultMsg is sent after a new post was submitted.
type NewPostResultMsg struct {
	Message string
	Err     error
}

// ComposeRequestMsg asks the root model to open the composer.
type ComposeRequestMsg struct {
	UseEditor bool
}

// --- Model ---

// Model is the feed controller. state is the last successfully loaded
// (view, page); everything on screen was rendered from it.
type Model struct {
	feed     app.FeedService
	posts    app.PostService
	profiles app.ProfileService

	state     domain.ViewState
	initial   domain.ViewState
	statePath string
	reqSeq    int
	page      domain.Page
	profile   *domain.Profile

	pending   *domain.Profile // fetched, waiting for its posts
	restoring bool            // saved initial view not loaded or failed yet

	cursor int
	target int // 0: post author, n: author of comment n-1

	editingID    int64
	editor       textarea.Model
	commentingID int64
	comment      textinput.Model

	loading bool
	err     error
	status  string
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a feed model with injected dependencies. initial is the
// (view, page) requested on Init.
func New(feed app.FeedService, posts app.PostService, profiles app.ProfileService, initial domain.ViewState) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	if !initial.Valid() {
		initial = domain.InitialViewState()
	}

	// Edits must round-trip whatever the server stored, so no limits here.
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(72)
	ta.SetHeight(4)

	ti := textinput.New()
	ti.Placeholder = "Write a comment..."
	ti.CharLimit = 500

	return Model{
		feed:      feed,
		posts:     posts,
		profiles:  profiles,
		state:     domain.InitialViewState(),
		initial:   initial,
		keys:      common.DefaultKeyMap(),
		spinner:   s,
		loading:   true,
		restoring: initial != domain.InitialViewState(),
		editor:    ta,
		comment:   ti,
	}
}

// WithStatePath makes the model persist each committed view state to path.
func (m Model) WithStatePath(path string) Model {
	m.statePath = path
	return m
}

// Init starts the initial fetch. Nothing else is in flight yet, so it
// uses the current request token instead of issuing a new one.
func (m Model) Init() tea.Cmd {
	if id, ok := m.initial.View.ProfileID(); ok {
		return tea.Batch(m.fetchProfile(m.reqSeq, id, m.initial.Page), m.spinner.Tick)
	}
	return tea.Batch(m.fetchPosts(m.reqSeq, m.initial.View, m.initial.Page), m.spinner.Tick)
}

// State returns the committed view state.
func (m Model) State() domain.ViewState {
	return m.state
}

// Page returns the last loaded page.
func (m Model) Page() domain.Page {
	return m.page
}

// Profile returns the profile on display, if any.
func (m Model) Profile() (domain.Profile, bool) {
	if m.profile == nil {
		return domain.Profile{}, false
	}
	return *m.profile, true
}

// Loading returns whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last load error, if any.
func (m Model) Err() error {
	return m.err
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// EditingID returns the post whose edit form is open (0 for none).
func (m Model) EditingID() int64 {
	return m.editingID
}

// Typing reports whether a text input owns the keyboard.
func (m Model) Typing() bool {
	return m.editingID != 0 || m.commentingID != 0
}

// SelectedPost returns the currently highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.page.Posts) {
		return domain.Post{}, false
	}
	return m.page.Posts[m.cursor], true
}

func (m Model) findPost(id int64) (domain.Post, bool) {
	for _, p := range m.page.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// targetAuthor is the user "view profile" opens for the selected post.
func (m Model) targetAuthor() (domain.Author, bool) {
	p, ok := m.SelectedPost()
	if !ok {
		return domain.Author{}, false
	}
	if m.target > 0 && m.target <= len(p.Comments) {
		return p.Comments[m.target-1].Author, true
	}
	return p.Author, true
}
