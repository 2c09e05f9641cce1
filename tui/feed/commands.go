package feed

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/config"
	"github.com/CrestNiraj12/netfeed/infra/logging"
)

// loadPosts requests (view, page). Only the response to the latest request
// is applied; the committed state changes when it arrives.
func (m Model) loadPosts(view domain.View, page int) (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.restoring = false
	return m, m.fetchPosts(m.reqSeq, view, page)
}

func (m Model) fetchPosts(reqSeq int, view domain.View, page int) tea.Cmd {
	feed := m.feed
	return func() tea.Msg {
		p, err := feed.Posts(context.Background(), view, page)
		if err != nil {
			return PostsErrorMsg{ReqSeq: reqSeq, View: view, Page: page, Err: err}
		}
		return PostsLoadedMsg{ReqSeq: reqSeq, View: view, Page: p}
	}
}

// reload re-requests the committed (view, page).
func (m Model) reload() (Model, tea.Cmd) {
	return m.loadPosts(m.state.View, m.state.Page)
}

// viewProfile fetches the profile card, then that user's posts at page.
func (m Model) viewProfile(userID int64, page int) (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.restoring = false
	return m, m.fetchProfile(m.reqSeq, userID, page)
}

func (m Model) fetchProfile(reqSeq int, userID int64, page int) tea.Cmd {
	profiles := m.profiles
	return func() tea.Msg {
		p, err := profiles.Profile(context.Background(), userID)
		if err != nil {
			return ProfileErrorMsg{ReqSeq: reqSeq, UserID: userID, Err: err}
		}
		return ProfileLoadedMsg{ReqSeq: reqSeq, UserID: userID, Page: page, Profile: p}
	}
}

func (m Model) toggleFollow(userID int64) tea.Cmd {
	profiles := m.profiles
	return func() tea.Msg {
		msg, err := profiles.ToggleFollow(context.Background(), userID)
		return FollowResultMsg{UserID: userID, Message: msg, Err: err}
	}
}

func (m Model) toggleLike(postID int64) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		msg, err := posts.ToggleLike(context.Background(), postID)
		return LikeResultMsg{PostID: postID, Message: msg, Err: err}
	}
}

// startEdit opens the inline edit form for postID, prefilled with its
// content. Only one post is edited at a time.
func (m Model) startEdit(postID int64) (Model, tea.Cmd) {
	p, ok := m.findPost(postID)
	if !ok || !p.CanEdit {
		return m, nil
	}
	m.closeComment()
	m.editingID = postID
	m.editor.SetValue(p.Content)
	if m.width > 0 {
		m.editor.SetWidth(max(20, m.width-8))
	}
	cmd := m.editor.Focus()
	return m, cmd
}

func (m Model) submitEdit(postID int64, content string) (Model, tea.Cmd) {
	m.status = "Saving..."
	posts := m.posts
	return m, func() tea.Msg {
		msg, err := posts.Edit(context.Background(), postID, content)
		return EditResultMsg{PostID: postID, Message: msg, Err: err}
	}
}

func (m *Model) closeEdit() {
	m.editingID = 0
	m.editor.Blur()
	m.editor.Reset()
}

func (m Model) startComment(postID int64) (Model, tea.Cmd) {
	p, ok := m.findPost(postID)
	if !ok || !p.IsAuthenticated {
		return m, nil
	}
	m.closeEdit()
	m.commentingID = postID
	m.comment.SetValue("")
	cmd := m.comment.Focus()
	return m, cmd
}

func (m Model) submitComment(postID int64, content string) (Model, tea.Cmd) {
	m.status = "Commenting..."
	posts := m.posts
	return m, func() tea.Msg {
		msg, err := posts.Comment(context.Background(), postID, content)
		return CommentResultMsg{PostID: postID, Message: msg, Err: err}
	}
}

func (m *Model) closeComment() {
	m.commentingID = 0
	m.comment.Blur()
	m.comment.Reset()
}

// SubmitNewPost sends content as a new post. The caller has already
// cleared its composer; on success the first page of "all" is loaded.
func (m Model) SubmitNewPost(content string) (Model, tea.Cmd) {
	if strings.TrimSpace(content) == "" {
		m.status = "Cancelled."
		return m, nil
	}
	m.status = "Posting..."
	posts := m.posts
	return m, func() tea.Msg {
		msg, err := posts.Create(context.Background(), content)
		return NewPostResultMsg{Message: msg, Err: err}
	}
}

func persistState(path string, vs domain.ViewState) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		if err := config.SaveUIState(path, config.FromViewState(vs)); err != nil {
			logging.Failure("save ui state", err)
		}
		return nil
	}
}
