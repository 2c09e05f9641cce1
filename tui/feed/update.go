package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/logging"
)

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(max(20, msg.Width-8))
		m.comment.Width = max(20, msg.Width-12)
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg, PostsErrorMsg, ProfileLoadedMsg, ProfileErrorMsg:
		return m.handleLoadMsg(msg)

	case FollowResultMsg, LikeResultMsg, EditResultMsg, CommentResultMsg, NewPostResultMsg:
		return m.handleResultMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and friends for whichever input is open.
	switch {
	case m.editingID != 0:
		m.editor, cmd = m.editor.Update(msg)
	case m.commentingID != 0:
		m.comment, cmd = m.comment.Update(msg)
	}
	return m, cmd
}

func (m Model) handleLoadMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		next := domain.ViewState{View: msg.View, Page: msg.Page.CurrentPage}
		if next != m.state {
			m.cursor = 0
			m.target = 0
			m.closeEdit()
			m.closeComment()
		}
		m.commitProfile(msg.View)
		m.state = next
		m.page = msg.Page
		m.loading = false
		m.restoring = false
		m.err = nil
		if m.cursor >= len(m.page.Posts) {
			m.cursor = 0
			m.target = 0
		}
		return m, persistState(m.statePath, m.state)

	case PostsErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.pending = nil
		return m.loadFailed("load posts", msg.Err)

	case ProfileLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		p := msg.Profile
		if p.ID == 0 {
			p.ID = msg.UserID
		}
		m.pending = &p
		restoring := m.restoring
		var cmd tea.Cmd
		m, cmd = m.loadPosts(domain.ProfileView(msg.UserID), msg.Page)
		m.restoring = restoring
		return m, cmd

	case ProfileErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.pending = nil
		return m.loadFailed("view profile", msg.Err)
	}
	return m, nil
}

// loadFailed reports a failed load for the latest request. A saved view
// that no longer loads falls back to the first page of all posts once.
func (m Model) loadFailed(op string, err error) (Model, tea.Cmd) {
	m.loading = false
	m.err = err
	m.status = "Error: " + domain.ErrorText(err)
	logging.Failure(op, err)
	if m.restoring {
		log.WithField("view", m.initial.View).Warn("saved view unavailable, showing all posts")
		return m.loadPosts(domain.ViewAll, 1)
	}
	return m, nil
}

// commitProfile swaps in the profile card that belongs to view. The card
// only changes together with the posts under it.
func (m *Model) commitProfile(view domain.View) {
	pending := m.pending
	m.pending = nil
	id, ok := view.ProfileID()
	switch {
	case !ok:
		m.profile = nil
	case pending != nil && pending.ID == id:
		m.profile = pending
	case m.profile != nil && m.profile.ID != id:
		m.profile = nil
	}
}

func (m Model) handleResultMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FollowResultMsg:
		if msg.Err != nil {
			m.status = "Error: " + domain.ErrorText(msg.Err)
			logging.Failure("toggle follow", msg.Err)
			return m, nil
		}
		m.status = msg.Message
		return m.viewProfile(msg.UserID, 1)

	case LikeResultMsg:
		if msg.Err != nil {
			m.status = "Error: " + domain.ErrorText(msg.Err)
			logging.Failure("toggle like", msg.Err)
			return m, nil
		}
		m.status = ""
		return m.reload()

	case EditResultMsg:
		m.closeEdit()
		if msg.Err != nil {
			m.status = "Error: " + domain.ErrorText(msg.Err)
			logging.Failure("edit post", msg.Err)
		} else {
			m.status = msg.Message
		}
		return m.reload()

	case CommentResultMsg:
		m.closeComment()
		if msg.Err != nil {
			m.status = "Error: " + domain.ErrorText(msg.Err)
			logging.Failure("comment", msg.Err)
		} else {
			m.status = msg.Message
		}
		return m.reload()

	case NewPostResultMsg:
		if msg.Err != nil {
			m.status = "Error: " + domain.ErrorText(msg.Err)
			logging.Failure("new post", msg.Err)
			return m, nil
		}
		m.status = msg.Message
		return m.loadPosts(domain.ViewAll, 1)
	}
	return m, nil
}
