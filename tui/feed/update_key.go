package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/tui/common"
)

type actionHandler func(Model) (Model, tea.Cmd)

// actionHandlers resolves semantic actions. Key bindings only pick the
// action; what it does lives here.
var actionHandlers = map[common.Action]actionHandler{
	common.ActionViewProfile:   Model.onViewProfile,
	common.ActionFollow:        Model.onFollow,
	common.ActionLike:          Model.onLike,
	common.ActionEdit:          Model.onEdit,
	common.ActionComment:       Model.onComment,
	common.ActionNext:          Model.onNext,
	common.ActionPrev:          Model.onPrev,
	common.ActionAll:           Model.onAll,
	common.ActionFollowing:     Model.onFollowing,
	common.ActionCompose:       Model.onCompose,
	common.ActionComposeEditor: Model.onComposeEditor,
	common.ActionRefresh:       Model.onRefresh,
}

// Dispatch runs the handler for a.
func (m Model) Dispatch(a common.Action) (Model, tea.Cmd) {
	h, ok := actionHandlers[a]
	if !ok {
		return m, nil
	}
	return h(m)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.editingID != 0 {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submitEdit(m.editingID, m.editor.Value())
		case key.Matches(msg, m.keys.Cancel):
			m.closeEdit()
			return m, nil
		}
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	if m.commentingID != 0 {
		switch {
		case key.Matches(msg, m.keys.Submit), msg.Type == tea.KeyEnter:
			return m.submitComment(m.commentingID, m.comment.Value())
		case key.Matches(msg, m.keys.Cancel):
			m.closeComment()
			return m, nil
		}
		m.comment, cmd = m.comment.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.target = 0
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.page.Posts)-1 {
			m.cursor++
			m.target = 0
		}
		return m, nil
	case key.Matches(msg, m.keys.Target):
		if p, ok := m.SelectedPost(); ok {
			m.target = (m.target + 1) % (len(p.Comments) + 1)
		}
		return m, nil
	}

	return m.Dispatch(m.keys.Action(msg))
}

func (m Model) onViewProfile() (Model, tea.Cmd) {
	a, ok := m.targetAuthor()
	if !ok || a.ID == 0 {
		return m, nil
	}
	return m.viewProfile(a.ID, 1)
}

func (m Model) onFollow() (Model, tea.Cmd) {
	if m.profile == nil || !m.profile.CanFollow() {
		return m, nil
	}
	m.status = ""
	return m, m.toggleFollow(m.profile.ID)
}

func (m Model) onLike() (Model, tea.Cmd) {
	p, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	return m, m.toggleLike(p.ID)
}

func (m Model) onEdit() (Model, tea.Cmd) {
	p, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	return m.startEdit(p.ID)
}

func (m Model) onComment() (Model, tea.Cmd) {
	p, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	return m.startComment(p.ID)
}

// onNext and onPrev are no-ops while the matching control is disabled.
// Pagination is hidden entirely for an empty page.
func (m Model) onNext() (Model, tea.Cmd) {
	if len(m.page.Posts) == 0 || !m.page.HasNext {
		return m, nil
	}
	next := m.state.Next()
	return m.loadPosts(next.View, next.Page)
}

func (m Model) onPrev() (Model, tea.Cmd) {
	if len(m.page.Posts) == 0 || !m.page.HasPrevious {
		return m, nil
	}
	prev := m.state.Prev()
	return m.loadPosts(prev.View, prev.Page)
}

func (m Model) onAll() (Model, tea.Cmd) {
	return m.loadPosts(domain.ViewAll, 1)
}

func (m Model) onFollowing() (Model, tea.Cmd) {
	return m.loadPosts(domain.ViewFollowing, 1)
}

func (m Model) onCompose() (Model, tea.Cmd) {
	return m.requestCompose(false)
}

func (m Model) onComposeEditor() (Model, tea.Cmd) {
	return m.requestCompose(true)
}

// The composer only exists on the "all" view.
func (m Model) requestCompose(useEditor bool) (Model, tea.Cmd) {
	if m.state.View != domain.ViewAll {
		m.status = "Switch to All Posts (a) to write a post."
		return m, nil
	}
	m.status = ""
	return m, func() tea.Msg { return ComposeRequestMsg{UseEditor: useEditor} }
}

func (m Model) onRefresh() (Model, tea.Cmd) {
	if id, ok := m.state.View.ProfileID(); ok {
		return m.viewProfile(id, m.state.Page)
	}
	return m.reload()
}
