package common

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a semantic command triggered from the feed, independent of the
// key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionViewProfile
	ActionFollow
	ActionLike
	ActionEdit
	ActionComment
	ActionNext
	ActionPrev
	ActionAll
	ActionFollowing
	ActionCompose
	ActionComposeEditor
	ActionRefresh
)

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	Target        key.Binding // tab — cycle username target inside a post
	ViewProfile   key.Binding
	Follow        key.Binding
	Like          key.Binding
	Edit          key.Binding
	Comment       key.Binding
	Next          key.Binding
	Prev          key.Binding
	All           key.Binding
	Following     key.Binding
	Compose       key.Binding // P — inline composer
	ComposeEditor key.Binding // p — compose via $EDITOR
	Refresh       key.Binding
	Submit        key.Binding // ctrl+d — submit edit/comment/post
	Cancel        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Target: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "pick user"),
		),
		ViewProfile: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "profile"),
		),
		Follow: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "follow/unfollow"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev page"),
		),
		All: key.NewBinding(
			key.WithKeys("a", "1"),
			key.WithHelp("a", "all posts"),
		),
		Following: key.NewBinding(
			key.WithKeys("f", "2"),
			key.WithHelp("f", "following"),
		),
		Compose: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "post (inline)"),
		),
		ComposeEditor: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "post ($EDITOR)"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Action resolves a key press to its semantic action.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	for _, b := range []struct {
		binding key.Binding
		action  Action
	}{
		{k.ViewProfile, ActionViewProfile},
		{k.Follow, ActionFollow},
		{k.Like, ActionLike},
		{k.Edit, ActionEdit},
		{k.Comment, ActionComment},
		{k.Next, ActionNext},
		{k.Prev, ActionPrev},
		{k.All, ActionAll},
		{k.Following, ActionFollowing},
		{k.Compose, ActionCompose},
		{k.ComposeEditor, ActionComposeEditor},
		{k.Refresh, ActionRefresh},
	} {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return ActionNone
}

// HelpLine is the short key legend shown under the feed.
func (k KeyMap) HelpLine() string {
	bindings := []key.Binding{
		k.Up, k.Down, k.Target, k.ViewProfile, k.Like, k.Comment, k.Edit,
		k.Follow, k.Prev, k.Next, k.All, k.Following, k.ComposeEditor, k.Refresh, k.Quit,
	}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
