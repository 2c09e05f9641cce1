package compose

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestInline_SubmitAndCancel(t *testing.T) {
	m := NewInline()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  hi there ")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	msg, ok := cmd().(DoneMsg)
	if !ok || msg.Content != "hi there" || msg.Err != nil {
		t.Fatalf("unexpected submit result: %#v", msg)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if msg := cmd().(DoneMsg); msg.Content != "" {
		t.Fatalf("esc must cancel, got %#v", msg)
	}
}

func TestInline_ViewShowsCounter(t *testing.T) {
	m := NewInline()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("héllo")})
	if out := m.View(); !strings.Contains(out, "5/280 chars") {
		t.Fatalf("expected rune counter in view:\n%s", out)
	}
}
