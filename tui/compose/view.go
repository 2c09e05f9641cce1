package compose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CrestNiraj12/netfeed/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("NetFeed"))
		b.WriteString("  " + common.HeadingStyle.Render("New Post") + "\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: post • esc: cancel • %d/%d chars",
				utf8.RuneCountInString(m.textarea.Value()), CharLimit),
		))
		return b.String()
	}

	return ""
}
