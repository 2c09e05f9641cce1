package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/CrestNiraj12/netfeed/presenter"
	"github.com/CrestNiraj12/netfeed/tui/common"
)

const defaultWidth = 80

// Presentation is the view-model for the committed page.
func (m Model) Presentation() presenter.FeedPage {
	opts := presenter.Options{EditingID: m.editingID}
	if m.profile != nil {
		opts.ProfileName = m.profile.Username
	}
	fp := presenter.RenderPosts(m.page.Posts, m.state.View, opts).WithPage(m.page)
	if m.profile != nil {
		fp.Heading = m.profile.Username
	}
	return fp
}

// View renders the feed.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	fp := m.Presentation()

	var header strings.Builder
	header.WriteString(common.AppTitleStyle.Render("NetFeed"))
	header.WriteString("  ")
	header.WriteString(common.HeadingStyle.Render(common.SanitizeForTerminal(fp.Heading)))
	if m.loading {
		header.WriteString(" " + m.spinner.View())
	}
	header.WriteString("\n")
	if m.profile != nil {
		header.WriteString(renderProfileCard(presenter.RenderProfile(*m.profile)))
		header.WriteString("\n")
	}
	if fp.ShowComposer {
		header.WriteString(common.TimestampStyle.Render("  p: new post ($EDITOR) • P: new post (inline)"))
		header.WriteString("\n")
	}

	var footer strings.Builder
	if fp.ShowPagination {
		footer.WriteString(renderPagination(fp))
		footer.WriteString("\n")
	}
	if m.status != "" {
		style := common.StatusBarStyle
		if strings.HasPrefix(m.status, "Error") {
			style = common.ErrorStyle
		}
		footer.WriteString(style.Render(common.SanitizeForTerminal(m.status)))
		footer.WriteString("\n")
	}
	footer.WriteString(common.StatusBarStyle.Render(common.ClampWidth(m.keys.HelpLine(), width)))

	var body string
	switch {
	case len(fp.Posts) == 0 && m.loading:
		body = "  " + m.spinner.View() + " Loading..."
	case len(fp.Posts) == 0:
		body = "  " + fp.EmptyMessage
	default:
		cards := make([]string, len(fp.Posts))
		for i, card := range fp.Posts {
			cards[i] = m.renderCard(card, i == m.cursor, width)
		}
		avail := 0
		if m.height > 0 {
			avail = m.height - lipgloss.Height(header.String()) - lipgloss.Height(footer.String())
		}
		body = strings.Join(visibleCards(cards, m.cursor, avail), "\n")
	}

	return header.String() + "\n" + body + "\n" + footer.String()
}

// visibleCards drops cards from the top until the selected one fits in
// avail lines. avail <= 0 means unbounded.
func visibleCards(cards []string, cursor, avail int) []string {
	if avail <= 0 || cursor < 0 || cursor >= len(cards) {
		return cards
	}
	start := 0
	for start < cursor {
		h := 0
		for _, c := range cards[start : cursor+1] {
			h += lipgloss.Height(c)
		}
		if h <= avail {
			break
		}
		start++
	}
	return cards[start:]
}

func (m Model) renderCard(card presenter.PostCard, selected bool, width int) string {
	inner := max(20, width-6)
	var b strings.Builder

	author := common.AuthorStyle
	if selected && m.target == 0 {
		author = common.TargetStyle
	}
	b.WriteString(common.AvatarStyle.Render(card.Initial))
	b.WriteString(" ")
	b.WriteString(author.Render("@" + common.SanitizeForTerminal(card.Username)))
	b.WriteString(" ")
	b.WriteString(common.TimestampStyle.Render(ago(card.Time, card.Timestamp)))
	if card.ShowEdit {
		b.WriteString(common.TimestampStyle.Render("  [e] edit"))
	}
	b.WriteString("\n")

	if card.Editing {
		b.WriteString(m.editor.View())
		b.WriteString("\n")
		b.WriteString(common.TimestampStyle.Render("ctrl+d: save • esc: cancel"))
	} else {
		b.WriteString(common.ContentStyle.Width(inner).Render(common.SanitizeForTerminal(card.Content)))
	}
	b.WriteString("\n")

	glyph := card.LikeGlyph
	if card.Liked {
		glyph = common.LikedStyle.Render(glyph)
	}
	b.WriteString(glyph + " " + card.LikesLabel)
	b.WriteString("\n")

	if len(card.Comments) == 0 {
		b.WriteString(common.CommentStyle.Render(card.NoComments))
	}
	for i, c := range card.Comments {
		name := common.AuthorStyle
		if selected && m.target == i+1 {
			name = common.TargetStyle
		}
		line := "↳ " + name.Render("@"+common.SanitizeForTerminal(c.Username)) + " " +
			common.SanitizeForTerminal(c.Content) + " " +
			common.TimestampStyle.Render(ago(c.Time, c.Timestamp))
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(common.CommentStyle.Width(inner).Render(line))
	}

	if m.commentingID == card.ID {
		b.WriteString("\n")
		b.WriteString(m.comment.View())
	} else if card.ShowCommentForm && selected {
		b.WriteString("\n")
		b.WriteString(common.TimestampStyle.Render("c: comment"))
	}

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width - 2).Render(b.String())
}

func renderProfileCard(card presenter.ProfileCard) string {
	body := common.AuthorStyle.Render("@"+common.SanitizeForTerminal(card.Username)) + "\n" +
		fmt.Sprintf("%d Followers  %d Following", card.Followers, card.Following)
	if card.ShowFollow {
		body += "\n" + common.ActionActiveStyle.Render("[F] "+card.FollowLabel)
	}
	return common.ProfileCardStyle.Render(body)
}

func renderPagination(fp presenter.FeedPage) string {
	prev := common.ActionInactiveStyle.Render("◀ Previous")
	if fp.PrevEnabled {
		prev = common.ActionActiveStyle.Render("◀ Previous")
	}
	next := common.ActionInactiveStyle.Render("Next ▶")
	if fp.NextEnabled {
		next = common.ActionActiveStyle.Render("Next ▶")
	}
	return prev + " " + fp.Indicator + " " + next
}

// ago formats t relative to now, falling back to the server's text.
func ago(t time.Time, raw string) string {
	if t.IsZero() {
		return raw
	}
	return humanize.Time(t)
}
