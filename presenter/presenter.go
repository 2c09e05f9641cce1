// Package presenter turns server data into typed view-models. Both the
// terminal UI and the HTML renderer draw from these, so every display rule
// (what is visible, which label, which glyph) lives here and nowhere else.
package presenter

import (
	"strconv"
	"time"

	"github.com/CrestNiraj12/netfeed/domain"
)

const (
	HeadingAll        = "All Posts"
	HeadingFollowing  = "Following"
	EmptyFeedMessage  = "No posts to see here🔎"
	NoCommentsMessage = "No comments yet"

	LikedGlyph   = "♥"
	UnlikedGlyph = "♡"
)

// FeedPage is everything needed to draw one feed screen.
type FeedPage struct {
	View           domain.View
	Heading        string
	ShowComposer   bool
	Posts          []PostCard
	EmptyMessage   string // Set only when Posts is empty.
	ShowPagination bool
	PrevEnabled    bool
	NextEnabled    bool
	Indicator      string
}

// PostCard is one rendered post.
type PostCard struct {
	ID              int64
	AuthorID        int64
	Username        string
	Initial         string
	ShowEdit        bool
	Editing         bool
	Content         string
	Timestamp       string
	Time            time.Time
	Liked           bool
	LikeGlyph       string
	Likes           int
	LikesLabel      string
	Comments        []CommentLine
	NoComments      string
	ShowCommentForm bool
}

// CommentLine is one rendered comment.
type CommentLine struct {
	AuthorID  int64
	Username  string
	Content   string
	Timestamp string
	Time      time.Time
}

// ProfileCard is the profile summary shown above a profile's posts.
type ProfileCard struct {
	UserID      int64
	Username    string
	Followers   int
	Following   int
	ShowFollow  bool
	IsFollowing bool
	FollowLabel string
}

// Options tune RenderPosts.
type Options struct {
	// ProfileName is the heading used for profile views.
	ProfileName string
	// EditingID is the post whose inline edit form is open (0 for none).
	EditingID int64
}

// Heading returns the page heading for a view.
func Heading(view domain.View, profileName string) string {
	switch view {
	case domain.ViewAll:
		return HeadingAll
	case domain.ViewFollowing:
		return HeadingFollowing
	}
	if profileName != "" {
		return profileName
	}
	return "Profile " + string(view)
}

// RenderPosts builds the post list for view. The composer is only offered on
// the "all" view; pagination is shown only when there is something to page.
func RenderPosts(posts []domain.Post, view domain.View, opts Options) FeedPage {
	fp := FeedPage{
		View:         view,
		Heading:      Heading(view, opts.ProfileName),
		ShowComposer: view == domain.ViewAll,
		Posts:        make([]PostCard, 0, len(posts)),
	}
	for _, p := range posts {
		fp.Posts = append(fp.Posts, renderPost(p, opts.EditingID == p.ID))
	}
	if len(fp.Posts) == 0 {
		fp.EmptyMessage = EmptyFeedMessage
	}
	fp.ShowPagination = len(fp.Posts) > 0
	return fp
}

// WithPage applies the envelope's pagination flags.
func (fp FeedPage) WithPage(page domain.Page) FeedPage {
	fp.PrevEnabled = page.HasPrevious
	fp.NextEnabled = page.HasNext
	fp.Indicator = page.Indicator()
	return fp
}

func renderPost(p domain.Post, editing bool) PostCard {
	card := PostCard{
		ID:              p.ID,
		AuthorID:        p.Author.ID,
		Username:        p.Author.Username,
		Initial:         p.Author.Initial(),
		ShowEdit:        p.CanEdit && !editing,
		Editing:         p.CanEdit && editing,
		Content:         p.Content,
		Timestamp:       p.Timestamp,
		Time:            p.Time(),
		Liked:           p.IsLiked,
		LikeGlyph:       UnlikedGlyph,
		Likes:           p.Likes,
		LikesLabel:      strconv.Itoa(p.Likes) + " Likes",
		ShowCommentForm: p.IsAuthenticated,
	}
	if p.IsLiked {
		card.LikeGlyph = LikedGlyph
	}
	for _, c := range p.Comments {
		card.Comments = append(card.Comments, CommentLine{
			AuthorID:  c.Author.ID,
			Username:  c.Author.Username,
			Content:   c.Content,
			Timestamp: c.Timestamp,
			Time:      c.Time(),
		})
	}
	if len(card.Comments) == 0 {
		card.NoComments = NoCommentsMessage
	}
	return card
}

// RenderProfile builds the profile card. The follow control is omitted
// when the server reports no follow relation (own profile, anonymous).
func RenderProfile(p domain.Profile) ProfileCard {
	card := ProfileCard{
		UserID:      p.ID,
		Username:    p.Username,
		Followers:   p.Followers,
		Following:   p.Following,
		ShowFollow:  p.CanFollow(),
		IsFollowing: p.Followed(),
	}
	if card.ShowFollow {
		card.FollowLabel = "Follow"
		if card.IsFollowing {
			card.FollowLabel = "Unfollow"
		}
	}
	return card
}
