package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TimestampLayout is the server's post/comment timestamp format.
const TimestampLayout = "Jan 02 2006, 03:04 PM"

// Author identifies the user who wrote a post or comment.
type Author struct {
	ID       int64
	Username string
}

// Initial is the upper-cased first letter of the username, used as avatar.
func (a Author) Initial() string {
	r, _ := utf8.DecodeRuneInString(a.Username)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Comment is a single comment under a post, newest first.
type Comment struct {
	ID        int64
	Author    Author
	Content   string
	Timestamp string
}

// Post is a post as served by the feed endpoint, already scoped to the
// requesting user (liked / editable / authenticated flags).
type Post struct {
	ID              int64
	Author          Author
	Content         string
	Timestamp       string
	Likes           int
	IsLiked         bool
	CanEdit         bool
	IsAuthenticated bool
	Comments        []Comment
}

// Time parses Timestamp. Zero time if the server format is unexpected.
func (p Post) Time() time.Time {
	return parseTimestamp(p.Timestamp)
}

// Time parses Timestamp. Zero time if the server format is unexpected.
func (c Comment) Time() time.Time {
	return parseTimestamp(c.Timestamp)
}

func parseTimestamp(s string) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Page is one page of a paginated post listing.
type Page struct {
	Posts       []Post
	CurrentPage int
	NumPages    int
	HasPrevious bool
	HasNext     bool
}

// Indicator is the "{current} of {total}" pagination label.
func (p Page) Indicator() string {
	return strconv.Itoa(p.CurrentPage) + " of " + strconv.Itoa(p.NumPages)
}
