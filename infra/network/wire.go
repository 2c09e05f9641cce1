package network

import "github.com/CrestNiraj12/netfeed/domain"

// Wire shapes of the server's JSON responses.

type wireAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type wireComment struct {
	ID        int64      `json:"id"`
	Author    wireAuthor `json:"author"`
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"`
}

type wirePost struct {
	ID              int64         `json:"id"`
	Author          wireAuthor    `json:"author"`
	Content         string        `json:"content"`
	Timestamp       string        `json:"timestamp"`
	Likes           int           `json:"likes"`
	IsLiked         bool          `json:"is_liked"`
	CanEdit         bool          `json:"can_edit"`
	IsAuthenticated bool          `json:"is_authenticated"`
	Comments        []wireComment `json:"comments"`
}

type wirePage struct {
	Posts       []wirePost `json:"posts"`
	CurrentPage int        `json:"current_page"`
	NumPages    int        `json:"num_pages"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
}

type wireProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	IsFollowing *bool  `json:"is_following"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type contentRequest struct {
	Content string `json:"content"`
}

func (a wireAuthor) toDomain() domain.Author {
	return domain.Author{ID: a.ID, Username: a.Username}
}

func mapPost(p wirePost) domain.Post {
	comments := make([]domain.Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, domain.Comment{
			ID:        c.ID,
			Author:    c.Author.toDomain(),
			Content:   c.Content,
			Timestamp: c.Timestamp,
		})
	}
	return domain.Post{
		ID:              p.ID,
		Author:          p.Author.toDomain(),
		Content:         p.Content,
		Timestamp:       p.Timestamp,
		Likes:           max(p.Likes, 0),
		IsLiked:         p.IsLiked,
		CanEdit:         p.CanEdit,
		IsAuthenticated: p.IsAuthenticated,
		Comments:        comments,
	}
}

func mapPage(w wirePage) domain.Page {
	posts := make([]domain.Post, 0, len(w.Posts))
	for _, p := range w.Posts {
		posts = append(posts, mapPost(p))
	}
	return domain.Page{
		Posts:       posts,
		CurrentPage: max(w.CurrentPage, 1),
		NumPages:    max(w.NumPages, 1),
		HasPrevious: w.HasPrevious,
		HasNext:     w.HasNext,
	}
}

func mapProfile(w wireProfile) domain.Profile {
	return domain.Profile{
		ID:          w.ID,
		Username:    w.Username,
		Followers:   max(w.Followers, 0),
		Following:   max(w.Following, 0),
		IsFollowing: w.IsFollowing,
	}
}
