package app

import "context"

// PostService creates, edits, likes and comments on posts.
// Each call returns the server's confirmation message.
type PostService interface {
	// Create publishes a new post.
	Create(ctx context.Context, content string) (string, error)

	// Edit replaces the content of one of the user's own posts.
	Edit(ctx context.Context, postID int64, content string) (string, error)

	// ToggleLike likes the post, or unlikes it if already liked.
	ToggleLike(ctx context.Context, postID int64) (string, error)

	// Comment adds a comment under a post.
	Comment(ctx context.Context, postID int64, content string) (string, error)
}
