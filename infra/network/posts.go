package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/CrestNiraj12/netfeed/domain"
)

// postService implements app.PostService.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the server API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) Create(ctx context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", domain.ErrEmptyPost
	}
	var res messageResponse
	if err := s.client.Post(ctx, "/new", contentRequest{Content: content}, &res); err != nil {
		return "", fmt.Errorf("creating post: %w", err)
	}
	return res.Message, nil
}

func (s *postService) Edit(ctx context.Context, postID int64, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", domain.ErrEmptyPost
	}
	var res messageResponse
	path := fmt.Sprintf("/edit/%d", postID)
	if err := s.client.Put(ctx, path, contentRequest{Content: content}, &res); err != nil {
		return "", fmt.Errorf("editing post: %w", err)
	}
	return res.Message, nil
}

func (s *postService) ToggleLike(ctx context.Context, postID int64) (string, error) {
	var res messageResponse
	path := fmt.Sprintf("/like/%d", postID)
	if err := s.client.Post(ctx, path, nil, &res); err != nil {
		return "", fmt.Errorf("liking post: %w", err)
	}
	return res.Message, nil
}

func (s *postService) Comment(ctx context.Context, postID int64, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", domain.ErrEmptyComment
	}
	var res messageResponse
	path := fmt.Sprintf("/comment/%d", postID)
	if err := s.client.Post(ctx, path, contentRequest{Content: content}, &res); err != nil {
		return "", fmt.Errorf("commenting on post: %w", err)
	}
	return res.Message, nil
}
