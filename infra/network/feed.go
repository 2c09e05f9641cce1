package network

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CrestNiraj12/netfeed/domain"
)

// feedService implements app.FeedService.
type feedService struct {
	client *Client
}

// NewFeedService creates a FeedService backed by the server API.
func NewFeedService(client *Client) *feedService {
	return &feedService{client: client}
}

func (s *feedService) Posts(ctx context.Context, view domain.View, page int) (domain.Page, error) {
	view, err := domain.ParseView(string(view))
	if err != nil {
		return domain.Page{}, err
	}
	if page < 1 {
		return domain.Page{}, domain.ErrInvalidPage
	}

	path := fmt.Sprintf("/posts/%s/?page=%d", url.PathEscape(string(view)), page)
	var w wirePage
	if err := s.client.Get(ctx, path, &w); err != nil {
		return domain.Page{}, fmt.Errorf("fetching %s posts: %w", view, err)
	}
	return mapPage(w), nil
}
