package app

import (
	"context"

	"github.com/CrestNiraj12/netfeed/domain"
)

// FeedService fetches paginated post listings.
type FeedService interface {
	// Posts returns one page of posts for the given view, newest first.
	Posts(ctx context.Context, view domain.View, page int) (domain.Page, error)
}
