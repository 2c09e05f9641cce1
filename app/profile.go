package app

import (
	"context"

	"github.com/CrestNiraj12/netfeed/domain"
)

// ProfileService reads profiles and toggles follow state.
type ProfileService interface {
	Profile(ctx context.Context, userID int64) (domain.Profile, error)

	// ToggleFollow follows the user, or unfollows if already following.
	ToggleFollow(ctx context.Context, userID int64) (string, error)
}
