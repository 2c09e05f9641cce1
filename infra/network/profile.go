package network

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/netfeed/domain"
)

// profileService implements app.ProfileService.
type profileService struct {
	client *Client
}

// NewProfileService creates a ProfileService backed by the server API.
func NewProfileService(client *Client) *profileService {
	return &profileService{client: client}
}

func (s *profileService) Profile(ctx context.Context, userID int64) (domain.Profile, error) {
	var w wireProfile
	if err := s.client.Get(ctx, fmt.Sprintf("/profile/%d", userID), &w); err != nil {
		return domain.Profile{}, fmt.Errorf("fetching profile: %w", err)
	}
	return mapProfile(w), nil
}

func (s *profileService) ToggleFollow(ctx context.Context, userID int64) (string, error) {
	var res messageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/profile/%d", userID), nil, &res); err != nil {
		return "", fmt.Errorf("toggling follow: %w", err)
	}
	return res.Message, nil
}
