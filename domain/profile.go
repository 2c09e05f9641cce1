package domain

// Profile is a user's public summary.
// IsFollowing is nil when the viewer is the profile owner or is anonymous.
type Profile struct {
	ID          int64
	Username    string
	Followers   int
	Following   int
	IsFollowing *bool
}

// CanFollow reports whether a follow/unfollow control applies.
func (p Profile) CanFollow() bool {
	return p.IsFollowing != nil
}

// Followed reports the current follow state; false when CanFollow is false.
func (p Profile) Followed() bool {
	return p.IsFollowing != nil && *p.IsFollowing
}
