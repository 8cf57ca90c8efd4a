package domain

import "context"

// ProfileView is the combined account + profile shape returned after a save.
type ProfileView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Profile
}

type ProfileInput struct {
	Name    string
	Email   string
	Profile Profile
}

// MeInput updates the account fields of the caller. Empty fields are left
// unchanged. The avatar belongs to the account, not the profile document.
type MeInput struct {
	Name   string
	Email  string
	Avatar string
}

type ProfileUsecase interface {
	// GetProfile returns the stored profile, or an empty one if none was saved.
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// UpsertProfile replaces name, email and the entire profile document.
	UpsertProfile(ctx context.Context, userID string, in ProfileInput) (*ProfileView, error)
	GetMe(ctx context.Context, userID string) (*PublicUser, error)
	UpdateMe(ctx context.Context, userID string, in MeInput) (*PublicUser, error)
}
