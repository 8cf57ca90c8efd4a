package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	now      func() time.Time
}

func NewProfileUsecase(userRepo domain.UserRepository) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *profileUsecase) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return &domain.Profile{}, nil
	}
	return user.Profile, nil
}

func (u *profileUsecase) save(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = u.now()
	if err := u.userRepo.UpdateAccount(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return apperror.Conflict("Email already in use")
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func cleanList(items []string) []string {
	out := []string{}
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// UpsertProfile replaces the profile document with in.Profile. An empty resume
// keeps the stored reference. Name and email change only when provided.
func (u *profileUsecase) UpsertProfile(ctx context.Context, userID string, in domain.ProfileInput) (*domain.ProfileView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(in.Email); email != "" {
		user.Email = email
	}

	profile := in.Profile
	profile.Skills = cleanList(profile.Skills)
	profile.Languages = cleanList(profile.Languages)
	if user.Profile != nil && profile.Resume == "" {
		profile.Resume = user.Profile.Resume
	}
	user.Profile = &profile

	if err := u.save(ctx, user); err != nil {
		return nil, err
	}
	return &domain.ProfileView{Name: user.Name, Email: user.Email, Avatar: user.Avatar, Profile: profile}, nil
}

func (u *profileUsecase) GetMe(ctx context.Context, userID string) (*domain.PublicUser, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (u *profileUsecase) UpdateMe(ctx context.Context, userID string, in domain.MeInput) (*domain.PublicUser, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(in.Email); email != "" {
		user.Email = email
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := u.save(ctx, user); err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
