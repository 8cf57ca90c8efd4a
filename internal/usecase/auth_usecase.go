package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	hasher    *auth.Hasher
	tokens    *auth.TokenIssuer
	roleCache domain.RoleCache
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher *auth.Hasher, tokens *auth.TokenIssuer, roleCache domain.RoleCache) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		roleCache: roleCache,
	}
}

// normalizeEmail is applied on every path that stores or looks up an email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.PublicUser, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || in.Role == "" {
		return nil, apperror.Validation("All fields are required")
	}
	if !in.Role.Valid() {
		return nil, apperror.Validation("Role must be employee or recruiter")
	}
	if len(in.Password) > auth.MaxPasswordBytes {
		return nil, apperror.Validation("Password is too long")
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index settles a registration racing the check above.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, apperror.Internal(err)
	}

	public := user.Public()
	return &public, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	ok, err := u.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, expiresAt, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.roleCache.Set(ctx, user.ID, user.Role)

	return &domain.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      user.Role,
		User:      domain.PublicUser{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, apperror.Unauthorized("Not authenticated")
	}

	userID, err := u.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return domain.Identity{}, apperror.Unauthorized("Token expired")
		}
		return domain.Identity{}, apperror.Unauthorized("Invalid token")
	}

	// Users are never deleted, so a cached role implies the user exists.
	// A future delete path must call roleCache.Invalidate.
	if role, ok := u.roleCache.Get(ctx, userID); ok {
		return domain.Identity{UserID: userID, Role: role}, nil
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, apperror.Unauthorized("User not found")
		}
		return domain.Identity{}, apperror.Internal(err)
	}
	u.roleCache.Set(ctx, user.ID, user.Role)

	return domain.Identity{UserID: user.ID, Role: user.Role}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
