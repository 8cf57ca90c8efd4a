package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleEmployee  Role = "employee"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleRecruiter
}

// User is the identity record. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the optional document embedded in a User. Its presence gates applying to jobs.
type Profile struct {
	Phone      string   `json:"phone,omitempty"`
	Headline   string   `json:"headline,omitempty"`
	Location   string   `json:"location,omitempty"`
	Github     string   `json:"github,omitempty"`
	Linkedin   string   `json:"linkedin,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

// IsEmpty reports whether p is absent or carries no data at all.
func (p *Profile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Phone == "" && p.Headline == "" && p.Location == "" &&
		p.Github == "" && p.Linkedin == "" && p.Bio == "" &&
		len(p.Skills) == 0 && len(p.Languages) == 0 &&
		p.Experience == "" && p.Education == "" && p.Resume == ""
}

// PublicUser is the view of a user exposed to other callers.
type PublicUser struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    Role     `json:"role,omitempty"`
	Avatar  string   `json:"avatar,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar, Profile: u.Profile}
}

type UserRepository interface {
	// Create fails with ErrConflict when the email is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateAccount replaces name, email, avatar and the whole profile document.
	UpdateAccount(ctx context.Context, user *User) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Role      Role       `json:"role"`
	User      PublicUser `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*PublicUser, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Authenticate verifies a bearer token and resolves the caller identity.
	Authenticate(ctx context.Context, token string) (Identity, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

// RoleCache memoises the role of a user id between requests.
type RoleCache interface {
	Get(ctx context.Context, userID string) (Role, bool)
	Set(ctx context.Context, userID string, role Role)
	Invalidate(ctx context.Context, userID string)
}
