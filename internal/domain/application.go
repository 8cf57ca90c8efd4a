package domain

import (
	"context"
	"time"
)

// Application links one applicant to one job. It is unique per (job, applicant)
// and immutable once created.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	Resume      *string   `json:"resume"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined data for list responses
	Job       *Job        `json:"job,omitempty"`
	Applicant *PublicUser `json:"applicant,omitempty"`
}

// ScopeKind selects which applications a listing may return.
type ScopeKind string

const (
	ScopeKindAll       ScopeKind = "all"
	ScopeKindJobOwner  ScopeKind = "job_owner"
	ScopeKindApplicant ScopeKind = "applicant"
)

// ApplicationScope is required by every listing so that unscoped reads are explicit.
type ApplicationScope struct {
	Kind   ScopeKind
	UserID string
}

func ScopeAll() ApplicationScope { return ApplicationScope{Kind: ScopeKindAll} }

func ScopeJobOwner(ownerID string) ApplicationScope {
	return ApplicationScope{Kind: ScopeKindJobOwner, UserID: ownerID}
}

func ScopeApplicant(userID string) ApplicationScope {
	return ApplicationScope{Kind: ScopeKindApplicant, UserID: userID}
}

type ApplicationRepository interface {
	// Create fails with ErrConflict when (JobID, ApplicantID) already exists.
	Create(ctx context.Context, app *Application) error
	CheckExists(ctx context.Context, jobID, applicantID string) (bool, error)
	// List returns applications with Job and Applicant joined, newest first.
	List(ctx context.Context, scope ApplicationScope) ([]Application, error)
}

// ApplicantNotifier tells a job owner that someone applied.
type ApplicantNotifier interface {
	NotifyNewApplicant(ctx context.Context, owner PublicUser, job Job, applicant PublicUser) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, applicantID string, resume *string) (*Application, error)
	List(ctx context.Context, scope ApplicationScope) ([]Application, error)
	// ExportForOwner renders the applications to ownerID's jobs as an xlsx workbook.
	ExportForOwner(ctx context.Context, ownerID string) ([]byte, string, error)
}
