package domain

import (
	"context"
	"strings"
	"time"
)

// Job is a posting owned by the user that created it. OwnerID never changes.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Experience  string    `json:"experience"`
	Skills      []string  `json:"skills"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobFilter selects jobs for the public listing. Search matches title, company,
// any skill or description; Location must also match when set. Both are
// case-insensitive substring matches.
type JobFilter struct {
	Search   string
	Location string
}

type JobInput struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string
	Type        string
	Experience  string
	Skills      []string
	Logo        string
}

// JobPatch is a partial update. Empty strings and an empty Skills list mean
// "not provided": a field cannot be cleared through a patch.
type JobPatch struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string
	Type        string
	Experience  string
	Skills      []string
}

// Apply overwrites the fields of job that p provides.
func (p JobPatch) Apply(job *Job) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&job.Title, p.Title)
	set(&job.Company, p.Company)
	set(&job.Location, p.Location)
	set(&job.Salary, p.Salary)
	set(&job.Description, p.Description)
	set(&job.Type, p.Type)
	set(&job.Experience, p.Experience)
	if len(p.Skills) > 0 {
		job.Skills = append([]string(nil), p.Skills...)
	}
}

// SplitList turns a comma separated form value into trimmed, non-empty items.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Stats are the landing page counters.
type Stats struct {
	Jobs       int64 `json:"jobs"`
	Companies  int64 `json:"companies"`
	Candidates int64 `json:"candidates"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// Fetch returns matching jobs newest first.
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Job, error)
	// Update persists every mutable field; the owner column is never written.
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountCompanies(ctx context.Context) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, ownerID string, in JobInput) (*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	ListMyJobs(ctx context.Context, ownerID string) ([]Job, error)
	UpdateJob(ctx context.Context, jobID, callerID string, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, jobID, callerID string) error
	Stats(ctx context.Context) (*Stats, error)
}
