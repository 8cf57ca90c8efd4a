// Package memory implements the repositories in process. All three share one
// Store so that listings can join across collections under a single lock.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	emails       map[string]string // email -> user id
	jobs         map[string]domain.Job
	applications map[string]domain.Application
	pairs        map[[2]string]string // (job, applicant) -> application id
	seq          map[string]uint64    // job or application id -> insertion order
	nextSeq      uint64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		emails:       make(map[string]string),
		jobs:         make(map[string]domain.Job),
		applications: make(map[string]domain.Application),
		pairs:        make(map[[2]string]string),
		seq:          make(map[string]uint64),
	}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Skills = append([]string(nil), p.Skills...)
	c.Languages = append([]string(nil), p.Languages...)
	return &c
}

// track records id as the latest insert. Callers hold mu.
func (s *Store) track(id string) {
	s.nextSeq++
	s.seq[id] = s.nextSeq
}

// newer orders by creation time descending, then by insertion order.
func (s *Store) newer(aID string, aAt time.Time, bID string, bAt time.Time) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return s.seq[aID] < s.seq[bID]
}

func cloneJob(j domain.Job) domain.Job {
	j.Skills = append([]string{}, j.Skills...)
	return j
}

type userRepo struct{ s *Store }

func NewUserRepository(s *Store) domain.UserRepository { return &userRepo{s: s} }

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[user.Email]; taken {
		return domain.ErrConflict
	}
	if _, taken := r.s.users[user.ID]; taken {
		return domain.ErrConflict
	}
	u := *user
	u.Profile = cloneProfile(user.Profile)
	r.s.users[u.ID] = u
	r.s.emails[u.Email] = u.ID
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Profile = cloneProfile(u.Profile)
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.emails[email]
	r.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) UpdateAccount(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if owner, taken := r.s.emails[user.Email]; taken && owner != user.ID {
		return domain.ErrConflict
	}

	delete(r.s.emails, current.Email)
	current.Name = user.Name
	current.Email = user.Email
	current.Avatar = user.Avatar
	current.Profile = cloneProfile(user.Profile)
	current.UpdatedAt = user.UpdatedAt
	r.s.users[current.ID] = current
	r.s.emails[current.Email] = current.ID
	return nil
}

func (r *userRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, u := range r.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type jobRepo struct{ s *Store }

func NewJobRepository(s *Store) domain.JobRepository { return &jobRepo{s: s} }

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.jobs[job.ID]; taken {
		return domain.ErrConflict
	}
	r.s.jobs[job.ID] = cloneJob(*job)
	r.s.track(job.ID)
	return nil
}

func (r *jobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	j = cloneJob(j)
	return &j, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matches(j domain.Job, f domain.JobFilter) bool {
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Search == "" {
		return true
	}
	if containsFold(j.Title, f.Search) || containsFold(j.Company, f.Search) || containsFold(j.Description, f.Search) {
		return true
	}
	for _, skill := range j.Skills {
		if containsFold(skill, f.Search) {
			return true
		}
	}
	return false
}

func (r *jobRepo) selectJobs(keep func(domain.Job) bool) []domain.Job {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	jobs := []domain.Job{}
	for _, j := range r.s.jobs {
		if keep(j) {
			jobs = append(jobs, cloneJob(j))
		}
	}
	sort.Slice(jobs, func(a, b int) bool {
		return r.s.newer(jobs[a].ID, jobs[a].CreatedAt, jobs[b].ID, jobs[b].CreatedAt)
	})
	return jobs
}

func (r *jobRepo) Fetch(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return r.selectJobs(func(j domain.Job) bool { return matches(j, filter) }), nil
}

func (r *jobRepo) FetchByOwner(_ context.Context, ownerID string) ([]domain.Job, error) {
	return r.selectJobs(func(j domain.Job) bool { return j.OwnerID == ownerID }), nil
}

func (r *jobRepo) Update(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.jobs[job.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := cloneJob(*job)
	updated.OwnerID = current.OwnerID
	updated.CreatedAt = current.CreatedAt
	r.s.jobs[job.ID] = updated
	return nil
}

func (r *jobRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.jobs, id)
	delete(r.s.seq, id)
	return nil
}

func (r *jobRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.jobs)), nil
}

func (r *jobRepo) CountCompanies(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	companies := make(map[string]struct{})
	for _, j := range r.s.jobs {
		if j.Company != "" {
			companies[j.Company] = struct{}{}
		}
	}
	return int64(len(companies)), nil
}

type applicationRepo struct{ s *Store }

func NewApplicationRepository(s *Store) domain.ApplicationRepository {
	return &applicationRepo{s: s}
}

func (r *applicationRepo) Create(_ context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]string{app.JobID, app.ApplicantID}
	if _, taken := r.s.pairs[key]; taken {
		return domain.ErrConflict
	}
	stored := *app
	stored.Job, stored.Applicant = nil, nil
	r.s.applications[stored.ID] = stored
	r.s.pairs[key] = stored.ID
	r.s.track(stored.ID)
	return nil
}

func (r *applicationRepo) CheckExists(_ context.Context, jobID, applicantID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.pairs[[2]string{jobID, applicantID}]
	return ok, nil
}

func (r *applicationRepo) List(_ context.Context, scope domain.ApplicationScope) ([]domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	apps := []domain.Application{}
	for _, a := range r.s.applications {
		job, hasJob := r.s.jobs[a.JobID]

		switch scope.Kind {
		case domain.ScopeKindAll:
		case domain.ScopeKindJobOwner:
			if !hasJob || job.OwnerID != scope.UserID {
				continue
			}
		case domain.ScopeKindApplicant:
			if a.ApplicantID != scope.UserID {
				continue
			}
		default:
			return nil, errUnknownScope(scope.Kind)
		}

		if hasJob {
			j := cloneJob(job)
			a.Job = &j
		}
		if u, ok := r.s.users[a.ApplicantID]; ok {
			pub := u.Public()
			pub.Profile = cloneProfile(u.Profile)
			a.Applicant = &pub
		}
		apps = append(apps, a)
	}

	sort.Slice(apps, func(i, j int) bool {
		return r.s.newer(apps[i].ID, apps[i].CreatedAt, apps[j].ID, apps[j].CreatedAt)
	})
	return apps, nil
}

type errUnknownScope domain.ScopeKind

func (e errUnknownScope) Error() string { return "unknown application scope " + string(e) }
