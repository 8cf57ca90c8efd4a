package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/rolecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdateAccount(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, applicantID string) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context, scope domain.ApplicationScope) ([]domain.Application, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func assertKind(t *testing.T, err error, kind apperror.Kind, code int) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, code, appErr.Code)
}

type fixture struct {
	store    *memory.Store
	users    domain.UserRepository
	jobsRepo domain.JobRepository
	appsRepo domain.ApplicationRepository
	tokens   *auth.TokenIssuer
	auth     domain.AuthUsecase
	jobs     domain.JobUsecase
	apps     domain.ApplicationUsecase
	profiles domain.ProfileUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		store:    store,
		users:    memory.NewUserRepository(store),
		jobsRepo: memory.NewJobRepository(store),
		appsRepo: memory.NewApplicationRepository(store),
	}
	tokens, err := auth.NewTokenIssuer("test-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)
	f.tokens = tokens
	f.auth = usecase.NewAuthUsecase(f.users, auth.NewHasher(bcrypt.MinCost), tokens, rolecache.NewMemory(time.Minute))
	f.jobs = usecase.NewJobUsecase(f.jobsRepo, f.users, nil)
	f.apps = usecase.NewApplicationUsecase(f.appsRepo, f.jobsRepo, f.users)
	f.profiles = usecase.NewProfileUsecase(f.users)
	return f
}

func (f *fixture) register(t *testing.T, name string, role domain.Role) *domain.PublicUser {
	t.Helper()
	u, err := f.auth.Register(context.Background(), domain.RegisterInput{
		Name: name, Email: name + "@example.com", Password: "pw-" + name, Role: role,
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, domain.RegisterInput{Name: "a", Email: "a@x.io", Role: domain.RoleEmployee})
		assertKind(t, err, apperror.KindValidation, 400)
		assert.Equal(t, "All fields are required", err.Error())
	})

	t.Run("bad role", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, domain.RegisterInput{Name: "a", Email: "a@x.io", Password: "p", Role: "admin"})
		assertKind(t, err, apperror.KindValidation, 400)
	})

	t.Run("password over the bcrypt byte limit", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, domain.RegisterInput{
			Name: "a", Email: "a@x.io", Password: strings.Repeat("é", 72), Role: domain.RoleEmployee,
		})
		assertKind(t, err, apperror.KindValidation, 400)
		assert.Equal(t, "Password is too long", err.Error())

		_, err = f.auth.Register(ctx, domain.RegisterInput{
			Name: "a", Email: "a@x.io", Password: strings.Repeat("p", 72), Role: domain.RoleEmployee,
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate email leaves count unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "ann", domain.RoleEmployee)

		_, err := f.auth.Register(ctx, domain.RegisterInput{
			Name: "Other", Email: "  ANN@example.com ", Password: "x", Role: domain.RoleEmployee,
		})
		assertKind(t, err, apperror.KindConflict, 409)
		assert.Equal(t, "User already exists", err.Error())

		count, _ := f.users.CountByRole(ctx, domain.RoleEmployee)
		assert.Equal(t, int64(1), count)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		f := newFixture(t)
		u := f.register(t, "bob", domain.RoleRecruiter)
		stored, err := f.users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "pw-bob", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw-bob")))
	})
}

func TestRegisterRaceMapsToConflict(t *testing.T) {
	repo := new(MockUserRepo)
	tokens, _ := auth.NewTokenIssuer("s", time.Hour)
	uc := usecase.NewAuthUsecase(repo, auth.NewHasher(bcrypt.MinCost), tokens, rolecache.NewMemory(time.Minute))

	repo.On("GetByEmail", mock.Anything, "ann@x.io").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrConflict)

	_, err := uc.Register(context.Background(), domain.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "p", Role: domain.RoleEmployee})
	assertKind(t, err, apperror.KindConflict, 409)
	repo.AssertExpectations(t)
}

func TestRegisterStoreFailureIsInternal(t *testing.T) {
	repo := new(MockUserRepo)
	tokens, _ := auth.NewTokenIssuer("s", time.Hour)
	uc := usecase.NewAuthUsecase(repo, auth.NewHasher(bcrypt.MinCost), tokens, rolecache.NewMemory(time.Minute))

	repo.On("GetByEmail", mock.Anything, "ann@x.io").Return(nil, errors.New("connection reset"))

	_, err := uc.Register(context.Background(), domain.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "p", Role: domain.RoleEmployee})
	assertKind(t, err, apperror.KindInternal, 500)
	assert.Equal(t, "Internal Server Error", err.Error())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "ann", domain.RoleEmployee)

	_, err := f.auth.Login(ctx, "nobody@example.com", "x")
	assertKind(t, err, apperror.KindNotFound, 404)

	_, err = f.auth.Login(ctx, "ann@example.com", "wrong")
	assertKind(t, err, apperror.KindAuth, 401)
	assert.Equal(t, "Invalid credentials", err.Error())

	res, err := f.auth.Login(ctx, "ANN@example.com", "pw-ann")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, res.Role)
	assert.Equal(t, u.ID, res.User.ID)

	userID, err := f.tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestTokenExpiresAfterSevenDays(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	tokens, err := auth.NewTokenIssuer("secret", auth.DefaultTokenTTL)
	require.NoError(t, err)
	tokens = tokens.WithClock(func() time.Time { return now })

	token, exp, err := tokens.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), exp)

	now = exp.Add(-time.Second)
	_, err = tokens.Verify(token)
	assert.NoError(t, err)

	now = exp.Add(time.Second)
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "rec", domain.RoleRecruiter)
	res, err := f.auth.Login(ctx, "rec@example.com", "pw-rec")
	require.NoError(t, err)

	id, err := f.auth.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)
	assert.Equal(t, domain.RoleRecruiter, id.Role)

	_, err = f.auth.Authenticate(ctx, "")
	assertKind(t, err, apperror.KindAuth, 401)
	assert.Equal(t, "Not authenticated", err.Error())

	_, err = f.auth.Authenticate(ctx, res.Token+"x")
	assertKind(t, err, apperror.KindAuth, 401)

	// a valid token for a user that no longer exists is rejected
	ghost, _, err := f.tokens.Issue("ghost")
	require.NoError(t, err)
	_, err = f.auth.Authenticate(ctx, ghost)
	assertKind(t, err, apperror.KindAuth, 401)
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.register(t, "alice", domain.RoleRecruiter)
	b := f.register(t, "bob", domain.RoleRecruiter)

	job, err := f.jobs.CreateJob(ctx, a.ID, domain.JobInput{Title: "Backend Engineer", Company: "Acme", Skills: []string{"Go"}})
	require.NoError(t, err)
	assert.Equal(t, a.ID, job.OwnerID)

	_, err = f.jobs.UpdateJob(ctx, job.ID, b.ID, domain.JobPatch{Title: "Hijacked"})
	assertKind(t, err, apperror.KindAuth, 403)

	unchanged, err := f.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", unchanged.Title)

	updated, err := f.jobs.UpdateJob(ctx, job.ID, a.ID, domain.JobPatch{Title: "Staff Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Acme", updated.Company, "omitted field keeps its value")
	assert.Equal(t, []string{"Go"}, updated.Skills, "empty skills leave the list alone")
	assert.Equal(t, a.ID, updated.OwnerID)

	err = f.jobs.DeleteJob(ctx, job.ID, b.ID)
	assertKind(t, err, apperror.KindAuth, 403)
	_, err = f.jobs.GetJob(ctx, job.ID)
	assert.NoError(t, err, "job survives a foreign delete")

	_, err = f.jobs.UpdateJob(ctx, "missing", a.ID, domain.JobPatch{Title: "x"})
	assertKind(t, err, apperror.KindNotFound, 404)
	assertKind(t, f.jobs.DeleteJob(ctx, "missing", a.ID), apperror.KindNotFound, 404)

	require.NoError(t, f.jobs.DeleteJob(ctx, job.ID, a.ID))
	_, err = f.jobs.GetJob(ctx, job.ID)
	assertKind(t, err, apperror.KindNotFound, 404)
}

func TestEmployeeMayCreateJob(t *testing.T) {
	f := newFixture(t)
	e := f.register(t, "emp", domain.RoleEmployee)
	job, err := f.jobs.CreateJob(context.Background(), e.ID, domain.JobInput{Title: "Side gig"})
	require.NoError(t, err)
	assert.Equal(t, e.ID, job.OwnerID)
}

func TestListJobsFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := f.register(t, "rec", domain.RoleRecruiter)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	seed := []domain.Job{
		{ID: "1", Title: "Backend Engineer", Location: "Remote", CreatedAt: base},
		{ID: "2", Title: "Designer", Description: "work with engineers", Location: "Remote (EU)", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Engineer", Location: "Berlin", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Cook", Skills: []string{"Engineering"}, Location: "REMOTE", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "5", Title: "Cook", Location: "Remote", CreatedAt: base.Add(4 * time.Hour)},
	}
	for i := range seed {
		seed[i].OwnerID = r.ID
		require.NoError(t, f.jobsRepo.Create(ctx, &seed[i]))
	}

	jobs, err := f.jobs.ListJobs(ctx, domain.JobFilter{Search: "engineer", Location: "remote"})
	require.NoError(t, err)

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"4", "2", "1"}, ids)

	all, err := f.jobs.ListJobs(ctx, domain.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	mine, err := f.jobs.ListMyJobs(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", mine[0].ID)
}

func TestApplyFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := f.register(t, "rec", domain.RoleRecruiter)
	e := f.register(t, "emp", domain.RoleEmployee)

	job, err := f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	_, err = f.apps.Apply(ctx, job.ID, e.ID, nil)
	assertKind(t, err, apperror.KindPrecondition, 422)
	assert.Equal(t, "Save your profile first", err.Error())

	in := domain.ProfileInput{Profile: domain.Profile{Skills: []string{"Go"}}}
	first, err := f.profiles.UpsertProfile(ctx, e.ID, in)
	require.NoError(t, err)
	second, err := f.profiles.UpsertProfile(ctx, e.ID, in)
	require.NoError(t, err)
	assert.Equal(t, first, second, "saving the same profile twice is idempotent")

	app, err := f.apps.Apply(ctx, job.ID, e.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, app.Resume)

	_, err = f.apps.Apply(ctx, job.ID, e.ID, nil)
	assertKind(t, err, apperror.KindConflict, 409)
	assert.Equal(t, "Already applied", err.Error())

	mine, err := f.apps.List(ctx, domain.ScopeApplicant(e.ID))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.apps.Apply(ctx, "missing", e.ID, nil)
	assertKind(t, err, apperror.KindNotFound, 404)
}

func TestAvatarUploadDoesNotCreateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := f.register(t, "rec", domain.RoleRecruiter)
	e := f.register(t, "emp", domain.RoleEmployee)

	job, err := f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	me, err := f.profiles.UpdateMe(ctx, e.ID, domain.MeInput{Avatar: "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", me.Avatar)
	assert.Nil(t, me.Profile)

	_, err = f.apps.Apply(ctx, job.ID, e.ID, nil)
	assertKind(t, err, apperror.KindPrecondition, 422)

	view, err := f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{Profile: domain.Profile{Headline: "Gopher"}})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", view.Avatar)

	_, err = f.apps.Apply(ctx, job.ID, e.ID, nil)
	assert.NoError(t, err)
}

type notification struct {
	owner, applicant domain.PublicUser
	job              domain.Job
}

type chanNotifier chan notification

func (n chanNotifier) NotifyNewApplicant(_ context.Context, owner domain.PublicUser, job domain.Job, applicant domain.PublicUser) error {
	n <- notification{owner: owner, applicant: applicant, job: job}
	return nil
}

func TestApplyNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sent := make(chanNotifier, 1)
	apps := usecase.NewApplicationUsecase(f.appsRepo, f.jobsRepo, f.users, usecase.WithNotifier(sent))

	r := f.register(t, "rec", domain.RoleRecruiter)
	e := f.register(t, "emp", domain.RoleEmployee)
	job, err := f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Title: "Backend Engineer"})
	require.NoError(t, err)
	_, err = f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{Profile: domain.Profile{Headline: "Gopher"}})
	require.NoError(t, err)

	_, err = apps.Apply(ctx, job.ID, e.ID, nil)
	require.NoError(t, err)

	select {
	case n := <-sent:
		assert.Equal(t, r.Email, n.owner.Email)
		assert.Equal(t, e.ID, n.applicant.ID)
		assert.Equal(t, "Backend Engineer", n.job.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("owner was not notified")
	}

	_, err = apps.Apply(ctx, job.ID, e.ID, nil)
	assertKind(t, err, apperror.KindConflict, 409)
	assert.Empty(t, sent, "a rejected application sends nothing")
}

func TestApplyRaceMapsToConflict(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	apps := new(MockApplicationRepo)
	store := memory.NewStore()
	jobs := memory.NewJobRepository(store)
	require.NoError(t, jobs.Create(ctx, &domain.Job{ID: "j1", OwnerID: "r"}))

	users.On("GetByID", mock.Anything, "e").Return(&domain.User{ID: "e", Profile: &domain.Profile{Bio: "hi"}}, nil)
	apps.On("CheckExists", mock.Anything, "j1", "e").Return(false, nil)
	apps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(domain.ErrConflict)

	uc := usecase.NewApplicationUsecase(apps, jobs, users)
	resume := "cv.pdf"
	_, err := uc.Apply(ctx, "j1", "e", &resume)
	assertKind(t, err, apperror.KindConflict, 409)
	apps.AssertExpectations(t)
}

func TestApplicationScopes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r1 := f.register(t, "r1", domain.RoleRecruiter)
	r2 := f.register(t, "r2", domain.RoleRecruiter)
	e := f.register(t, "emp", domain.RoleEmployee)
	_, err := f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{Profile: domain.Profile{Headline: "Gopher"}})
	require.NoError(t, err)

	j1, _ := f.jobs.CreateJob(ctx, r1.ID, domain.JobInput{Title: "One", Company: "Acme"})
	j2, _ := f.jobs.CreateJob(ctx, r2.ID, domain.JobInput{Title: "Two", Company: "Beta"})
	resume := "cv.pdf"
	_, err = f.apps.Apply(ctx, j1.ID, e.ID, &resume)
	require.NoError(t, err)
	_, err = f.apps.Apply(ctx, j2.ID, e.ID, nil)
	require.NoError(t, err)

	owned, err := f.apps.List(ctx, domain.ScopeJobOwner(r1.ID))
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "One", owned[0].Job.Title)
	assert.Equal(t, "Gopher", owned[0].Applicant.Profile.Headline)

	all, err := f.apps.List(ctx, domain.ScopeAll())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.apps.List(ctx, domain.ScopeJobOwner(""))
	assertKind(t, err, apperror.KindValidation, 400)

	data, name, err := f.apps.ExportForOwner(ctx, r1.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, []byte("PK"), data[:2])
	assert.Contains(t, name, ".xlsx")
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.register(t, "emp", domain.RoleEmployee)
	f.register(t, "other", domain.RoleEmployee)

	p, err := f.profiles.GetProfile(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())

	_, err = f.profiles.GetProfile(ctx, "missing")
	assertKind(t, err, apperror.KindNotFound, 404)

	view, err := f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{
		Name: "Emma", Email: "Emma@Example.com",
		Profile: domain.Profile{Bio: "Gopher", Skills: []string{" Go ", ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Emma", view.Name)
	assert.Equal(t, "emma@example.com", view.Email)
	assert.Equal(t, []string{"Go"}, view.Skills)

	_, err = f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{Email: "other@example.com"})
	assertKind(t, err, apperror.KindConflict, 409)

	me, err := f.profiles.UpdateMe(ctx, e.ID, domain.MeInput{Avatar: "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", me.Avatar)
	assert.Equal(t, "Gopher", me.Profile.Bio)

	// a later profile save keeps the uploaded avatar
	view, err = f.profiles.UpsertProfile(ctx, e.ID, domain.ProfileInput{Profile: domain.Profile{Bio: "Rustacean"}})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", view.Avatar)
	assert.Empty(t, view.Skills)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := f.register(t, "rec", domain.RoleRecruiter)
	f.register(t, "e1", domain.RoleEmployee)
	f.register(t, "e2", domain.RoleEmployee)

	f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Company: "Acme"})
	f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Company: "Acme"})
	f.jobs.CreateJob(ctx, r.ID, domain.JobInput{Company: "Beta"})

	stats, err := f.jobs.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Stats{Jobs: 3, Companies: 2, Candidates: 2}, stats)
}

func TestHealth(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("down") },
	})
	status, ok := uc.Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "ok", status["database"])
	assert.Equal(t, "unavailable", status["redis"])
}
