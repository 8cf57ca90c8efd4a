package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/storage"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
	files    storage.Storage
	now      func() time.Time
}

// NewJobUsecase wires the job registry. files may be nil, in which case a
// deleted job's logo is left in place.
func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository, files storage.Storage) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		files:    files,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateJob is open to every authenticated caller; there is no role gate.
func (u *jobUsecase) CreateJob(ctx context.Context, ownerID string, in domain.JobInput) (*domain.Job, error) {
	if ownerID == "" {
		return nil, apperror.Unauthorized("Not authenticated")
	}

	now := u.now()
	job := &domain.Job{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Salary:      in.Salary,
		Description: in.Description,
		Type:        in.Type,
		Experience:  in.Experience,
		Skills:      append([]string{}, in.Skills...),
		Logo:        in.Logo,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, ownerID string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// ownedJob loads jobID and checks that callerID owns it. Update and delete
// share it so both report a foreign job the same way.
func (u *jobUsecase) ownedJob(ctx context.Context, jobID, callerID, action string) (*domain.Job, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if callerID == "" || job.OwnerID != callerID {
		return nil, apperror.Forbidden("Not authorized to " + action + " this job")
	}
	return job, nil
}

// UpdateJob applies patch with "empty means not provided" semantics: a field
// cannot be cleared, and skills are only replaced by a non-empty list.
func (u *jobUsecase) UpdateJob(ctx context.Context, jobID, callerID string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.ownedJob(ctx, jobID, callerID, "edit")
	if err != nil {
		return nil, err
	}

	patch.Apply(job)
	job.UpdatedAt = u.now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob removes the posting. Applications to it are kept.
func (u *jobUsecase) DeleteJob(ctx context.Context, jobID, callerID string) error {
	job, err := u.ownedJob(ctx, jobID, callerID, "delete")
	if err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, job.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if job.Logo != "" && u.files != nil {
		if err := u.files.Delete(ctx, job.Logo); err != nil {
			logger.Log.Warn("Failed to remove job logo", "job_id", job.ID, "file", job.Logo, "error", err)
		}
	}
	return nil
}

func (u *jobUsecase) Stats(ctx context.Context) (*domain.Stats, error) {
	jobs, err := u.jobRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	companies, err := u.jobRepo.CountCompanies(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	candidates, err := u.userRepo.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.Stats{Jobs: jobs, Companies: companies, Candidates: candidates}, nil
}
