package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
	notifier domain.ApplicantNotifier
	now      func() time.Time
}

type ApplicationOption func(*applicationUsecase)

// WithNotifier emails job owners about new applications. A nil notifier is ignored.
func WithNotifier(n domain.ApplicantNotifier) ApplicationOption {
	return func(u *applicationUsecase) { u.notifier = n }
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository, opts ...ApplicationOption) domain.ApplicationUsecase {
	u := &applicationUsecase{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Apply checks, in order: the applicant has a saved profile, the job exists,
// and the pair has not applied before. The unique index on (job, applicant)
// turns a racing duplicate into the same conflict.
func (u *applicationUsecase) Apply(ctx context.Context, jobID, applicantID string, resume *string) (*domain.Application, error) {
	if jobID == "" {
		return nil, apperror.Validation("Job ID is required")
	}

	applicant, err := u.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if applicant.Profile.IsEmpty() {
		return nil, apperror.Precondition("Save your profile first")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.appRepo.CheckExists(ctx, jobID, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("Already applied")
	}

	if resume != nil && *resume == "" {
		resume = nil
	}
	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Resume:      resume,
		CreatedAt:   u.now(),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Already applied")
		}
		return nil, apperror.Internal(err)
	}

	if u.notifier != nil {
		go u.notifyOwner(context.WithoutCancel(ctx), *job, applicant.Public())
	}
	return app, nil
}

// notifyOwner is best effort; the application is already stored.
func (u *applicationUsecase) notifyOwner(ctx context.Context, job domain.Job, applicant domain.PublicUser) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	owner, err := u.userRepo.GetByID(ctx, job.OwnerID)
	if err != nil {
		logger.Log.Warn("Skipping applicant notification", "job_id", job.ID, "error", err)
		return
	}
	if err := u.notifier.NotifyNewApplicant(ctx, owner.Public(), job, applicant); err != nil {
		logger.Log.Warn("Applicant notification failed", "job_id", job.ID, "owner_id", owner.ID, "error", err)
	}
}

func (u *applicationUsecase) List(ctx context.Context, scope domain.ApplicationScope) ([]domain.Application, error) {
	switch scope.Kind {
	case domain.ScopeKindAll:
	case domain.ScopeKindJobOwner, domain.ScopeKindApplicant:
		if scope.UserID == "" {
			return nil, apperror.Validation("Scope requires a user")
		}
	default:
		return nil, apperror.Validation("Unknown application scope")
	}

	apps, err := u.appRepo.List(ctx, scope)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

var exportColumns = []string{
	"APPLIED AT", "JOB TITLE", "COMPANY", "APPLICANT", "EMAIL", "PHONE",
	"HEADLINE", "LOCATION", "SKILLS", "LINKEDIN", "GITHUB", "RESUME",
}

func exportRow(app domain.Application) []interface{} {
	var title, company string
	if app.Job != nil {
		title, company = app.Job.Title, app.Job.Company
	}
	var name, email string
	p := &domain.Profile{}
	if app.Applicant != nil {
		name, email = app.Applicant.Name, app.Applicant.Email
		if app.Applicant.Profile != nil {
			p = app.Applicant.Profile
		}
	}
	resume := ""
	if app.Resume != nil {
		resume = *app.Resume
	}
	return []interface{}{
		app.CreatedAt.Format("2006-01-02 15:04"), title, company, name, email, p.Phone,
		p.Headline, p.Location, strings.Join(p.Skills, ", "), p.Linkedin, p.Github, resume,
	}
}

// ExportForOwner renders the applications to ownerID's jobs as an xlsx workbook.
func (u *applicationUsecase) ExportForOwner(ctx context.Context, ownerID string) ([]byte, string, error) {
	apps, err := u.List(ctx, domain.ScopeJobOwner(ownerID))
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applicants"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", apperror.Internal(err)
	}

	for i, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		row := exportRow(app)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", apperror.Internal(err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportColumns))
	f.SetColWidth(sheetName, "A", lastCol, 22)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("applicants_%s.xlsx", u.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
