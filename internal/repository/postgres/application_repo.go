package postgres

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, job_id, applicant_id, resume, created_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, app.ID, app.JobID, app.ApplicantID, app.Resume, app.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// Jobs and users are joined with LEFT JOIN: applications outlive the rows they reference.
const applicationListQuery = `
	SELECT
		a.id, a.job_id, a.applicant_id, a.resume, a.created_at,
		j.id, j.title, j.company, j.location, j.salary, j.description, j.type,
		j.experience, j.skills, j.logo, j.owner_id, j.created_at, j.updated_at,
		u.id, u.name, u.email, u.role, u.avatar, u.profile
	FROM applications a
	LEFT JOIN jobs j ON j.id = a.job_id
	LEFT JOIN users u ON u.id = a.applicant_id`

func (r *applicationRepo) List(ctx context.Context, scope domain.ApplicationScope) ([]domain.Application, error) {
	query := applicationListQuery
	var args []interface{}

	switch scope.Kind {
	case domain.ScopeKindAll:
	case domain.ScopeKindJobOwner:
		query += ` WHERE j.owner_id = $1`
		args = append(args, scope.UserID)
	case domain.ScopeKindApplicant:
		query += ` WHERE a.applicant_id = $1`
		args = append(args, scope.UserID)
	default:
		return nil, fmt.Errorf("unknown application scope %q", scope.Kind)
	}
	query += ` ORDER BY a.created_at DESC, a.seq`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var (
			app domain.Application

			jobID, title, company, location, salary *string
			description, jobType, experience, logo  *string
			ownerID                                 *string
			skills                                  []string
			jobCreatedAt, jobUpdatedAt              *time.Time
			userID, userName, userEmail, userRole   *string
			userAvatar                              *string
			profile                                 []byte
		)
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Resume, &app.CreatedAt,
			&jobID, &title, &company, &location, &salary, &description, &jobType,
			&experience, &skills, &logo, &ownerID, &jobCreatedAt, &jobUpdatedAt,
			&userID, &userName, &userEmail, &userRole, &userAvatar, &profile,
		); err != nil {
			return nil, err
		}

		if jobID != nil {
			if skills == nil {
				skills = []string{}
			}
			app.Job = &domain.Job{
				ID: *jobID, Title: deref(title), Company: deref(company), Location: deref(location),
				Salary: deref(salary), Description: deref(description), Type: deref(jobType),
				Experience: deref(experience), Skills: skills, Logo: deref(logo), OwnerID: deref(ownerID),
				CreatedAt: derefTime(jobCreatedAt), UpdatedAt: derefTime(jobUpdatedAt),
			}
		}
		if userID != nil {
			p, err := decodeProfile(profile)
			if err != nil {
				return nil, err
			}
			app.Applicant = &domain.PublicUser{
				ID: *userID, Name: deref(userName), Email: deref(userEmail),
				Role: domain.Role(deref(userRole)), Avatar: deref(userAvatar), Profile: p,
			}
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
