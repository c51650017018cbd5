package repository

import (
	"context"
	"database/sql"
	"time"

	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/modules/job/entity"

	"github.com/google/uuid"
)

type JobRepository interface {
	CreateJob(ctx context.Context, job *entity.JobApplication) (*entity.JobApplication, error)
	GetJobByID(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error)
	GetJobsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error)
	UpdateJob(ctx context.Context, job *entity.JobApplication) error
	DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error
	UpdateGoogleEventID(ctx context.Context, jobID uuid.UUID, eventID *string) error
	GetJobsDueBetween(ctx context.Context, from, to time.Time) ([]entity.JobApplication, error)
}

type jobRepository struct {
	db database.IDatabase
}

func NewJobRepository(db database.IDatabase) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(ctx context.Context, job *entity.JobApplication) (*entity.JobApplication, error) {
	query := `
		INSERT INTO job_applications (user_id, company, position, notes, stage, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		job.UserID, job.Company, job.Position, job.Notes, job.Stage, job.DueDate,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		logger.Error("JobRepository:CreateJob:Error", "error", err, "user_id", job.UserID)
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) GetJobByID(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error) {
	var job entity.JobApplication
	query := `
		SELECT id, user_id, company, position, notes, stage, due_date,
		       google_event_id, created_at, updated_at
		FROM job_applications
		WHERE id = $1 AND user_id = $2
	`
	if err := r.db.GetContext(ctx, &job, query, jobID, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		logger.Error("JobRepository:GetJobByID:Error", "error", err, "job_id", jobID)
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) GetJobsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error) {
	var jobs []entity.JobApplication
	query := `
		SELECT id, user_id, company, position, notes, stage, due_date,
		       google_event_id, created_at, updated_at
		FROM job_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &jobs, query, userID); err != nil {
		logger.Error("JobRepository:GetJobsByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) UpdateJob(ctx context.Context, job *entity.JobApplication) error {
	query := `
		UPDATE job_applications
		SET company = $1, position = $2, notes = $3, stage = $4, due_date = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`
	err := r.db.ExecContext(ctx, query,
		job.Company, job.Position, job.Notes, job.Stage, job.DueDate, job.ID, job.UserID,
	)
	if err != nil {
		logger.Error("JobRepository:UpdateJob:Error", "error", err, "job_id", job.ID)
	}
	return err
}

func (r *jobRepository) DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1 AND user_id = $2`, jobID, userID)
	if err != nil {
		logger.Error("JobRepository:DeleteJob:Error", "error", err, "job_id", jobID)
	}
	return err
}

// UpdateGoogleEventID persists the sync adapter's return value back onto the
// record.
func (r *jobRepository) UpdateGoogleEventID(ctx context.Context, jobID uuid.UUID, eventID *string) error {
	err := r.db.ExecContext(ctx, `UPDATE job_applications SET google_event_id = $1, updated_at = NOW() WHERE id = $2`, eventID, jobID)
	if err != nil {
		logger.Error("JobRepository:UpdateGoogleEventID:Error", "error", err, "job_id", jobID)
	}
	return err
}

// GetJobsDueBetween feeds the deadline-reminder scan. Closed-out applications
// no longer need reminders.
func (r *jobRepository) GetJobsDueBetween(ctx context.Context, from, to time.Time) ([]entity.JobApplication, error) {
	var jobs []entity.JobApplication
	query := `
		SELECT id, user_id, company, position, notes, stage, due_date,
		       google_event_id, created_at, updated_at
		FROM job_applications
		WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date < $2 AND stage != $3
		ORDER BY due_date
	`
	if err := r.db.SelectContext(ctx, &jobs, query, from, to, entity.StageRejected); err != nil {
		logger.Error("JobRepository:GetJobsDueBetween:Error", "error", err)
		return nil, err
	}
	return jobs, nil
}
