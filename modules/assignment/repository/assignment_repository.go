package repository

import (
	"context"
	"database/sql"
	"time"

	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/modules/assignment/entity"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error)
	GetAssignmentByID(ctx context.Context, userID, assignmentID uuid.UUID) (*entity.Assignment, error)
	GetAssignmentsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment *entity.Assignment) error
	DeleteAssignment(ctx context.Context, userID, assignmentID uuid.UUID) error
	UpdateGoogleEventID(ctx context.Context, assignmentID uuid.UUID, eventID *string) error
	GetAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]entity.Assignment, error)
}

type assignmentRepository struct {
	db database.IDatabase
}

func NewAssignmentRepository(db database.IDatabase) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	query := `
		INSERT INTO assignments (user_id, course, title, notes, status, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		assignment.UserID, assignment.Course, assignment.Title,
		assignment.Notes, assignment.Status, assignment.Deadline,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		logger.Error("AssignmentRepository:CreateAssignment:Error", "error", err, "user_id", assignment.UserID)
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepository) GetAssignmentByID(ctx context.Context, userID, assignmentID uuid.UUID) (*entity.Assignment, error) {
	var assignment entity.Assignment
	query := `
		SELECT id, user_id, course, title, notes, status, deadline,
		       google_event_id, created_at, updated_at
		FROM assignments
		WHERE id = $1 AND user_id = $2
	`
	if err := r.db.GetContext(ctx, &assignment, query, assignmentID, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		logger.Error("AssignmentRepository:GetAssignmentByID:Error", "error", err, "assignment_id", assignmentID)
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) GetAssignmentsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	query := `
		SELECT id, user_id, course, title, notes, status, deadline,
		       google_event_id, created_at, updated_at
		FROM assignments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &assignments, query, userID); err != nil {
		logger.Error("AssignmentRepository:GetAssignmentsByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) UpdateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	query := `
		UPDATE assignments
		SET course = $1, title = $2, notes = $3, status = $4, deadline = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`
	err := r.db.ExecContext(ctx, query,
		assignment.Course, assignment.Title, assignment.Notes,
		assignment.Status, assignment.Deadline, assignment.ID, assignment.UserID,
	)
	if err != nil {
		logger.Error("AssignmentRepository:UpdateAssignment:Error", "error", err, "assignment_id", assignment.ID)
	}
	return err
}

func (r *assignmentRepository) DeleteAssignment(ctx context.Context, userID, assignmentID uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1 AND user_id = $2`, assignmentID, userID)
	if err != nil {
		logger.Error("AssignmentRepository:DeleteAssignment:Error", "error", err, "assignment_id", assignmentID)
	}
	return err
}

// UpdateGoogleEventID persists the sync adapter's return value back onto the
// record.
func (r *assignmentRepository) UpdateGoogleEventID(ctx context.Context, assignmentID uuid.UUID, eventID *string) error {
	err := r.db.ExecContext(ctx, `UPDATE assignments SET google_event_id = $1, updated_at = NOW() WHERE id = $2`, eventID, assignmentID)
	if err != nil {
		logger.Error("AssignmentRepository:UpdateGoogleEventID:Error", "error", err, "assignment_id", assignmentID)
	}
	return err
}

// GetAssignmentsDueBetween feeds the deadline-reminder scan.
func (r *assignmentRepository) GetAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	query := `
		SELECT id, user_id, course, title, notes, status, deadline,
		       google_event_id, created_at, updated_at
		FROM assignments
		WHERE deadline IS NOT NULL AND deadline >= $1 AND deadline < $2 AND status = $3
		ORDER BY deadline
	`
	if err := r.db.SelectContext(ctx, &assignments, query, from, to, entity.StatusPending); err != nil {
		logger.Error("AssignmentRepository:GetAssignmentsDueBetween:Error", "error", err)
		return nil, err
	}
	return assignments, nil
}
