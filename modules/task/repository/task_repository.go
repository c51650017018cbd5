package repository

import (
	"context"
	"database/sql"
	"time"

	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/modules/task/entity"

	"github.com/google/uuid"
)

type TaskRepository interface {
	// Tasks
	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)
	GetTasksByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task) error
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	UpdateGoogleEventID(ctx context.Context, taskID uuid.UUID, eventID *string) error
	UpdateAttachmentURL(ctx context.Context, taskID uuid.UUID, attachmentURL string) error
	GetTasksDueBetween(ctx context.Context, from, to time.Time) ([]entity.Task, error)

	// Projects
	CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetProjectsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Project, error)
}

type taskRepository struct {
	db database.IDatabase
}

func NewTaskRepository(db database.IDatabase) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `
		INSERT INTO tasks (user_id, project_id, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		task.UserID, task.ProjectID, task.Title, task.Description,
		task.Status, task.Priority, task.DueDate,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		logger.Error("TaskRepository:CreateTask:Error", "error", err, "user_id", task.UserID)
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) GetTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	query := `
		SELECT id, user_id, project_id, title, description, status, priority, due_date,
		       google_event_id, attachment_url, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	if err := r.db.GetContext(ctx, &task, query, taskID, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		logger.Error("TaskRepository:GetTaskByID:Error", "error", err, "task_id", taskID)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetTasksByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Task, error) {
	var tasks []entity.Task
	query := `
		SELECT id, user_id, project_id, title, description, status, priority, due_date,
		       google_event_id, attachment_url, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		logger.Error("TaskRepository:GetTasksByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET project_id = $1, title = $2, description = $3, status = $4,
		    priority = $5, due_date = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
	`
	err := r.db.ExecContext(ctx, query,
		task.ProjectID, task.Title, task.Description, task.Status,
		task.Priority, task.DueDate, task.ID, task.UserID,
	)
	if err != nil {
		logger.Error("TaskRepository:UpdateTask:Error", "error", err, "task_id", task.ID)
	}
	return err
}

func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		logger.Error("TaskRepository:DeleteTask:Error", "error", err, "task_id", taskID)
	}
	return err
}

// UpdateGoogleEventID persists the sync adapter's return value back onto the
// record.
func (r *taskRepository) UpdateGoogleEventID(ctx context.Context, taskID uuid.UUID, eventID *string) error {
	err := r.db.ExecContext(ctx, `UPDATE tasks SET google_event_id = $1, updated_at = NOW() WHERE id = $2`, eventID, taskID)
	if err != nil {
		logger.Error("TaskRepository:UpdateGoogleEventID:Error", "error", err, "task_id", taskID)
	}
	return err
}

func (r *taskRepository) UpdateAttachmentURL(ctx context.Context, taskID uuid.UUID, attachmentURL string) error {
	err := r.db.ExecContext(ctx, `UPDATE tasks SET attachment_url = $1, updated_at = NOW() WHERE id = $2`, attachmentURL, taskID)
	if err != nil {
		logger.Error("TaskRepository:UpdateAttachmentURL:Error", "error", err, "task_id", taskID)
	}
	return err
}

// GetTasksDueBetween feeds the deadline-reminder scan.
func (r *taskRepository) GetTasksDueBetween(ctx context.Context, from, to time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	query := `
		SELECT id, user_id, project_id, title, description, status, priority, due_date,
		       google_event_id, attachment_url, created_at, updated_at
		FROM tasks
		WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date < $2 AND status != $3
		ORDER BY due_date
	`
	if err := r.db.SelectContext(ctx, &tasks, query, from, to, entity.StatusDone); err != nil {
		logger.Error("TaskRepository:GetTasksDueBetween:Error", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	query := `
		INSERT INTO projects (user_id, name, slug)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, project.UserID, project.Name, project.Slug).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		logger.Error("TaskRepository:CreateProject:Error", "error", err, "user_id", project.UserID)
		return nil, err
	}
	return project, nil
}

func (r *taskRepository) GetProjectsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Project, error) {
	var projects []entity.Project
	query := `
		SELECT id, user_id, name, slug, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &projects, query, userID); err != nil {
		logger.Error("TaskRepository:GetProjectsByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return projects, nil
}
