package service

import (
	"context"
	"io"

	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/core/storage"
	calendarService "go-planner-api/modules/calendar/service"
	"go-planner-api/modules/task/dto"
	"go-planner-api/modules/task/entity"
	"go-planner-api/modules/task/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*entity.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	UploadAttachment(ctx context.Context, userID, taskID uuid.UUID, filename, contentType string, body io.Reader) (string, error)

	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*entity.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]entity.Project, error)
}

type taskService struct {
	repo        repository.TaskRepository
	calendarSvc calendarService.CalendarService
	uploader    storage.Uploader
}

func NewTaskService(repo repository.TaskRepository, calendarSvc calendarService.CalendarService, uploader storage.Uploader) TaskService {
	return &taskService{
		repo:        repo,
		calendarSvc: calendarSvc,
		uploader:    uploader,
	}
}

// CreateTask stores the task and then mirrors it into the user's calendar.
// The domain write is committed first; a failed sync never rolls it back.
func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*entity.Task, error) {
	task := &entity.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}
	if task.Status == "" {
		task.Status = entity.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid project_id", err)
		}
		task.ProjectID = &projectID
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create task", err)
	}

	s.syncAndPersist(ctx, userID, created)
	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "task not found", err)
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]entity.Task, error) {
	tasks, err := s.repo.GetTasksByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*entity.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "task not found", err)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.ClearDue {
		task.DueDate = nil
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid project_id", err)
		}
		task.ProjectID = &projectID
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update task", err)
	}

	s.syncAndPersist(ctx, userID, task)
	return task, nil
}

// DeleteTask removes the record and then best-effort deletes the mirrored
// event. The local delete has already happened by the time the calendar call
// runs, so calendar failures are invisible here.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.repo.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return errors.NewAppError(errors.ErrNotFound, "task not found", err)
	}

	if err := s.repo.DeleteTask(ctx, userID, taskID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete task", err)
	}

	s.calendarSvc.RemoveEvent(ctx, userID, task.GoogleEventID)
	return nil
}

func (s *taskService) UploadAttachment(ctx context.Context, userID, taskID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "attachment storage is not configured", nil)
	}

	task, err := s.repo.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrNotFound, "task not found", err)
	}

	url, err := s.uploader.Upload(ctx, "attachments/"+userID.String(), filename, contentType, body)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to upload attachment", err)
	}

	if err := s.repo.UpdateAttachmentURL(ctx, task.ID, url); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to save attachment url", err)
	}
	return url, nil
}

func (s *taskService) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*entity.Project, error) {
	project := &entity.Project{
		UserID: userID,
		Name:   req.Name,
		Slug:   slug.Make(req.Name),
	}
	created, err := s.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create project", err)
	}
	return created, nil
}

func (s *taskService) ListProjects(ctx context.Context, userID uuid.UUID) ([]entity.Project, error) {
	projects, err := s.repo.GetProjectsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list projects", err)
	}
	return projects, nil
}

// syncAndPersist mirrors the task into the calendar and writes the returned
// event id back onto the record when it changed. A nil result with an
// existing id means "skipped or failed"; the stored id is kept.
func (s *taskService) syncAndPersist(ctx context.Context, userID uuid.UUID, task *entity.Task) {
	eventID := s.calendarSvc.SyncTask(ctx, userID, task)
	if eventID == nil {
		return
	}
	if task.GoogleEventID != nil && *task.GoogleEventID == *eventID {
		return
	}
	if err := s.repo.UpdateGoogleEventID(ctx, task.ID, eventID); err != nil {
		logger.Error("TaskService:syncAndPersist:UpdateGoogleEventID:Error", "error", err, "task_id", task.ID)
		return
	}
	task.GoogleEventID = eventID
}
