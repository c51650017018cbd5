package service

import (
	"context"

	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/modules/assignment/dto"
	"go-planner-api/modules/assignment/entity"
	"go-planner-api/modules/assignment/repository"
	calendarService "go-planner-api/modules/calendar/service"

	"github.com/google/uuid"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, userID uuid.UUID, req *dto.CreateAssignmentRequest) (*entity.Assignment, error)
	GetAssignment(ctx context.Context, userID, assignmentID uuid.UUID) (*entity.Assignment, error)
	ListAssignments(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error)
	UpdateAssignment(ctx context.Context, userID, assignmentID uuid.UUID, req *dto.UpdateAssignmentRequest) (*entity.Assignment, error)
	DeleteAssignment(ctx context.Context, userID, assignmentID uuid.UUID) error
}

type assignmentService struct {
	repo        repository.AssignmentRepository
	calendarSvc calendarService.CalendarService
}

func NewAssignmentService(repo repository.AssignmentRepository, calendarSvc calendarService.CalendarService) AssignmentService {
	return &assignmentService{
		repo:        repo,
		calendarSvc: calendarSvc,
	}
}

// CreateAssignment stores the assignment and then mirrors it into the user's
// calendar. The domain write is committed first; a failed sync never rolls it
// back.
func (s *assignmentService) CreateAssignment(ctx context.Context, userID uuid.UUID, req *dto.CreateAssignmentRequest) (*entity.Assignment, error) {
	assignment := &entity.Assignment{
		UserID:   userID,
		Course:   req.Course,
		Title:    req.Title,
		Notes:    req.Notes,
		Status:   req.Status,
		Deadline: req.Deadline,
	}
	if assignment.Status == "" {
		assignment.Status = entity.StatusPending
	}

	created, err := s.repo.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create assignment", err)
	}

	s.syncAndPersist(ctx, userID, created)
	return created, nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, userID, assignmentID uuid.UUID) (*entity.Assignment, error) {
	assignment, err := s.repo.GetAssignmentByID(ctx, userID, assignmentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "assignment not found", err)
	}
	return assignment, nil
}

func (s *assignmentService) ListAssignments(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error) {
	assignments, err := s.repo.GetAssignmentsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list assignments", err)
	}
	return assignments, nil
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, userID, assignmentID uuid.UUID, req *dto.UpdateAssignmentRequest) (*entity.Assignment, error) {
	assignment, err := s.repo.GetAssignmentByID(ctx, userID, assignmentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "assignment not found", err)
	}

	if req.Course != nil {
		assignment.Course = *req.Course
	}
	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Notes != nil {
		assignment.Notes = req.Notes
	}
	if req.Status != nil {
		assignment.Status = *req.Status
	}
	if req.Deadline != nil {
		assignment.Deadline = req.Deadline
	}
	if req.ClearDeadline {
		assignment.Deadline = nil
	}

	if err := s.repo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update assignment", err)
	}

	s.syncAndPersist(ctx, userID, assignment)
	return assignment, nil
}

// DeleteAssignment removes the record and then best-effort deletes the
// mirrored event.
func (s *assignmentService) DeleteAssignment(ctx context.Context, userID, assignmentID uuid.UUID) error {
	assignment, err := s.repo.GetAssignmentByID(ctx, userID, assignmentID)
	if err != nil {
		return errors.NewAppError(errors.ErrNotFound, "assignment not found", err)
	}

	if err := s.repo.DeleteAssignment(ctx, userID, assignmentID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete assignment", err)
	}

	s.calendarSvc.RemoveEvent(ctx, userID, assignment.GoogleEventID)
	return nil
}

func (s *assignmentService) syncAndPersist(ctx context.Context, userID uuid.UUID, assignment *entity.Assignment) {
	eventID := s.calendarSvc.SyncAssignment(ctx, userID, assignment)
	if eventID == nil {
		return
	}
	if assignment.GoogleEventID != nil && *assignment.GoogleEventID == *eventID {
		return
	}
	if err := s.repo.UpdateGoogleEventID(ctx, assignment.ID, eventID); err != nil {
		logger.Error("AssignmentService:syncAndPersist:UpdateGoogleEventID:Error", "error", err, "assignment_id", assignment.ID)
		return
	}
	assignment.GoogleEventID = eventID
}
