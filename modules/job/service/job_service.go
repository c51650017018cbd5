package service

import (
	"context"

	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	calendarService "go-planner-api/modules/calendar/service"
	"go-planner-api/modules/job/dto"
	"go-planner-api/modules/job/entity"
	"go-planner-api/modules/job/repository"

	"github.com/google/uuid"
)

type JobService interface {
	CreateJob(ctx context.Context, userID uuid.UUID, req *dto.CreateJobRequest) (*entity.JobApplication, error)
	GetJob(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error)
	ListJobs(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error)
	UpdateJob(ctx context.Context, userID, jobID uuid.UUID, req *dto.UpdateJobRequest) (*entity.JobApplication, error)
	DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error
}

type jobService struct {
	repo        repository.JobRepository
	calendarSvc calendarService.CalendarService
}

func NewJobService(repo repository.JobRepository, calendarSvc calendarService.CalendarService) JobService {
	return &jobService{
		repo:        repo,
		calendarSvc: calendarSvc,
	}
}

// CreateJob stores the application and then mirrors its deadline into the
// user's calendar. The domain write is committed first; a failed sync never
// rolls it back.
func (s *jobService) CreateJob(ctx context.Context, userID uuid.UUID, req *dto.CreateJobRequest) (*entity.JobApplication, error) {
	job := &entity.JobApplication{
		UserID:   userID,
		Company:  req.Company,
		Position: req.Position,
		Notes:    req.Notes,
		Stage:    req.Stage,
		DueDate:  req.DueDate,
	}
	if job.Stage == "" {
		job.Stage = entity.StageWishlist
	}

	created, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create job application", err)
	}

	s.syncAndPersist(ctx, userID, created)
	return created, nil
}

func (s *jobService) GetJob(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error) {
	job, err := s.repo.GetJobByID(ctx, userID, jobID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "job application not found", err)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error) {
	jobs, err := s.repo.GetJobsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list job applications", err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, userID, jobID uuid.UUID, req *dto.UpdateJobRequest) (*entity.JobApplication, error) {
	job, err := s.repo.GetJobByID(ctx, userID, jobID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "job application not found", err)
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Notes != nil {
		job.Notes = req.Notes
	}
	if req.Stage != nil {
		job.Stage = *req.Stage
	}
	if req.DueDate != nil {
		job.DueDate = req.DueDate
	}
	if req.ClearDue {
		job.DueDate = nil
	}

	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update job application", err)
	}

	s.syncAndPersist(ctx, userID, job)
	return job, nil
}

// DeleteJob removes the record and then best-effort deletes the mirrored
// event.
func (s *jobService) DeleteJob(ctx context.Context, userID, jobID uuid.UUID) error {
	job, err := s.repo.GetJobByID(ctx, userID, jobID)
	if err != nil {
		return errors.NewAppError(errors.ErrNotFound, "job application not found", err)
	}

	if err := s.repo.DeleteJob(ctx, userID, jobID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete job application", err)
	}

	s.calendarSvc.RemoveEvent(ctx, userID, job.GoogleEventID)
	return nil
}

func (s *jobService) syncAndPersist(ctx context.Context, userID uuid.UUID, job *entity.JobApplication) {
	eventID := s.calendarSvc.SyncJob(ctx, userID, job)
	if eventID == nil {
		return
	}
	if job.GoogleEventID != nil && *job.GoogleEventID == *eventID {
		return
	}
	if err := s.repo.UpdateGoogleEventID(ctx, job.ID, eventID); err != nil {
		logger.Error("JobService:syncAndPersist:UpdateGoogleEventID:Error", "error", err, "job_id", job.ID)
		return
	}
	job.GoogleEventID = eventID
}
