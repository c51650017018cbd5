package controller

import (
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/modules/job/dto"
	"go-planner-api/modules/job/entity"
	"go-planner-api/modules/job/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type JobController struct {
	service service.JobService
	controller.BaseController
}

func NewJobController(service service.JobService) *JobController {
	return &JobController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

func toJobResponse(j *entity.JobApplication) dto.JobResponse {
	return dto.JobResponse{
		ID:        j.ID.String(),
		Company:   j.Company,
		Position:  j.Position,
		Notes:     j.Notes,
		Stage:     j.Stage,
		DueDate:   j.DueDate,
		Synced:    j.GoogleEventID != nil && *j.GoogleEventID != "",
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// CreateJob creates a job application and mirrors its deadline into the
// connected calendar.
// POST /api/v1/private/jobs
func (c *JobController) CreateJob(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Company == "" || req.Position == "" {
		return c.BadRequest(errors.ErrInvalidInput, "company and position are required")
	}

	job, err := c.service.CreateJob(ctx.Request().Context(), userID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toJobResponse(job), "Job application created successfully")
}

// GetJob returns one job application.
// GET /api/v1/private/jobs/:id
func (c *JobController) GetJob(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id")
	}

	job, err := c.service.GetJob(ctx.Request().Context(), userID, jobID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toJobResponse(job), "Job application retrieved successfully")
}

// ListJobs returns all job applications of the current user.
// GET /api/v1/private/jobs
func (c *JobController) ListJobs(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	jobs, err := c.service.ListJobs(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.JobListResponse{Jobs: make([]dto.JobResponse, 0, len(jobs))}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(&jobs[i]))
	}
	return c.SuccessResponse(ctx, resp, "Job applications retrieved successfully")
}

// UpdateJob updates a job application and re-syncs its calendar mirror.
// PUT /api/v1/private/jobs/:id
func (c *JobController) UpdateJob(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id")
	}

	var req dto.UpdateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	job, err := c.service.UpdateJob(ctx.Request().Context(), userID, jobID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toJobResponse(job), "Job application updated successfully")
}

// DeleteJob deletes a job application and best-effort removes its calendar
// mirror.
// DELETE /api/v1/private/jobs/:id
func (c *JobController) DeleteJob(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id")
	}

	if err := c.service.DeleteJob(ctx.Request().Context(), userID, jobID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Job application deleted successfully")
}
