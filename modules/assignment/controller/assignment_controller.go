package controller

import (
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/modules/assignment/dto"
	"go-planner-api/modules/assignment/entity"
	"go-planner-api/modules/assignment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AssignmentController struct {
	service service.AssignmentService
	controller.BaseController
}

func NewAssignmentController(service service.AssignmentService) *AssignmentController {
	return &AssignmentController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

func toAssignmentResponse(a *entity.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:        a.ID.String(),
		Course:    a.Course,
		Title:     a.Title,
		Notes:     a.Notes,
		Status:    a.Status,
		Deadline:  a.Deadline,
		Synced:    a.GoogleEventID != nil && *a.GoogleEventID != "",
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateAssignment creates an assignment and mirrors it into the connected
// calendar.
// POST /api/v1/private/assignments
func (c *AssignmentController) CreateAssignment(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Title == "" {
		return c.BadRequest(errors.ErrInvalidInput, "title is required")
	}

	assignment, err := c.service.CreateAssignment(ctx.Request().Context(), userID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toAssignmentResponse(assignment), "Assignment created successfully")
}

// GetAssignment returns one assignment.
// GET /api/v1/private/assignments/:id
func (c *AssignmentController) GetAssignment(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	assignmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid assignment id")
	}

	assignment, err := c.service.GetAssignment(ctx.Request().Context(), userID, assignmentID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toAssignmentResponse(assignment), "Assignment retrieved successfully")
}

// ListAssignments returns all assignments of the current user.
// GET /api/v1/private/assignments
func (c *AssignmentController) ListAssignments(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	assignments, err := c.service.ListAssignments(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.AssignmentListResponse{Assignments: make([]dto.AssignmentResponse, 0, len(assignments))}
	for i := range assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(&assignments[i]))
	}
	return c.SuccessResponse(ctx, resp, "Assignments retrieved successfully")
}

// UpdateAssignment updates an assignment and re-syncs its calendar mirror.
// PUT /api/v1/private/assignments/:id
func (c *AssignmentController) UpdateAssignment(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	assignmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid assignment id")
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	assignment, err := c.service.UpdateAssignment(ctx.Request().Context(), userID, assignmentID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toAssignmentResponse(assignment), "Assignment updated successfully")
}

// DeleteAssignment deletes an assignment and best-effort removes its calendar
// mirror.
// DELETE /api/v1/private/assignments/:id
func (c *AssignmentController) DeleteAssignment(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	assignmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid assignment id")
	}

	if err := c.service.DeleteAssignment(ctx.Request().Context(), userID, assignmentID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Assignment deleted successfully")
}
