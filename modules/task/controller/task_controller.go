package controller

import (
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/modules/task/dto"
	"go-planner-api/modules/task/entity"
	"go-planner-api/modules/task/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TaskController struct {
	service service.TaskService
	controller.BaseController
}

func NewTaskController(service service.TaskService) *TaskController {
	return &TaskController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

func toTaskResponse(task *entity.Task) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:            task.ID.String(),
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		DueDate:       task.DueDate,
		Synced:        task.GoogleEventID != nil && *task.GoogleEventID != "",
		AttachmentURL: task.AttachmentURL,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
	if task.ProjectID != nil {
		id := task.ProjectID.String()
		resp.ProjectID = &id
	}
	return resp
}

// CreateTask creates a task and mirrors it into the connected calendar.
// POST /api/v1/private/tasks
func (c *TaskController) CreateTask(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Title == "" {
		return c.BadRequest(errors.ErrInvalidInput, "title is required")
	}

	task, err := c.service.CreateTask(ctx.Request().Context(), userID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toTaskResponse(task), "Task created successfully")
}

// GetTask returns one task.
// GET /api/v1/private/tasks/:id
func (c *TaskController) GetTask(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task id")
	}

	task, err := c.service.GetTask(ctx.Request().Context(), userID, taskID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toTaskResponse(task), "Task retrieved successfully")
}

// ListTasks returns all tasks of the current user.
// GET /api/v1/private/tasks
func (c *TaskController) ListTasks(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	tasks, err := c.service.ListTasks(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.TaskListResponse{Tasks: make([]dto.TaskResponse, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	return c.SuccessResponse(ctx, resp, "Tasks retrieved successfully")
}

// UpdateTask updates a task and re-syncs its calendar mirror.
// PUT /api/v1/private/tasks/:id
func (c *TaskController) UpdateTask(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	task, err := c.service.UpdateTask(ctx.Request().Context(), userID, taskID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, toTaskResponse(task), "Task updated successfully")
}

// DeleteTask deletes a task and best-effort removes its calendar mirror.
// DELETE /api/v1/private/tasks/:id
func (c *TaskController) DeleteTask(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task id")
	}

	if err := c.service.DeleteTask(ctx.Request().Context(), userID, taskID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Task deleted successfully")
}

// UploadAttachment stores a file on S3 and links it to the task.
// POST /api/v1/private/tasks/:id/attachment
func (c *TaskController) UploadAttachment(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid task id")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to read file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.service.UploadAttachment(ctx.Request().Context(), userID, taskID, fileHeader.Filename, contentType, file)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.AttachmentResponse{AttachmentURL: url}, "Attachment uploaded successfully")
}

// CreateProject creates a board.
// POST /api/v1/private/projects
func (c *TaskController) CreateProject(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Name == "" {
		return c.BadRequest(errors.ErrInvalidInput, "name is required")
	}

	project, err := c.service.CreateProject(ctx.Request().Context(), userID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.ProjectResponse{
		ID:   project.ID.String(),
		Name: project.Name,
		Slug: project.Slug,
	}, "Project created successfully")
}

// ListProjects returns the user's boards.
// GET /api/v1/private/projects
func (c *TaskController) ListProjects(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	projects, err := c.service.ListProjects(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.ProjectListResponse{Projects: make([]dto.ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, dto.ProjectResponse{
			ID:   p.ID.String(),
			Name: p.Name,
			Slug: p.Slug,
		})
	}
	return c.SuccessResponse(ctx, resp, "Projects retrieved successfully")
}
