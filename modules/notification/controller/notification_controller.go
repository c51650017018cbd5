package controller

import (
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/core/params"
	"go-planner-api/modules/notification/dto"
	"go-planner-api/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service service.NotificationService
	controller.BaseController
}

func NewNotificationController(service service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// ListNotifications returns a page of notifications plus the unread count.
// GET /api/v1/private/notifications
func (c *NotificationController) ListNotifications(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	queryParams := params.FromContext(ctx)
	page, unread, err := c.service.List(ctx.Request().Context(), userID, queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(page.Items)),
		TotalItems:    page.TotalItems,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		UnreadCount:   unread,
	}
	for _, n := range page.Items {
		resp.Notifications = append(resp.Notifications, dto.NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.SuccessResponse(ctx, resp, "Notifications retrieved successfully")
}

// MarkRead marks the given notifications as read, or all of them when no ids
// are provided.
// PUT /api/v1/private/notifications/read
func (c *NotificationController) MarkRead(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.MarkReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	var err error
	if len(req.IDs) == 0 {
		err = c.service.MarkAllRead(ctx.Request().Context(), userID)
	} else {
		err = c.service.MarkRead(ctx.Request().Context(), userID, req.IDs)
	}
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Notifications marked read")
}
