package controller

import (
	"net/http"
	"net/url"
	"time"

	"go-planner-api/core/config"
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/modules/calendar/dto"
	"go-planner-api/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	service service.CalendarService
	controller.BaseController
}

func NewCalendarController(service service.CalendarService) *CalendarController {
	return &CalendarController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// Connect returns the Google consent URL for the current user.
// GET /api/v1/private/calendar/connect
func (c *CalendarController) Connect(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	authURL, err := c.service.GetAuthorizationURL(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.ConnectURLResponse{URL: authURL}, "Authorization URL generated")
}

// Callback handles the OAuth redirect from Google and bounces the browser
// back to the frontend. This is the interactive flow, so failures are shown
// to the user via redirect query parameters.
// GET /api/v1/public/calendar/callback
func (c *CalendarController) Callback(ctx echo.Context) error {
	frontendURL := "/"
	if cfg, ok := config.GetSafe(); ok {
		frontendURL = cfg.Frontend.BaseURL + "/settings/calendar"
	}

	if providerErr := ctx.QueryParam("error"); providerErr != "" {
		logger.Warn("CalendarController:Callback:ProviderError", "error", providerErr)
		return ctx.Redirect(http.StatusFound, frontendURL+"?error="+url.QueryEscape(providerErr))
	}

	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	if code == "" || state == "" {
		return ctx.Redirect(http.StatusFound, frontendURL+"?error="+url.QueryEscape("missing code or state"))
	}

	if err := c.service.HandleCallback(ctx.Request().Context(), code, state); err != nil {
		msg := "failed to connect Google Calendar"
		if ae, ok := err.(*errors.AppError); ok && ae.Message != "" {
			msg = ae.Message
		}
		return ctx.Redirect(http.StatusFound, frontendURL+"?error="+url.QueryEscape(msg))
	}

	return ctx.Redirect(http.StatusFound, frontendURL+"?connected=1")
}

// Disconnect revokes and wipes the user's Google credentials.
// DELETE /api/v1/private/calendar/connection
func (c *CalendarController) Disconnect(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	if err := c.service.Disconnect(ctx.Request().Context(), userID); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Disconnected successfully")
}

// Status returns the connection and sync state for the current user.
// GET /api/v1/private/calendar/connection
func (c *CalendarController) Status(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	status, err := c.service.GetConnectionStatus(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, status, "Connection status retrieved")
}

// UpdateSettings toggles sync and/or selects the target calendar.
// PUT /api/v1/private/calendar/settings
func (c *CalendarController) UpdateSettings(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if err := c.service.UpdateSettings(ctx.Request().Context(), userID, &req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	status, err := c.service.GetConnectionStatus(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, status, "Settings updated successfully")
}

// ListCalendars enumerates the calendars of the connected account.
// GET /api/v1/private/calendar/calendars
func (c *CalendarController) ListCalendars(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	calendars, err := c.service.ListCalendars(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.CalendarListResponse{Calendars: calendars}, "Calendars retrieved successfully")
}

// GetEvents returns formatted events for the calendar view.
// GET /api/v1/private/calendar/events?start_time=...&end_time=...
func (c *CalendarController) GetEvents(ctx echo.Context) error {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	var from, to *time.Time
	if v := ctx.QueryParam("start_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid start_time format")
		}
		from = &t
	}
	if v := ctx.QueryParam("end_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid end_time format")
		}
		to = &t
	}

	events, err := c.service.GetEvents(ctx.Request().Context(), userID, from, to)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.EventListResponse{Events: events}, "Events retrieved successfully")
}
