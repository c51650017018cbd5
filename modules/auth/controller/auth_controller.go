package controller

import (
	"strings"

	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	coremw "go-planner-api/core/middleware"
	"go-planner-api/modules/auth/dto"
	"go-planner-api/modules/auth/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
	controller.BaseController
}

func NewAuthController(service service.AuthService) *AuthController {
	return &AuthController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Register creates a new account and returns a token pair.
// POST /api/v1/public/auth/register
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return c.BadRequest(errors.ErrInvalidInput, "email and password are required")
	}

	tokens, err := c.service.Register(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tokens, "Registered successfully")
}

// Login authenticates with email and password.
// POST /api/v1/public/auth/login
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	tokens, err := c.service.Login(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tokens, "Logged in successfully")
}

// RefreshToken rotates a refresh token into a new pair.
// POST /api/v1/public/auth/refresh
func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return c.BadRequest(errors.ErrInvalidInput, "refresh_token is required")
	}

	tokens, err := c.service.RefreshToken(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tokens, "Token refreshed successfully")
}

// Logout blacklists the presented access token.
// POST /api/v1/private/auth/logout
func (c *AuthController) Logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Missing token")
	}

	if err := c.service.Logout(ctx.Request().Context(), token); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}

// Me returns the current user's profile.
// GET /api/v1/private/auth/me
func (c *AuthController) Me(ctx echo.Context) error {
	userID, ok := ctx.Get(coremw.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Invalid user")
	}

	user, err := c.service.Me(ctx.Request().Context(), userID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, user, "User retrieved successfully")
}
