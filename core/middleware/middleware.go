package middleware

import (
	"strings"

	"go-planner-api/core/cache"
	"go-planner-api/core/constants"
	"go-planner-api/core/controller"
	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/core/utils"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is where AuthMiddleware stores the authenticated user id.
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the user id on the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "authorization header must be a Bearer token")
			}
			token := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error", "error", err)
					return controller.NewErrorResponse(500, errors.ErrInternalServer, "failed to check token")
				}
				if blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token is blacklisted")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token scope not allowed")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			if claims.Email != nil {
				c.Set(ContextKeyEmail, *claims.Email)
			}
			return next(c)
		}
	}
}
