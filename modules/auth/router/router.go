package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		controller: controller,
	}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/auth")
	publicRoutes.POST("/register", r.controller.Register)
	publicRoutes.POST("/login", r.controller.Login)
	publicRoutes.POST("/refresh", r.controller.RefreshToken)

	privateRoutes := v1.Group("/private/auth")
	privateRoutes.Use(mw.AuthMiddleware())
	privateRoutes.POST("/logout", r.controller.Logout)
	privateRoutes.GET("/me", r.controller.Me)
}
