package auth

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/modules/auth/controller"
	"go-planner-api/modules/auth/repository"
	"go-planner-api/modules/auth/router"
	"go-planner-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	// Initialize layers
	repo := repository.NewAuthRepository(&db)
	authService := service.NewAuthService(repo, cache)
	authController := controller.NewAuthController(authService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewAuthRouter(authController).Setup(e, mw)
}
