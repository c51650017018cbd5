package assignment

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/modules/assignment/controller"
	"go-planner-api/modules/assignment/repository"
	"go-planner-api/modules/assignment/router"
	"go-planner-api/modules/assignment/service"
	"go-planner-api/modules/calendar"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	// Initialize layers
	repo := repository.NewAssignmentRepository(&db)
	calendarSvc := calendar.NewService(&db)
	assignmentService := service.NewAssignmentService(repo, calendarSvc)
	assignmentController := controller.NewAssignmentController(assignmentService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewAssignmentRouter(assignmentController).Setup(e, mw)
}
