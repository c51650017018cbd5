package job

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/modules/calendar"
	"go-planner-api/modules/job/controller"
	"go-planner-api/modules/job/repository"
	"go-planner-api/modules/job/router"
	"go-planner-api/modules/job/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	// Initialize layers
	repo := repository.NewJobRepository(&db)
	calendarSvc := calendar.NewService(&db)
	jobService := service.NewJobService(repo, calendarSvc)
	jobController := controller.NewJobController(jobService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewJobRouter(jobController).Setup(e, mw)
}
