package task

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/core/storage"
	"go-planner-api/modules/calendar"
	"go-planner-api/modules/task/controller"
	"go-planner-api/modules/task/repository"
	"go-planner-api/modules/task/router"
	"go-planner-api/modules/task/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache, uploader storage.Uploader) {
	// Initialize layers
	repo := repository.NewTaskRepository(&db)
	calendarSvc := calendar.NewService(&db)
	taskService := service.NewTaskService(repo, calendarSvc, uploader)
	taskController := controller.NewTaskController(taskService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewTaskRouter(taskController).Setup(e, mw)
}
