package notification

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/core/queue"
	assignmentRepo "go-planner-api/modules/assignment/repository"
	jobRepo "go-planner-api/modules/job/repository"
	"go-planner-api/modules/notification/controller"
	"go-planner-api/modules/notification/repository"
	"go-planner-api/modules/notification/router"
	"go-planner-api/modules/notification/service"
	taskRepo "go-planner-api/modules/task/repository"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache, mux *asynq.ServeMux) {
	// Initialize layers
	repo := repository.NewNotificationRepository(&db)
	notificationService := service.NewNotificationService(repo)
	notificationController := controller.NewNotificationController(notificationService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewNotificationRouter(notificationController).Setup(e, mw)

	// Register the deadline-reminder worker
	reminder := service.NewReminderService(
		notificationService,
		taskRepo.NewTaskRepository(&db),
		assignmentRepo.NewAssignmentRepository(&db),
		jobRepo.NewJobRepository(&db),
		cache,
	)
	mux.HandleFunc(queue.TypeDeadlineScan, reminder.HandleDeadlineScan)
}
