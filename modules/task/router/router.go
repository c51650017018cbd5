package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/task/controller"

	"github.com/labstack/echo/v4"
)

type TaskRouter struct {
	controller *controller.TaskController
}

func NewTaskRouter(controller *controller.TaskController) *TaskRouter {
	return &TaskRouter{
		controller: controller,
	}
}

func (r *TaskRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	taskRoutes := v1.Group("/private/tasks")
	taskRoutes.Use(mw.AuthMiddleware())

	taskRoutes.POST("", r.controller.CreateTask)
	taskRoutes.GET("", r.controller.ListTasks)
	taskRoutes.GET("/:id", r.controller.GetTask)
	taskRoutes.PUT("/:id", r.controller.UpdateTask)
	taskRoutes.DELETE("/:id", r.controller.DeleteTask)
	taskRoutes.POST("/:id/attachment", r.controller.UploadAttachment)

	projectRoutes := v1.Group("/private/projects")
	projectRoutes.Use(mw.AuthMiddleware())

	projectRoutes.POST("", r.controller.CreateProject)
	projectRoutes.GET("", r.controller.ListProjects)
}
