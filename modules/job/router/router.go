package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/job/controller"

	"github.com/labstack/echo/v4"
)

type JobRouter struct {
	controller *controller.JobController
}

func NewJobRouter(controller *controller.JobController) *JobRouter {
	return &JobRouter{
		controller: controller,
	}
}

func (r *JobRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	jobRoutes := v1.Group("/private/jobs")
	jobRoutes.Use(mw.AuthMiddleware())

	jobRoutes.POST("", r.controller.CreateJob)
	jobRoutes.GET("", r.controller.ListJobs)
	jobRoutes.GET("/:id", r.controller.GetJob)
	jobRoutes.PUT("/:id", r.controller.UpdateJob)
	jobRoutes.DELETE("/:id", r.controller.DeleteJob)
}
