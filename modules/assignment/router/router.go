package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/assignment/controller"

	"github.com/labstack/echo/v4"
)

type AssignmentRouter struct {
	controller *controller.AssignmentController
}

func NewAssignmentRouter(controller *controller.AssignmentController) *AssignmentRouter {
	return &AssignmentRouter{
		controller: controller,
	}
}

func (r *AssignmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	assignmentRoutes := v1.Group("/private/assignments")
	assignmentRoutes.Use(mw.AuthMiddleware())

	assignmentRoutes.POST("", r.controller.CreateAssignment)
	assignmentRoutes.GET("", r.controller.ListAssignments)
	assignmentRoutes.GET("/:id", r.controller.GetAssignment)
	assignmentRoutes.PUT("/:id", r.controller.UpdateAssignment)
	assignmentRoutes.DELETE("/:id", r.controller.DeleteAssignment)
}
