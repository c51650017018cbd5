package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	controller *controller.NotificationController
}

func NewNotificationRouter(controller *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		controller: controller,
	}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	notificationRoutes := v1.Group("/private/notifications")
	notificationRoutes.Use(mw.AuthMiddleware())

	notificationRoutes.GET("", r.controller.ListNotifications)
	notificationRoutes.PUT("/read", r.controller.MarkRead)
}
