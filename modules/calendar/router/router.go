package router

import (
	"go-planner-api/core/middleware"
	"go-planner-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		controller: controller,
	}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// The OAuth redirect arrives unauthenticated
	v1.GET("/public/calendar/callback", r.controller.Callback)

	calendarRoutes := v1.Group("/private/calendar")
	calendarRoutes.Use(mw.AuthMiddleware())

	calendarRoutes.GET("/connect", r.controller.Connect)
	calendarRoutes.GET("/connection", r.controller.Status)
	calendarRoutes.DELETE("/connection", r.controller.Disconnect)
	calendarRoutes.PUT("/settings", r.controller.UpdateSettings)
	calendarRoutes.GET("/calendars", r.controller.ListCalendars)
	calendarRoutes.GET("/events", r.controller.GetEvents)
}
