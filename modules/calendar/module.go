package calendar

import (
	"go-planner-api/core/cache"
	"go-planner-api/core/database"
	"go-planner-api/core/middleware"
	"go-planner-api/modules/calendar/controller"
	"go-planner-api/modules/calendar/repository"
	"go-planner-api/modules/calendar/router"
	"go-planner-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, cache cache.Cache) {
	// Initialize layers
	repo := repository.NewCalendarRepository(&db)
	oauthService := service.NewOAuthService(repo)
	gateway := service.NewGoogleEventGateway()
	calendarService := service.NewCalendarService(repo, oauthService, gateway)
	calendarController := controller.NewCalendarController(calendarService)

	mw := middleware.NewMiddleware(cache)

	// Setup routes
	router.NewCalendarRouter(calendarController).Setup(e, mw)
}

// NewService builds a CalendarService for other modules that need the sync
// adapters without the HTTP surface.
func NewService(db database.IDatabase) service.CalendarService {
	repo := repository.NewCalendarRepository(db)
	return service.NewCalendarService(repo, service.NewOAuthService(repo), service.NewGoogleEventGateway())
}
