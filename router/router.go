package router

import (
	"github.com/labstack/echo/v4"

	"cropcal/pkg/middleware"
)

func New(
	e *echo.Echo,
	calCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Upcoming(echo.Context) error
		Overdue(echo.Context) error
		Progress(echo.Context) error
		Reminders(echo.Context) error
		PatchActivity(echo.Context) error
		Reschedule(echo.Context) error
		Alerts(echo.Context) error
	},
	cropCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Validate(echo.Context) error
	},
	notifCtrl interface {
		List(echo.Context) error
		MarkRead(echo.Context) error
		Summary(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/validate", cropCtrl.Validate)
	api.GET("/crops/:name", cropCtrl.Get)

	api.POST("/calendars", calCtrl.Create)
	api.GET("/calendars", calCtrl.List)
	api.GET("/calendars/:id", calCtrl.Get)

	g := e.Group("/calendars")
	g.GET("/:id/upcoming", calCtrl.Upcoming)
	g.GET("/:id/overdue", calCtrl.Overdue)
	g.GET("/:id/progress", calCtrl.Progress)
	g.GET("/:id/reminders", calCtrl.Reminders)
	g.GET("/:id/alerts", calCtrl.Alerts)
	g.PATCH("/:id/activities", calCtrl.PatchActivity)
	g.POST("/:id/reschedule", calCtrl.Reschedule)

	api.GET("/notifications", notifCtrl.List)
	api.GET("/notifications/summary", notifCtrl.Summary)
	api.POST("/notifications/:id/read", notifCtrl.MarkRead)
	return e
}
