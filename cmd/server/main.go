package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropcal/config"
	"cropcal/database"
	"cropcal/router"

	// Auth
	authCtrlImp "cropcal/pkg/auth/controllerImp"

	// Catalog
	"cropcal/pkg/catalog"
	cropCtrlImp "cropcal/pkg/catalog/controllerImp"

	// Calendar
	"cropcal/pkg/calendar"
	calCtrlImp "cropcal/pkg/calendar/controllerImp"
	calRepoImp "cropcal/pkg/calendar/repositoryImp"

	// Notifications
	notifCtrlImp "cropcal/pkg/notification/controllerImp"
	notifRepoImp "cropcal/pkg/notification/repositoryImp"
	notifSvcImp "cropcal/pkg/notification/serviceImp"

	// Weather + scheduling
	"cropcal/pkg/jobs"
	"cropcal/pkg/scheduler"
	"cropcal/pkg/weather"

	// Health
	healthCtrlImp "cropcal/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Crop catalog (built-in data, optionally extended from sheets)
	cat, err := catalog.LoadFromFiles(cfg.CropsCSV, cfg.ActivitiesCSV, cfg.CatalogXLSX)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	if s := cat.ValidateAll(); s.TotalIssues > 0 {
		log.Printf("catalog warn: %d issue(s) across %d crop(s)", s.TotalIssues, s.CropsValidated)
	}

	// 4) Weather client (mock fallback when no API key is set)
	var wc weather.Client
	if cfg.WeatherAPIKey != "" {
		wc = weather.NewWeatherAPI(cfg.WeatherEndpoint, cfg.WeatherAPIKey)
	} else {
		log.Printf("[weather] no API key configured, using empty mock forecast")
		wc = weather.NewMock(nil, nil)
	}

	// 5) Repos/services
	calRepo := calRepoImp.New(db)
	gen := calendar.NewGenerator(cat)
	sched := scheduler.NewService(wc, calRepo)

	notifRepo := notifRepoImp.New(db)
	notifSvc := notifSvcImp.New(notifRepo)

	// 6) Controllers
	calCtrl := calCtrlImp.New(gen, calRepo, sched, wc)
	cropCtrl := cropCtrlImp.New(cat)
	notifCtrl := notifCtrlImp.New(notifSvc)
	authCtrl := authCtrlImp.NewAuthController()

	// 7) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Background rescheduling + reminder job
	proc := jobs.New(calRepo, sched, notifSvc)
	stop := make(chan struct{})
	go proc.Run(time.Duration(cfg.JobIntervalHours)*time.Hour, stop)

	// 9) Router
	r := router.New(
		e,
		calCtrl,
		cropCtrl,
		notifCtrl,
		authCtrl,
		hCtrl,
	)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
