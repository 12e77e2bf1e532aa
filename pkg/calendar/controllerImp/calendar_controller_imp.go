package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cropcal/entities"
	"cropcal/pkg/calendar"
	"cropcal/pkg/calendar/repository"
	"cropcal/pkg/catalog"
	"cropcal/pkg/reminder"
	"cropcal/pkg/scheduler"
	"cropcal/pkg/weather"
)

type CalCtrl struct {
	gen     *calendar.Generator
	repo    repository.CalendarRepository
	sched   *scheduler.Service
	weather weather.Client
}

func New(gen *calendar.Generator, repo repository.CalendarRepository, sched *scheduler.Service, w weather.Client) *CalCtrl {
	return &CalCtrl{gen: gen, repo: repo, sched: sched, weather: w}
}

type createReq struct {
	Crop       string            `json:"crop"`
	SowingDate string            `json:"sowingDate"`
	Location   entities.Location `json:"location"`
}

func (h *CalCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cal, err := h.gen.Generate(req.Crop, req.SowingDate, req.Location, uid)
	if err != nil {
		var unknown *catalog.UnknownCropError
		var badDate *calendar.InvalidDateError
		if errors.As(err, &unknown) || errors.As(err, &badDate) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if _, err := h.repo.Save(cal); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cal)
}

func (h *CalCtrl) Get(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, cal)
}

func (h *CalCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CalCtrl) Upcoming(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	days := 7
	if q := c.QueryParam("days"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 {
			days = v
		}
	}
	return c.JSON(http.StatusOK, calendar.UpcomingActivities(cal, time.Now(), days))
}

func (h *CalCtrl) Overdue(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, calendar.OverdueActivities(cal, time.Now()))
}

func (h *CalCtrl) Progress(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, calendar.CalendarProgress(cal, time.Now()))
}

func (h *CalCtrl) Reminders(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	if c.QueryParam("due") == "today" {
		return c.JSON(http.StatusOK, reminder.DueToday(cal, time.Now()))
	}
	return c.JSON(http.StatusOK, reminder.Plan(cal, time.Now()))
}

type patchActivityReq struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *CalCtrl) PatchActivity(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	var req patchActivityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := calendar.UpdateActivityStatus(cal, req.Name, req.Status, req.Notes, time.Now()); err != nil {
		var notFound *calendar.ActivityNotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if _, err := h.repo.Save(cal); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cal)
}

// Reschedule runs one weather evaluation pass for the calendar and applies
// any recommended date shifts.
func (h *CalCtrl) Reschedule(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	updated, eval, err := h.sched.RunOnce(cal, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"calendar": updated, "evaluation": eval})
}

func (h *CalCtrl) Alerts(c echo.Context) error {
	cal, ok := h.owned(c)
	if !ok {
		return nil
	}
	alerts, err := h.weather.Alerts(cal.Location.Lat, cal.Location.Lng)
	if err != nil {
		// fail-open: alert lookup failures surface as no alerts
		return c.JSON(http.StatusOK, []entities.WeatherAlert{})
	}
	if alerts == nil {
		alerts = []entities.WeatherAlert{}
	}
	return c.JSON(http.StatusOK, alerts)
}

// owned loads the calendar in :id and enforces that it belongs to the request
// uid. On failure it writes the error response and returns ok=false.
func (h *CalCtrl) owned(c echo.Context) (*entities.Calendar, bool) {
	uid := c.Get("uid").(string)
	cal, err := h.repo.Load(c.Param("id"))
	if err != nil || cal.UserID != uid {
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		return nil, false
	}
	return cal, true
}
