package controllerImp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropcal/entities"
	"cropcal/pkg/calendar"
	"cropcal/pkg/calendar/controllerImp"
	"cropcal/pkg/calendar/repository"
	"cropcal/pkg/calendar/repositoryImp"
	"cropcal/pkg/catalog"
	"cropcal/pkg/scheduler"
	"cropcal/pkg/weather"
)

type fixture struct {
	ctrl *controllerImp.CalCtrl
	repo repository.CalendarRepository
	e    *echo.Echo
}

func newFixture(t *testing.T, fc *entities.Forecast) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Calendar{}))

	repo := repositoryImp.New(db)
	gen := calendar.NewGenerator(catalog.New())
	wc := weather.NewMock(fc, nil)
	sched := scheduler.NewService(wc, repo)

	return &fixture{
		ctrl: controllerImp.New(gen, repo, sched, wc),
		repo: repo,
		e:    echo.New(),
	}
}

func (f *fixture) request(method, target, body, uid string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.Set("uid", uid)
	return c, rec
}

func TestCreateCalendar(t *testing.T) {
	f := newFixture(t, nil)
	c, rec := f.request(http.MethodPost, "/calendars",
		`{"crop":"Tomato","sowingDate":"2025-01-01","location":{"lat":12.97,"lng":77.59}}`, "U1")

	require.NoError(t, f.ctrl.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var cal entities.Calendar
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cal))
	assert.NotEmpty(t, cal.CalendarID)
	assert.Equal(t, "U1", cal.UserID)
	assert.Equal(t, "2025-04-01", cal.ExpectedHarvestDate)
	assert.Len(t, cal.Activities, 18)

	// Persisted under the returned ID.
	stored, err := f.repo.Load(cal.CalendarID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", stored.Crop)
}

func TestCreateCalendarBadInput(t *testing.T) {
	f := newFixture(t, nil)

	c, rec := f.request(http.MethodPost, "/calendars",
		`{"crop":"Mango","sowingDate":"2025-01-01"}`, "U1")
	require.NoError(t, f.ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown crop")

	c, rec = f.request(http.MethodPost, "/calendars",
		`{"crop":"Tomato","sowingDate":"01/01/2025"}`, "U1")
	require.NoError(t, f.ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid date")
}

func (f *fixture) seed(t *testing.T, uid string) *entities.Calendar {
	t.Helper()
	gen := calendar.NewGenerator(catalog.New())
	cal, err := gen.Generate("Tomato", "2025-01-01", entities.Location{Lat: 12.97, Lng: 77.59}, uid)
	require.NoError(t, err)
	_, err = f.repo.Save(cal)
	require.NoError(t, err)
	return cal
}

func TestGetCalendarOwnership(t *testing.T) {
	f := newFixture(t, nil)
	cal := f.seed(t, "U1")

	c, rec := f.request(http.MethodGet, "/", "", "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Someone else's calendar reads as missing, not forbidden.
	c, rec = f.request(http.MethodGet, "/", "", "U2")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = f.request(http.MethodGet, "/", "", "U1")
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")
	require.NoError(t, f.ctrl.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCalendars(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, "U1")
	f.seed(t, "U1")
	f.seed(t, "U2")

	c, rec := f.request(http.MethodGet, "/calendars", "", "U1")
	require.NoError(t, f.ctrl.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.Calendar
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestPatchActivity(t *testing.T) {
	f := newFixture(t, nil)
	cal := f.seed(t, "U1")

	c, rec := f.request(http.MethodPatch, "/",
		`{"name":"Nursery Irrigation","status":"completed","notes":"done"}`, "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.PatchActivity(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := f.repo.Load(cal.CalendarID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, stored.Activities[1].Status)
	assert.Equal(t, "done", stored.Activities[1].Notes)
}

func TestPatchActivityErrors(t *testing.T) {
	f := newFixture(t, nil)
	cal := f.seed(t, "U1")

	c, rec := f.request(http.MethodPatch, "/",
		`{"name":"Ghost Task","status":"completed"}`, "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.PatchActivity(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = f.request(http.MethodPatch, "/",
		`{"name":"Nursery Irrigation","status":"paused"}`, "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.PatchActivity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRescheduleEndpoint(t *testing.T) {
	// Forecast generation is relative to time.Now inside the handler, so only
	// assert the envelope shape, not specific shifts.
	f := newFixture(t, &entities.Forecast{})
	cal := f.seed(t, "U1")

	c, rec := f.request(http.MethodPost, "/", "", "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.Reschedule(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Calendar   entities.Calendar    `json:"calendar"`
		Evaluation scheduler.Evaluation `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, cal.CalendarID, out.Calendar.CalendarID)
	assert.False(t, out.Evaluation.NeedsRescheduling)
	assert.NotEmpty(t, out.Evaluation.ForecastCheckedAt)
}

func TestAlertsFailOpen(t *testing.T) {
	f := newFixture(t, nil)
	cal := f.seed(t, "U1")

	c, rec := f.request(http.MethodGet, "/", "", "U1")
	c.SetParamNames("id")
	c.SetParamValues(cal.CalendarID)
	require.NoError(t, f.ctrl.Alerts(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
