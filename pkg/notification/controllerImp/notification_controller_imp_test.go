package controllerImp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropcal/entities"
	"cropcal/pkg/notification/controllerImp"
	"cropcal/pkg/notification/repositoryImp"
	"cropcal/pkg/notification/service"
	"cropcal/pkg/notification/serviceImp"
)

func setup(t *testing.T) (*controllerImp.NotifCtrl, service.NotificationService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Notification{}))
	svc := serviceImp.New(repositoryImp.New(db))
	return controllerImp.New(svc), svc
}

func seed(t *testing.T, svc service.NotificationService, uid, priority string) {
	t.Helper()
	r := entities.Reminder{
		ActivityName: "Transplanting",
		ActivityDate: "2025-01-26",
		ReminderType: entities.ReminderOneDayBefore,
		Priority:     priority,
	}
	cal := &entities.Calendar{CalendarID: "CAL1", UserID: uid, Crop: "Tomato"}
	require.NoError(t, svc.CreateFromReminder(r, cal))
}

func ctx(t *testing.T, method, target, uid string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uid)
	return c, rec
}

func TestListNotifications(t *testing.T) {
	ctrl, svc := setup(t)
	seed(t, svc, "U1", entities.PriorityHigh)
	seed(t, svc, "U2", entities.PriorityHigh)

	c, rec := ctx(t, http.MethodGet, "/notifications", "U1")
	require.NoError(t, ctrl.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Tomorrow: Transplanting", out[0].Title)
	assert.Equal(t, "CAL1", out[0].CalendarID)
}

func TestMarkReadEndpoint(t *testing.T) {
	ctrl, svc := setup(t)
	seed(t, svc, "U1", entities.PriorityHigh)

	list, err := svc.List("U1", true, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	c, rec := ctx(t, http.MethodPost, "/", "U1")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, ctrl.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	list, err = svc.List("U1", true, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	c, rec = ctx(t, http.MethodPost, "/", "U1")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, ctrl.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	ctrl, svc := setup(t)
	seed(t, svc, "U1", entities.PriorityUrgent)
	seed(t, svc, "U1", entities.PriorityMedium)

	c, rec := ctx(t, http.MethodGet, "/notifications/summary", "U1")
	require.NoError(t, ctrl.Summary(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var s service.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "U1", s.UserID)
	assert.EqualValues(t, 2, s.TotalUnread)
	assert.EqualValues(t, 1, s.UrgentUnread)
}
