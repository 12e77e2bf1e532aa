package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcal/pkg/middleware"
)

func runRequest(t *testing.T, mutate func(*http.Request)) (string, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUID string
	h := middleware.DevLogin()(func(c echo.Context) error {
		gotUID = c.Get("uid").(string)
		return nil
	})
	require.NoError(t, h(c))
	return gotUID, rec
}

func TestDevLoginFromCookie(t *testing.T) {
	uid, _ := runRequest(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "CROPCAL_UID", Value: "U42"})
	})
	assert.Equal(t, "U42", uid)
}

func TestDevLoginFromQueryParam(t *testing.T) {
	uid, rec := runRequest(t, func(r *http.Request) {
		r.URL.RawQuery = "uid=U7"
	})
	assert.Equal(t, "U7", uid)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "CROPCAL_UID=U7")
}

func TestDevLoginDefault(t *testing.T) {
	uid, rec := runRequest(t, nil)
	assert.Equal(t, "U_DEV_DEFAULT", uid)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "CROPCAL_UID=U_DEV_DEFAULT")
}
