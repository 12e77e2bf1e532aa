package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "CROPCAL_UID"

// DevLogin resolves the request user from a cookie (or ?uid= during
// development) and stores it on the context. Real authentication sits in
// front of this service; handlers only ever read "uid".
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
