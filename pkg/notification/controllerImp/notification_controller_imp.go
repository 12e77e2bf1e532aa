package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	svc "cropcal/pkg/notification/service"
)

type NotifCtrl struct{ svc svc.NotificationService }

func New(s svc.NotificationService) *NotifCtrl { return &NotifCtrl{svc: s} }

func (h *NotifCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	unreadOnly := c.QueryParam("unread") != "false"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.List(uid, unreadOnly, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotifCtrl) MarkRead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.MarkRead(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotifCtrl) Summary(c echo.Context) error {
	uid := c.Get("uid").(string)
	s, err := h.svc.Summarize(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
