package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcal/pkg/catalog"
)

type CropCtrl struct{ cat *catalog.Catalog }

func New(cat *catalog.Catalog) *CropCtrl { return &CropCtrl{cat: cat} }

func (h *CropCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"crops": h.cat.Crops()})
}

func (h *CropCtrl) Get(c echo.Context) error {
	t, err := h.cat.Get(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *CropCtrl) Validate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.ValidateAll())
}
