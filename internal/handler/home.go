package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/iavo-ui/internal/view"
)

// HomeHandler serves the health display page and its JSON counterpart.
type HomeHandler struct {
	Backend HealthReader
}

func NewHomeHandler(b HealthReader) *HomeHandler {
	if b == nil {
		panic("nil backend passed to NewHomeHandler")
	}
	return &HomeHandler{Backend: b}
}

// Page handles GET /. Every render asks the backend once; on any failure
// the page keeps showing the loading placeholder and the error is logged.
func (h *HomeHandler) Page(c echo.Context) error {
	var data view.HomeData
	status, err := h.Backend.Health(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error fetching health: %v", err)
	} else {
		data.Health = status.Pretty()
	}
	return c.Render(http.StatusOK, view.PageHome, data)
}

// API handles GET /api/health and passes the backend object through as
// received.
func (h *HomeHandler) API(c echo.Context) error {
	status, err := h.Backend.Health(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error fetching health: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unavailable"})
	}
	return c.JSONBlob(http.StatusOK, status.Raw)
}
