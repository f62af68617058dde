package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe of this UI server. It does not call the
// backend: a down backend must not take the pages out of rotation.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
