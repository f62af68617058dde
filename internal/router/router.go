package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/iavo-ui/internal/handler"
)

// RegisterRoutes registers the liveness probe of the UI server itself.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// Middlewares groups the optional Redis-backed middleware. Nil entries are
// skipped.
type Middlewares struct {
	RateLimit   echo.MiddlewareFunc // guards POST /profile
	HealthCache echo.MiddlewareFunc // fronts GET /api/health
}

// RegisterPages registers the two pages and the JSON health pass-through.
func RegisterPages(e *echo.Echo, home *handler.HomeHandler, profile *handler.ProfileHandler, mw Middlewares) {
	// Health display. Never cached: each render asks the backend.
	e.GET("/", home.Page)
	e.GET("/api/health", home.API, optional(mw.HealthCache)...)

	// Profile form.
	e.GET("/profile", profile.Form)
	e.POST("/profile", profile.Submit, optional(mw.RateLimit)...)
}

func optional(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}
