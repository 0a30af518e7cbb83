package publishers

import (
	"github.com/hondanabooks/hondana/pkg/auth"
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all publisher routes. Creation requires
// authentication; reads are public.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock, authMiddleware *auth.Middleware) {
	publisherService := NewService(db, clk)

	h := &handler{
		publisherService: publisherService,
	}

	e.POST("/publishers", h.create, authMiddleware.Authenticate)
	e.GET("/publishers", h.list)
}
