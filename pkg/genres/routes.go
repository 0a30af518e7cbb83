package genres

import (
	"github.com/hondanabooks/hondana/pkg/auth"
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all genre routes. Creation requires
// authentication; reads are public.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock, authMiddleware *auth.Middleware) {
	genreService := NewService(db, clk)

	h := &handler{
		genreService: genreService,
	}

	e.POST("/genres", h.create, authMiddleware.Authenticate)
	e.GET("/genres", h.list)
}
