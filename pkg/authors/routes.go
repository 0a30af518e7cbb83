package authors

import (
	"github.com/hondanabooks/hondana/pkg/auth"
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all author routes. Creation requires
// authentication; reads are public.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock, authMiddleware *auth.Middleware) {
	authorService := NewService(db, clk)

	h := &handler{
		authorService: authorService,
	}

	e.POST("/authors", h.create, authMiddleware.Authenticate)
	e.GET("/authors/:id", h.retrieve)
	e.GET("/authors/:id/books", h.books)
}
