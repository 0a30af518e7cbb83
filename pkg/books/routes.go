package books

import (
	"github.com/hondanabooks/hondana/pkg/auth"
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all book routes. Creation requires
// authentication; reads are public.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock, authMiddleware *auth.Middleware) {
	bookService := NewService(db, clk)

	h := &handler{
		bookService: bookService,
	}

	e.POST("/books", h.create, authMiddleware.Authenticate)
	e.GET("/books", h.list)
	e.GET("/books/:id", h.retrieve)
	e.GET("/books/:id/history", h.history)
}
