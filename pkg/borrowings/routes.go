package borrowings

import (
	"github.com/hondanabooks/hondana/pkg/auth"
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the borrow and return routes. Both mutate loan
// state, so both require authentication.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock, maxLoans int, authMiddleware *auth.Middleware) {
	borrowingService := NewService(db, clk, maxLoans)

	h := &handler{
		borrowingService: borrowingService,
	}

	e.POST("/borrow", h.borrow, authMiddleware.Authenticate)
	e.POST("/return/:id", h.returnBook, authMiddleware.Authenticate)
}
