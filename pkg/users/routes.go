package users

import (
	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers user registration routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB, clk clock.Clock) {
	userService := NewService(db, clk)

	h := &handler{
		userService: userService,
	}

	e.POST("/users", h.create)
}
