package borrowings

import (
	"net/http"
	"strconv"

	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	borrowingService *Service
}

func (h *handler) borrow(c echo.Context) error {
	ctx := c.Request().Context()

	params := BorrowPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	borrowing, err := h.borrowingService.Borrow(ctx, BorrowOptions{
		BookID:       params.BookID,
		BorrowerName: params.BorrowerName,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, borrowing))
}

func (h *handler) returnBook(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Borrowing")
	}

	borrowing, err := h.borrowingService.Return(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, borrowing))
}
