package authors

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	authorService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// The date tag already guarantees the format.
	birthdate, err := time.Parse("2006-01-02", params.Birthdate)
	if err != nil {
		return errcodes.ValidationError(`"birthdate" is invalid`)
	}

	author, err := h.authorService.CreateAuthor(ctx, CreateAuthorOptions{
		Name:      params.Name,
		Birthdate: birthdate,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, author))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, author))
}

func (h *handler) books(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	books, err := h.authorService.GetBooks(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, books))
}
