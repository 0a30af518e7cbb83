package books

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	publishDate, err := time.Parse("2006-01-02", params.PublishDate)
	if err != nil {
		return errcodes.ValidationError(`"publish_date" is invalid`)
	}

	book, err := h.bookService.CreateBook(ctx, CreateBookOptions{
		Title:       params.Title,
		ISBN:        params.ISBN,
		PublishDate: publishDate,
		AuthorID:    params.AuthorID,
		PublisherID: params.PublisherID,
		GenreIDs:    params.GenreIDs,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		Limit:  params.Limit,
		Offset: params.Offset,
		SortBy: params.SortBy,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, books))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) history(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	history, err := h.bookService.GetHistory(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, history))
}
