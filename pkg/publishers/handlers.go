package publishers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	publisherService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreatePublisherPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	publisher, err := h.publisherService.CreatePublisher(ctx, CreatePublisherOptions{
		Name:            params.Name,
		EstablishedYear: params.EstablishedYear,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, publisher))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListPublishersQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	publishers, err := h.publisherService.ListPublishers(ctx, ListPublishersOptions{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, publishers))
}
