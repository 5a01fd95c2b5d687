// Package handler holds the REST handlers of the API server.
package handler

import (
	"context"
	"net/http"

	"smartpay/internal/delivery/api/response"
	deliverycontext "smartpay/internal/delivery/context"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CRUDHandler serves the list, count, create, read, update and delete endpoints of one
// resource.
type CRUDHandler[E any, C usecase.CreateInput[E], U usecase.UpdateInput] struct {
	resource string
	uc       usecase.CRUDUsecase[E, C, U]
}

// NewCRUDHandler creates a handler for resource, which names the entity in messages.
func NewCRUDHandler[E any, C usecase.CreateInput[E], U usecase.UpdateInput](
	resource string,
	uc usecase.CRUDUsecase[E, C, U],
) *CRUDHandler[E, C, U] {
	return &CRUDHandler[E, C, U]{
		resource: resource,
		uc:       uc,
	}
}

// Register mounts the handler on g.
func (h *CRUDHandler[E, C, U]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/count", h.Count)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// requestContext tags the request context and its logger with the resource name.
func (h *CRUDHandler[E, C, U]) requestContext(c echo.Context) context.Context {
	return deliverycontext.WithResource(c.Request().Context(), h.resource)
}

func (h *CRUDHandler[E, C, U]) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(h.requestContext(c), opts)
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// ListByStore lists the rows reachable from the store in the :id path parameter.
func (h *CRUDHandler[E, C, U]) ListByStore(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	opts.StoreID = &storeID

	items, err := h.uc.List(h.requestContext(c), opts)
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

func (h *CRUDHandler[E, C, U]) Count(c echo.Context) error {
	n, err := h.uc.Count(h.requestContext(c), repository.ListOptions{Filters: filters(c.QueryParams())})
	if err != nil {
		return err
	}

	return response.Count(c, n)
}

// CountByStore counts what ListByStore would return, ignoring pagination.
func (h *CRUDHandler[E, C, U]) CountByStore(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	n, err := h.uc.Count(h.requestContext(c), repository.ListOptions{
		Filters: filters(c.QueryParams()),
		StoreID: &storeID,
	})
	if err != nil {
		return err
	}

	return response.Count(c, n)
}

func (h *CRUDHandler[E, C, U]) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.Get(h.requestContext(c), id, preloads(c.QueryParams())...)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

func (h *CRUDHandler[E, C, U]) Create(c echo.Context) error {
	var in C
	if err := bindBody(c, &in); err != nil {
		return err
	}

	item, err := h.uc.Create(h.requestContext(c), in)
	if err != nil {
		return err
	}

	return response.Created(c, item)
}

func (h *CRUDHandler[E, C, U]) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in U
	if err := bindBody(c, &in); err != nil {
		return err
	}

	item, err := h.uc.Update(h.requestContext(c), id, in)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

func (h *CRUDHandler[E, C, U]) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.uc.Delete(h.requestContext(c), id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrNotFound.WithMessagef("%s not found", h.resource)
	}

	return c.NoContent(http.StatusNoContent)
}

// bindBody decodes the JSON body into in and validates it.
func bindBody(c echo.Context, in any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, in); err != nil {
		return domainerrors.ErrInvalidInput.WithMessage("Invalid request body").WithDetails(bindingDetail(err))
	}

	return c.Validate(in)
}

func bindingDetail(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}
