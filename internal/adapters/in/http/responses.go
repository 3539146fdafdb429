package http

import (
	"errors"
	"net/http"

	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body: data on success, a human-readable
// message on failure.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, status int, message string) error {
	success := status < http.StatusBadRequest
	return ctx.JSON(status, envelope{Success: success, Message: message})
}

// respondError maps domain errors onto status codes: validation 400,
// authorization 401, missing object 404, lost claim 409, illegal lifecycle
// move 422. Anything unclassified is a 500 with no internals leaked.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return respondMessage(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return respondMessage(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrObjectAlreadyAssigned):
		return respondMessage(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, order.ErrInvalidStatusTransition):
		return respondMessage(ctx, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return respondMessage(ctx, http.StatusBadRequest, err.Error())
	}

	ctx.Logger().Error(err)
	return respondMessage(ctx, http.StatusInternalServerError, "internal server error")
}
