package http

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors to HTTP statuses. Unclassified errors
// become 500 without leaking internals.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(c, nethttp.StatusNotFound, "Object not found")
	case errors.Is(err, commands.ErrInvalidCredentials):
		return respond(c, nethttp.StatusUnauthorized, err.Error())
	case errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return respond(c, nethttp.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return respond(c, nethttp.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrTariffNotAvailable):
		return respond(c, nethttp.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(c, nethttp.StatusBadRequest, err.Error())
	default:
		c.Logger().Error(err)
		return respond(c, nethttp.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(c echo.Context, message string) error {
	return respond(c, nethttp.StatusBadRequest, message)
}

func respond(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}
