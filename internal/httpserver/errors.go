package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamviewer/ecommerce-api/internal/logging"
	"github.com/teamviewer/ecommerce-api/internal/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorHandler is the single place an error becomes an HTTP status.
// NotFound surfaces with its message, echo's own errors (bad id, bad body,
// unknown route) pass through, and everything else becomes an opaque 500
// with the cause logged server-side only.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var nfe *service.NotFoundError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &nfe):
			_ = c.JSON(http.StatusNotFound, ErrorResponse{Message: nfe.Error()})
		case errors.As(err, &he):
			_ = c.JSON(he.Code, ErrorResponse{Message: fmt.Sprint(he.Message)})
		default:
			l := logging.FromContext(c.Request().Context())
			l.Error("unexpected error", "error", err)
			_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		}
	}
}
