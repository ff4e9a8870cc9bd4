package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// InternalError logs the underlying failure and returns only the
// generic message to the client. Store errors never leak detail.
func InternalError(c echo.Context, msg string, err error) error {
	slog.Error(msg,
		slog.String("error", err.Error()),
		slog.String("path", c.Path()),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}
