package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// respond writes the {"detail": ..., "data": ...} envelope every endpoint
// uses; data is omitted when nil.
func respond(c echo.Context, status int, detail string, data interface{}) error {
	if data == nil {
		return c.JSON(status, echo.Map{"detail": detail})
	}
	return c.JSON(status, echo.Map{"detail": detail, "data": data})
}

// HTTPErrorHandler renders echo.HTTPError messages into the detail envelope
// and collapses everything unexpected to a logged, opaque 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "internal_server_error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		}
	}
	if code >= http.StatusInternalServerError {
		log.Printf("[%s %s] unexpected error: %v", c.Request().Method, c.Request().URL.Path, err)
		detail = "internal_server_error"
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"detail": detail})
}
