package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/storely/storefront-service/internal/httpserver/response"
)

// Fail writes the error envelope. Store-level detail must never reach the
// client; callers pass a generic message and log the underlying error.
// It lives in the response subpackage so handlers can use it without
// importing this package (which would create an import cycle).
func Fail(c echo.Context, status int, message string) error {
	return response.Fail(c, status, message)
}
