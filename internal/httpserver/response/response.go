package response

import "github.com/labstack/echo/v4"

// Fail writes the error envelope. Store-level detail must never reach the
// client; callers pass a generic message and log the underlying error.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}
