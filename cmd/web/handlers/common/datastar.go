package common

import "github.com/labstack/echo/v4"

// IsDatastarRequest reports whether the request was issued by a Datastar
// action (@get, @post...) rather than a plain navigation or form post.
func IsDatastarRequest(c echo.Context) bool {
	return c.Request().Header.Get("Datastar-Request") == "true"
}
