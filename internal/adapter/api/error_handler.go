package api

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"estatia/pkg/response"
)

// NewHTTPErrorHandler catches errors that escape the handlers, which in
// practice means echo's own routing errors. Unknown paths get the
// envelope with a "Route ... not found" message.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stderrors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			c.JSON(http.StatusNotFound, response.Body{
				Success: false,
				Error:   fmt.Sprintf("Route %s not found", c.Request().URL.Path),
			})
			return
		}

		response.Error(c, err)
	}
}
