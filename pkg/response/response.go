package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "estatia/pkg/errors"
	"estatia/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Body is the envelope every endpoint answers with.
type Body struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Pages   *int        `json:"pages,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Body{
		Success: true,
		Data:    data,
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Body{
		Success: true,
		Data:    data,
	})
}

// Collection answers an unpaginated list together with its item count.
func Collection(c echo.Context, data interface{}, count int) error {
	return c.JSON(http.StatusOK, Body{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Paginated answers one page of a list. count is the number of items on
// this page, total the number matching the query overall.
func Paginated(c echo.Context, data interface{}, count int, total int64, page, limit int) error {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}

	return c.JSON(http.StatusOK, Body{
		Success: true,
		Count:   &count,
		Total:   &total,
		Page:    &page,
		Pages:   &pages,
		Data:    data,
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return fail(c, http.StatusBadRequest, validationMessage(validationErr))
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s: %v", appErr.Message, appErr.Err)
			return fail(c, appErr.Status, "An unexpected error occurred")
		}
		return fail(c, appErr.Status, appErr.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return fail(c, httpErr.Code, msg)
		}
		return fail(c, httpErr.Code, http.StatusText(httpErr.Code))
	}

	logger.Error("unhandled error: %v", err)
	return fail(c, http.StatusInternalServerError, "An unexpected error occurred")
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Body{
		Success: false,
		Error:   message,
	})
}

func validationMessage(errs validator.ValidationErrors) string {
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			return field + " is required"
		case "min":
			return field + " must be at least " + err.Param()
		case "max":
			return field + " must be at most " + err.Param()
		case "oneof":
			return field + " must be one of: " + err.Param()
		case "email":
			return field + " must be a valid email address"
		case "url":
			return field + " must be a valid URL"
		default:
			return field + " is invalid"
		}
	}
	return "Invalid input data"
}
