package service

import (
	"errors"
	"fmt"

	"github.com/EpicMandM/laptop-desk/internal/models"
)

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       models.ErrorBody
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
	switch {
	case e.Body.Message != "":
		msg += ": " + e.Body.Message
	case e.Body.Error != "":
		msg += ": " + e.Body.Error
	}
	return msg
}

// ErrorMessage returns the text to show for a failed call, preferring the
// body's "message" field.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Body.Message != "" {
			return apiErr.Body.Message
		}
		if apiErr.Body.Error != "" {
			return apiErr.Body.Error
		}
	}
	return err.Error()
}

// ErrorDetail is ErrorMessage for endpoints that report failures in the
// body's "error" field.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Body.Error != "" {
		return apiErr.Body.Error
	}
	return ErrorMessage(err)
}
