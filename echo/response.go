package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// errorResponse is the standardized error envelope.
type errorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{
		Status:     "error",
		StatusCode: status,
		Message:    message,
	})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch coldemail.ErrorCode(err) {
	case coldemail.EINVALID:
		return http.StatusBadRequest
	case coldemail.ENOTFOUND:
		return http.StatusNotFound
	case coldemail.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
