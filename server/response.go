package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the wire form of a request failure.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps an APIError for JSON responses.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// respondError writes a JSON error envelope with the given status.
func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondOK writes a payload with status 200.
func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
