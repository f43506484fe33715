package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body. Mutating endpoints report ok
// plus a flash-style message; validation and uniqueness failures
// attach per-field messages.
type Envelope struct {
	OK      bool                `json:"ok"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
}

// OK writes a success envelope with an optional payload.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{OK: true, Message: message, Data: data})
}

// Created writes a success envelope for a newly created resource.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{OK: true, Message: message, Data: data})
}

// BadRequest reports a validation failure with field-level messages.
func BadRequest(c *gin.Context, message string, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, Envelope{OK: false, Message: message, Errors: fields})
}

// Conflict reports a uniqueness violation bound to one field.
func Conflict(c *gin.Context, field, message string) {
	c.JSON(http.StatusConflict, Envelope{
		OK:      false,
		Message: message,
		Errors:  map[string][]string{field: {message}},
	})
}

// NotFound reports a missing resource.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{OK: false, Message: message})
}

// Unauthorized reports a missing or invalid session.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Login required"
	}
	c.JSON(http.StatusUnauthorized, Envelope{OK: false, Message: message})
}

// Forbidden reports an authenticated but unpermitted request.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	c.JSON(http.StatusForbidden, Envelope{OK: false, Message: message})
}

// InternalError reports an unexpected persistence failure. The
// underlying error is logged by the caller, never shown to the user.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong. Please try again"
	}
	c.JSON(http.StatusInternalServerError, Envelope{OK: false, Message: message})
}
