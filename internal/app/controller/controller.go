// Package controller holds the HTTP handlers. Handlers bind and
// validate the request, call a service, and translate service errors
// into the shared response envelope.
package controller

import (
	"errors"
	"strconv"
	"strings"

	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseID reads the :id path parameter. A non-numeric id responds 400
// and returns false.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, "Invalid id", map[string][]string{
			"id": {"must be a positive integer"},
		})
		return 0, false
	}
	return uint(id), true
}

// bindingFieldErrors converts a gin binding error into the per-field
// error map of the response envelope.
func bindingFieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "gte":
			msg = "must be at least " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		default:
			msg = "is invalid"
		}
		fields[name] = append(fields[name], msg)
	}
	return fields
}
