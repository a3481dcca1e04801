package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meetmate/internal/scheduling"
	"meetmate/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Validation
// errors map to 400, everything else is hidden behind a generic 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrEmptyTitle),
		errors.Is(err, scheduling.ErrInvalidDuration),
		errors.Is(err, scheduling.ErrNoAttendees):
		response.Error(c, err, nil)
	case errors.Is(err, scheduling.ErrBookingFailed):
		response.Error(c, scheduling.ErrBookingFailed, nil)
	default:
		response.InternalError(c, err)
	}
}
