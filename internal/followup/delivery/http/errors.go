package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meetmate/internal/followup"
	"meetmate/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, followup.ErrEmptyItemID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
