package http

import (
	"meetmate/internal/followup"
	"meetmate/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the follow-up HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Process(c *gin.Context)
	Report(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc followup.UseCase
}

// New creates a new HTTP handler for the follow-up domain.
func New(l log.Logger, uc followup.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
