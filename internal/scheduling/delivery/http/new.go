package http

import (
	"meetmate/internal/scheduling"
	"meetmate/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Recommend(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduling.UseCase
}

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, uc scheduling.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
