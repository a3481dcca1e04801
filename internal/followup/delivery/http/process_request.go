package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processProcessReq binds the triage batch query parameters.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
