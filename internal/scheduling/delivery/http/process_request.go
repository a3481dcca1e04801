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

// processRecommendReq binds and validates the recommend request body.
func (h *handler) processRecommendReq(c *gin.Context) (recommendReq, error) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
