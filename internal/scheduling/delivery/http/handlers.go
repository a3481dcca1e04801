package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"meetmate/internal/scheduling"
	"meetmate/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a meeting request
// @Description Classifies priority and extracts time preferences without touching the calendar.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Meeting request"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, scheduling.AnalyzeInput{
		Request: req.toRequest(),
		Now:     time.Now(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Recommend godoc
// @Summary     Recommend a meeting slot
// @Description Runs the full pipeline: analysis, candidate search, scoring and reconciliation. Optionally books the winning slot.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body recommendReq true "Meeting request"
// @Success     200 {object} recommendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduling/recommend [POST]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Recommend(ctx, scheduling.RecommendInput{
		Request:  req.toRequest(),
		Now:      time.Now(),
		AutoBook: req.AutoBook,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRecommendResp(output))
}
