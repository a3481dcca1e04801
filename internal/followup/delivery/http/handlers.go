package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"meetmate/internal/followup"
	"meetmate/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a single action item
// @Description Runs risk analysis and strategy selection for one action item without taking any action.
// @Tags        FollowUp
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Action item"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/followup/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, followup.AnalyzeInput{
		Item: req.toItem(),
		Now:  time.Now(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Process godoc
// @Summary     Run the follow-up triage batch
// @Description Triages all overdue and upcoming action items, sending reminders and recording escalations. Pass async=true to start the batch in the background.
// @Tags        FollowUp
// @Accept      json
// @Produce     json
// @Param       async query bool false "Run in the background and return immediately"
// @Success     200 {object} processResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/followup/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := followup.ProcessInput{Now: time.Now()}

	if req.Async {
		// Detach from the request context so the batch survives the
		// response being written.
		run := h.uc.StartProcess(context.Background(), input)
		go h.logRunResult(run)
		response.OK(c, processStartedResp{Started: true})
		return
	}

	output, err := h.uc.Process(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// logRunResult waits for a background batch to finish and logs its outcome,
// since nobody is left holding the HTTP response by then.
func (h *handler) logRunResult(run *followup.Run) {
	ctx := context.Background()
	output, err := run.Wait(ctx)
	if err != nil {
		h.l.Errorf(ctx, "background follow-up batch failed: %v", err)
		return
	}
	h.l.Infof(ctx, "background follow-up batch finished: processed=%d reminders=%d escalations=%d errors=%d",
		output.ItemsProcessed, output.RemindersSent, output.EscalationsCreated, len(output.Errors))
}

// Report godoc
// @Summary     Follow-up summary report
// @Description Builds a management summary across overdue and upcoming action items, bucketed by risk.
// @Tags        FollowUp
// @Produce     json
// @Success     200 {object} reportResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/followup/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.uc.Report(ctx, followup.ReportInput{Now: time.Now()})
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newReportResp(report))
}
