package http

import (
	"errors"
	"strings"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

type itemReq struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Assignee     string `json:"assignee"`
	AssigneeName string `json:"assignee_name"`
	DueDate      string `json:"due_date"` // RFC3339 or YYYY-MM-DD, empty means no due date
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	MeetingID    string `json:"meeting_id"`
	MeetingTitle string `json:"meeting_title"`
}

type analyzeReq struct {
	Item itemReq `json:"item"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.Item.ID) == "" {
		return followup.ErrEmptyItemID
	}
	if r.Item.Priority != "" && !model.Priority(r.Item.Priority).Valid() {
		return errors.New("unknown priority level")
	}
	if r.Item.Status != "" && !model.ItemStatus(r.Item.Status).Valid() {
		return errors.New("unknown item status")
	}
	if r.Item.DueDate != "" {
		if _, err := parseDueDate(r.Item.DueDate); err != nil {
			return errors.New("due_date must be RFC3339 or YYYY-MM-DD")
		}
	}
	return nil
}

func (r analyzeReq) toItem() followup.ActionItemSnapshot {
	item := followup.ActionItemSnapshot{
		ID:           r.Item.ID,
		Title:        r.Item.Title,
		Description:  r.Item.Description,
		Assignee:     r.Item.Assignee,
		AssigneeName: r.Item.AssigneeName,
		Priority:     model.PriorityMedium,
		Status:       model.StatusPending,
		MeetingID:    r.Item.MeetingID,
		MeetingTitle: r.Item.MeetingTitle,
	}
	if r.Item.Priority != "" {
		item.Priority = model.Priority(r.Item.Priority)
	}
	if r.Item.Status != "" {
		item.Status = model.ItemStatus(r.Item.Status)
	}
	if r.Item.DueDate != "" {
		due, _ := parseDueDate(r.Item.DueDate)
		item.DueDate = due
	}
	return item
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

type processReq struct {
	Async bool `form:"async"`
}

type riskResp struct {
	RiskLevel             string   `json:"risk_level"`
	CompletionProbability float64  `json:"completion_probability"`
	DependencyIssues      []string `json:"dependency_issues"`
	ResourceNeeds         []string `json:"resource_needs"`
	Recommendations       []string `json:"recommendations"`
	DaysUntilDue          int      `json:"days_until_due"`
	IsOverdue             bool     `json:"is_overdue"`
	Provenance            string   `json:"provenance"`
}

type strategyResp struct {
	PriorityLevel       string   `json:"priority_level"`
	NextAction          string   `json:"next_action"`
	EscalationRequired  bool     `json:"escalation_required"`
	ReminderCadenceDays int      `json:"reminder_cadence_days"`
	Stakeholders        []string `json:"stakeholders"`
	Provenance          string   `json:"provenance"`
}

type analyzeResp struct {
	Analysis riskResp     `json:"analysis"`
	Strategy strategyResp `json:"strategy"`
}

type actionResp struct {
	ItemID            string `json:"item_id"`
	ItemTitle         string `json:"item_title"`
	Action            string `json:"action"`
	ReminderSent      bool   `json:"reminder_sent"`
	EscalationCreated bool   `json:"escalation_created"`
	Recommendation    string `json:"recommendation,omitempty"`
}

type processResp struct {
	ProcessedAt        string       `json:"processed_at"`
	OverdueCount       int          `json:"overdue_count"`
	UpcomingCount      int          `json:"upcoming_count"`
	ItemsProcessed     int          `json:"items_processed"`
	RemindersSent      int          `json:"reminders_sent"`
	EscalationsCreated int          `json:"escalations_created"`
	Actions            []actionResp `json:"actions"`
	Errors             []string     `json:"errors"`
}

type processStartedResp struct {
	Started bool `json:"started"`
}

type analyzedItemResp struct {
	ItemID                string  `json:"item_id"`
	Title                 string  `json:"title"`
	Assignee              string  `json:"assignee"`
	DueDate               string  `json:"due_date,omitempty"`
	Priority              string  `json:"priority"`
	RiskLevel             string  `json:"risk_level"`
	CompletionProbability float64 `json:"completion_probability"`
	IsOverdue             bool    `json:"is_overdue"`
}

type reportSummaryResp struct {
	TotalActiveItems             int     `json:"total_active_items"`
	OverdueItems                 int     `json:"overdue_items"`
	UpcomingItems                int     `json:"upcoming_items"`
	HighRiskItems                int     `json:"high_risk_items"`
	AverageCompletionProbability float64 `json:"average_completion_probability"`
}

type reportResp struct {
	GeneratedAt     string             `json:"generated_at"`
	Summary         reportSummaryResp  `json:"summary"`
	HighRisk        []analyzedItemResp `json:"high_risk"`
	MediumRisk      []analyzedItemResp `json:"medium_risk"`
	LowRisk         []analyzedItemResp `json:"low_risk"`
	Recommendations []string           `json:"recommendations"`
	Alerts          []string           `json:"alerts"`
}

func newRiskResp(a followup.RiskAssessment) riskResp {
	return riskResp{
		RiskLevel:             string(a.Level),
		CompletionProbability: a.CompletionProbability,
		DependencyIssues:      a.DependencyIssues,
		ResourceNeeds:         a.ResourceNeeds,
		Recommendations:       a.Recommendations,
		DaysUntilDue:          a.DaysUntilDue,
		IsOverdue:             a.IsOverdue,
		Provenance:            string(a.Provenance),
	}
}

func newStrategyResp(s followup.FollowUpStrategy) strategyResp {
	return strategyResp{
		PriorityLevel:       string(s.PriorityLevel),
		NextAction:          string(s.NextAction),
		EscalationRequired:  s.EscalationRequired,
		ReminderCadenceDays: s.ReminderCadenceDays,
		Stakeholders:        s.Stakeholders,
		Provenance:          string(s.Provenance),
	}
}

func (h *handler) newAnalyzeResp(out followup.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Analysis: newRiskResp(out.Analysis),
		Strategy: newStrategyResp(out.Strategy),
	}
}

func (h *handler) newProcessResp(out followup.ProcessOutput) processResp {
	resp := processResp{
		ProcessedAt:        out.ProcessedAt.Format(time.RFC3339),
		OverdueCount:       out.OverdueCount,
		UpcomingCount:      out.UpcomingCount,
		ItemsProcessed:     out.ItemsProcessed,
		RemindersSent:      out.RemindersSent,
		EscalationsCreated: out.EscalationsCreated,
		Actions:            make([]actionResp, 0, len(out.Actions)),
		Errors:             out.Errors,
	}
	for _, a := range out.Actions {
		resp.Actions = append(resp.Actions, actionResp{
			ItemID:            a.ItemID,
			ItemTitle:         a.ItemTitle,
			Action:            string(a.Action),
			ReminderSent:      a.ReminderSent,
			EscalationCreated: a.EscalationCreated,
			Recommendation:    a.Recommendation,
		})
	}
	return resp
}

func newAnalyzedItems(items []followup.AnalyzedItem) []analyzedItemResp {
	resp := make([]analyzedItemResp, 0, len(items))
	for _, it := range items {
		r := analyzedItemResp{
			ItemID:                it.Item.ID,
			Title:                 it.Item.Title,
			Assignee:              it.Item.Assignee,
			Priority:              string(it.Item.Priority),
			RiskLevel:             string(it.Analysis.Level),
			CompletionProbability: it.Analysis.CompletionProbability,
			IsOverdue:             it.Analysis.IsOverdue,
		}
		if it.Item.HasDueDate() {
			r.DueDate = it.Item.DueDate.Format("2006-01-02")
		}
		resp = append(resp, r)
	}
	return resp
}

func (h *handler) newReportResp(report followup.Report) reportResp {
	return reportResp{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Summary: reportSummaryResp{
			TotalActiveItems:             report.Summary.TotalActiveItems,
			OverdueItems:                 report.Summary.OverdueItems,
			UpcomingItems:                report.Summary.UpcomingItems,
			HighRiskItems:                report.Summary.HighRiskItems,
			AverageCompletionProbability: report.Summary.AverageCompletionProbability,
		},
		HighRisk:        newAnalyzedItems(report.HighRisk),
		MediumRisk:      newAnalyzedItems(report.MediumRisk),
		LowRisk:         newAnalyzedItems(report.LowRisk),
		Recommendations: report.Recommendations,
		Alerts:          report.Alerts,
	}
}
