package usecase

import (
	"context"
	"fmt"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
	"meetmate/pkg/datemath"
	"meetmate/pkg/judgment"
)

const riskInstructions = `You are an expert project management assistant who analyzes action items to assess risks and provide follow-up recommendations.

Analyze action items based on:
1. Due date proximity and overdue status
2. Priority level and business impact
3. Complexity and resource requirements
4. Dependencies and blocking factors

Risk Levels:
- critical: Overdue high-priority items affecting critical business functions
- high: Near-due important items or items with blocking dependencies
- medium: Standard items with moderate risk of delay
- low: Low-priority items with adequate time for completion

Schema: {"risk_level": "low"|"medium"|"high"|"critical", "completion_probability": <float 0-1>, "dependency_issues": ["<string>"], "resource_needs": ["<string>"], "recommendations": ["<string>"]}`

type aiRisk struct {
	RiskLevel             string   `json:"risk_level"`
	CompletionProbability float64  `json:"completion_probability"`
	DependencyIssues      []string `json:"dependency_issues"`
	ResourceNeeds         []string `json:"resource_needs"`
	Recommendations       []string `json:"recommendations"`
}

// Analyze runs risk analysis and strategy selection for one item.
func (uc *implUseCase) Analyze(ctx context.Context, input followup.AnalyzeInput) (followup.AnalyzeOutput, error) {
	if input.Item.ID == "" {
		return followup.AnalyzeOutput{}, followup.ErrEmptyItemID
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	analysis := uc.analyzeItem(ctx, input.Item, now)
	strategy := uc.selectStrategy(ctx, input.Item, analysis)
	return followup.AnalyzeOutput{Analysis: analysis, Strategy: strategy}, nil
}

// analyzeItem assesses one item's slip risk, falling back to the due-date
// heuristic when the judgment cannot be used.
func (uc *implUseCase) analyzeItem(ctx context.Context, item followup.ActionItemSnapshot, now time.Time) followup.RiskAssessment {
	daysUntilDue := 0
	isOverdue := false
	dueDate := "not set"
	if item.HasDueDate() {
		daysUntilDue = datemath.CalendarDays(now, item.DueDate)
		isOverdue = daysUntilDue < 0
		dueDate = item.DueDate.Format("2006-01-02")
	}

	spec := judgment.Spec{
		Name:         "action_item_risk",
		Instructions: riskInstructions,
		Context: map[string]any{
			"title":          item.Title,
			"description":    item.Description,
			"assignee":       item.Assignee,
			"due_date":       dueDate,
			"priority":       string(item.Priority),
			"status":         string(item.Status),
			"days_until_due": daysUntilDue,
			"is_overdue":     isOverdue,
			"meeting_title":  item.MeetingTitle,
		},
	}

	result := judgment.Ask(ctx, uc.judge, spec,
		func(r *aiRisk) error {
			if !model.RiskLevel(r.RiskLevel).Valid() {
				return fmt.Errorf("unknown risk level %q", r.RiskLevel)
			}
			if r.CompletionProbability < 0 || r.CompletionProbability > 1 {
				return fmt.Errorf("completion probability %f out of range", r.CompletionProbability)
			}
			return nil
		},
		func() aiRisk { return fallbackRisk(item, daysUntilDue) },
	)

	return followup.RiskAssessment{
		Level:                 model.RiskLevel(result.Value.RiskLevel),
		CompletionProbability: result.Value.CompletionProbability,
		DependencyIssues:      result.Value.DependencyIssues,
		ResourceNeeds:         result.Value.ResourceNeeds,
		Recommendations:       result.Value.Recommendations,
		DaysUntilDue:          daysUntilDue,
		IsOverdue:             isOverdue,
		Provenance:            result.Provenance,
	}
}

// fallbackRisk grades risk from due-date distance and declared priority alone.
func fallbackRisk(item followup.ActionItemSnapshot, daysUntilDue int) aiRisk {
	risk := aiRisk{
		RiskLevel:             string(model.RiskLow),
		CompletionProbability: 0.8,
		Recommendations:       []string{"Regular follow-up recommended"},
	}
	if !item.HasDueDate() {
		return risk
	}

	highPriority := item.Priority == model.PriorityHigh || item.Priority == model.PriorityUrgent

	switch {
	case daysUntilDue < 0:
		if highPriority {
			risk.RiskLevel = string(model.RiskCritical)
		} else {
			risk.RiskLevel = string(model.RiskHigh)
		}
		risk.CompletionProbability = 0.3
	case daysUntilDue <= 1:
		if highPriority {
			risk.RiskLevel = string(model.RiskHigh)
		} else {
			risk.RiskLevel = string(model.RiskMedium)
		}
		risk.CompletionProbability = 0.6
	case daysUntilDue <= 3:
		risk.RiskLevel = string(model.RiskMedium)
		risk.CompletionProbability = 0.7
	}
	return risk
}
