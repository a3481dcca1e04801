package usecase

import (
	"context"
	"fmt"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

// Report builds a management summary across overdue items and items due
// within the report window.
func (uc *implUseCase) Report(ctx context.Context, input followup.ReportInput) (followup.Report, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	overdue, err := uc.repo.Overdue(ctx, now)
	if err != nil {
		return followup.Report{}, fmt.Errorf("%w: %v", followup.ErrRepository, err)
	}
	upcoming, err := uc.repo.DueWithin(ctx, now, uc.cfg.ReportWindowDays)
	if err != nil {
		return followup.Report{}, fmt.Errorf("%w: %v", followup.ErrRepository, err)
	}

	report := followup.Report{
		GeneratedAt: now,
		Summary: followup.ReportSummary{
			OverdueItems:  len(overdue),
			UpcomingItems: len(upcoming),
		},
	}

	all := make([]followup.AnalyzedItem, 0, len(overdue)+len(upcoming))
	probabilitySum := 0.0
	for _, item := range append(overdue, upcoming...) {
		analysis := uc.analyzeItem(ctx, item, now)
		analyzed := followup.AnalyzedItem{Item: item, Analysis: analysis}
		all = append(all, analyzed)
		probabilitySum += analysis.CompletionProbability

		switch analysis.Level {
		case model.RiskCritical, model.RiskHigh:
			report.HighRisk = append(report.HighRisk, analyzed)
		case model.RiskMedium:
			report.MediumRisk = append(report.MediumRisk, analyzed)
		default:
			report.LowRisk = append(report.LowRisk, analyzed)
		}
	}

	report.Summary.TotalActiveItems = len(all)
	report.Summary.HighRiskItems = len(report.HighRisk)
	if len(all) > 0 {
		report.Summary.AverageCompletionProbability = probabilitySum / float64(len(all))
	}
	report.Recommendations = managementRecommendations(all)
	report.Alerts = alerts(all)

	return report, nil
}

// managementRecommendations distills the analyzed items into a short list of
// actionable observations.
func managementRecommendations(items []followup.AnalyzedItem) []string {
	var recommendations []string

	overdueHighPriority := 0
	lowCompletion := 0
	resourceConstrained := 0
	for _, it := range items {
		if it.Analysis.IsOverdue && (it.Item.Priority == model.PriorityHigh || it.Item.Priority == model.PriorityUrgent) {
			overdueHighPriority++
		}
		if it.Analysis.CompletionProbability < 0.5 {
			lowCompletion++
		}
		if len(it.Analysis.ResourceNeeds) > 0 {
			resourceConstrained++
		}
	}

	if overdueHighPriority > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Immediate attention needed: %d high-priority items are overdue", overdueHighPriority))
	}
	if lowCompletion > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Resource allocation review needed: %d items have low completion probability", lowCompletion))
	}
	if resourceConstrained > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Additional resources may be needed for %d items", resourceConstrained))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Action item tracking is on track with no major concerns")
	}
	return recommendations
}

// alerts flags the situations that should interrupt someone's day.
func alerts(items []followup.AnalyzedItem) []string {
	var out []string

	urgentOverdue := 0
	longOverdue := 0
	highRiskNearDue := 0
	for _, it := range items {
		if it.Analysis.IsOverdue && it.Item.Priority == model.PriorityUrgent {
			urgentOverdue++
		}
		if it.Analysis.IsOverdue && -it.Analysis.DaysUntilDue > 7 {
			longOverdue++
		}
		highRisk := it.Analysis.Level == model.RiskHigh || it.Analysis.Level == model.RiskCritical
		if highRisk && !it.Analysis.IsOverdue && it.Item.HasDueDate() && it.Analysis.DaysUntilDue <= 1 {
			highRiskNearDue++
		}
	}

	if urgentOverdue > 0 {
		out = append(out, fmt.Sprintf("CRITICAL: %d urgent items are overdue", urgentOverdue))
	}
	if longOverdue > 0 {
		out = append(out, fmt.Sprintf("WARNING: %d items are more than 7 days overdue", longOverdue))
	}
	if highRiskNearDue > 0 {
		out = append(out, fmt.Sprintf("URGENT: %d high-risk items are due within 1 day", highRiskNearDue))
	}
	return out
}
