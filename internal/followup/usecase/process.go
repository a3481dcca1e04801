package usecase

import (
	"context"
	"fmt"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

// Process triages every overdue item, plus upcoming items that are high-risk
// or declared high/urgent priority. Each item is processed independently; a
// failure on one item is recorded and never aborts the rest of the batch.
func (uc *implUseCase) Process(ctx context.Context, input followup.ProcessInput) (followup.ProcessOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	uc.l.Infof(ctx, "followup: starting triage batch")

	overdue, err := uc.repo.Overdue(ctx, now)
	if err != nil {
		return followup.ProcessOutput{}, fmt.Errorf("%w: %v", followup.ErrRepository, err)
	}
	upcoming, err := uc.repo.DueWithin(ctx, now, uc.cfg.UpcomingWindowDays)
	if err != nil {
		return followup.ProcessOutput{}, fmt.Errorf("%w: %v", followup.ErrRepository, err)
	}

	out := followup.ProcessOutput{
		ProcessedAt:   now,
		OverdueCount:  len(overdue),
		UpcomingCount: len(upcoming),
	}

	for _, item := range overdue {
		uc.processItem(ctx, item, now, &out)
	}

	for _, item := range upcoming {
		analysis := uc.analyzeItem(ctx, item, now)
		// Upcoming items only get a reminder when risk or declared priority
		// warrants it.
		if !warrantsUpcomingFollowUp(item, analysis) {
			continue
		}
		uc.actOnItem(ctx, item, analysis, &out)
	}

	uc.l.Infof(ctx, "followup: triage batch done processed=%d reminders=%d escalations=%d errors=%d",
		out.ItemsProcessed, out.RemindersSent, out.EscalationsCreated, len(out.Errors))
	return out, nil
}

// StartProcess runs the triage batch in the background, keeping completion
// and the aggregated result observable through the returned handle.
func (uc *implUseCase) StartProcess(ctx context.Context, input followup.ProcessInput) *followup.Run {
	return followup.StartRun(func() (followup.ProcessOutput, error) {
		return uc.Process(ctx, input)
	})
}

func (uc *implUseCase) processItem(ctx context.Context, item followup.ActionItemSnapshot, now time.Time, out *followup.ProcessOutput) {
	analysis := uc.analyzeItem(ctx, item, now)
	uc.actOnItem(ctx, item, analysis, out)
}

func (uc *implUseCase) actOnItem(ctx context.Context, item followup.ActionItemSnapshot, analysis followup.RiskAssessment, out *followup.ProcessOutput) {
	out.ItemsProcessed++

	strategy := uc.selectStrategy(ctx, item, analysis)

	action, err := uc.executeAction(ctx, item, strategy, analysis)
	if err != nil {
		// Item-boundary isolation: record and move on.
		uc.l.Errorf(ctx, "followup: item %s failed: %v", item.ID, err)
		out.Errors = append(out.Errors, fmt.Sprintf("item %s: %v", item.ID, err))
		return
	}

	out.Actions = append(out.Actions, action)
	if action.ReminderSent {
		out.RemindersSent++
	}
	if action.EscalationCreated {
		out.EscalationsCreated++
	}
}

func warrantsUpcomingFollowUp(item followup.ActionItemSnapshot, analysis followup.RiskAssessment) bool {
	if analysis.Level == model.RiskHigh || analysis.Level == model.RiskCritical {
		return true
	}
	return item.Priority == model.PriorityHigh || item.Priority == model.PriorityUrgent
}
