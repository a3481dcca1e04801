package usecase

import (
	"context"
	"fmt"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

// executeAction carries out the strategy's next action: a reminder through
// the notifier, an escalation record, or a logged recommendation.
func (uc *implUseCase) executeAction(
	ctx context.Context,
	item followup.ActionItemSnapshot,
	strategy followup.FollowUpStrategy,
	analysis followup.RiskAssessment,
) (followup.ActionTaken, error) {
	action := followup.ActionTaken{
		ItemID:    item.ID,
		ItemTitle: item.Title,
		Action:    strategy.NextAction,
	}

	switch strategy.NextAction {
	case model.ActionGentleReminder, model.ActionDirectFollowUp, model.ActionUrgentFollowUp:
		message := reminderMessage(strategy.NextAction, analysis)
		sent, err := uc.notifier.SendReminder(ctx, item, message)
		if err != nil {
			return action, fmt.Errorf("sending reminder: %w", err)
		}
		action.ReminderSent = sent

	case model.ActionEscalateToManager:
		if err := uc.escalations.Escalate(ctx, item, strategy); err != nil {
			return action, fmt.Errorf("recording escalation: %w", err)
		}
		action.EscalationCreated = true
		uc.l.Infof(ctx, "followup: escalation created for item %s", item.ID)

	case model.ActionRedistributeTask:
		action.Recommendation = "Task redistribution recommended"
		uc.l.Infof(ctx, "followup: task redistribution recommended for item %s", item.ID)

	case model.ActionDeadlineExtension:
		action.Recommendation = "Deadline extension recommended"
		uc.l.Infof(ctx, "followup: deadline extension recommended for item %s", item.ID)

	case model.ActionResourceAllocation:
		action.Recommendation = "Additional resources recommended"
		uc.l.Infof(ctx, "followup: resource allocation recommended for item %s", item.ID)
	}

	return action, nil
}

// reminderMessage tailors the reminder text to urgency.
func reminderMessage(action model.NextAction, analysis followup.RiskAssessment) string {
	if action == model.ActionUrgentFollowUp && analysis.IsOverdue {
		return fmt.Sprintf("This action item is %d days overdue and requires immediate attention.", -analysis.DaysUntilDue)
	}
	if analysis.Level == model.RiskHigh || analysis.Level == model.RiskCritical {
		return "This item has been identified as high-risk and may impact project delivery."
	}
	return ""
}
