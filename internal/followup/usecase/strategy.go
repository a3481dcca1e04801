package usecase

import (
	"context"
	"fmt"

	"meetmate/internal/followup"
	"meetmate/internal/model"
	"meetmate/pkg/judgment"
)

const strategyInstructions = `You are an expert at creating follow-up strategies for action items based on their risk level and current status.

Consider:
1. Risk level and urgency
2. Item complexity and dependencies
3. Business impact and stakeholder expectations

Follow-up Actions:
- gentle_reminder: Standard reminder notification
- direct_follow_up: Direct contact with the assignee
- urgent_follow_up: Direct contact with urgency indicators
- escalate_to_manager: Involve supervisor or manager
- redistribute_task: Consider reassigning to another team member
- deadline_extension: Negotiate new timeline
- resource_allocation: Provide additional support

Schema: {"priority_level": "low"|"medium"|"high"|"urgent", "next_action": "<one of the actions above>", "escalation_required": <bool>, "suggested_reminder_frequency": <days between reminders, >= 1>, "stakeholders_to_notify": ["<string>"]}`

type aiStrategy struct {
	PriorityLevel      string   `json:"priority_level"`
	NextAction         string   `json:"next_action"`
	EscalationRequired bool     `json:"escalation_required"`
	ReminderFrequency  int      `json:"suggested_reminder_frequency"`
	Stakeholders       []string `json:"stakeholders_to_notify"`
}

// selectStrategy derives the follow-up strategy for an analyzed item, falling
// back to fixed risk-level rules when the judgment cannot be used.
func (uc *implUseCase) selectStrategy(ctx context.Context, item followup.ActionItemSnapshot, analysis followup.RiskAssessment) followup.FollowUpStrategy {
	daysOverdue := 0
	if analysis.IsOverdue {
		daysOverdue = -analysis.DaysUntilDue
	}

	spec := judgment.Spec{
		Name:         "follow_up_strategy",
		Instructions: strategyInstructions,
		Context: map[string]any{
			"risk_level":             string(analysis.Level),
			"completion_probability": analysis.CompletionProbability,
			"days_overdue":           daysOverdue,
			"priority":               string(item.Priority),
			"assignee":               item.Assignee,
		},
	}

	result := judgment.Ask(ctx, uc.judge, spec,
		func(s *aiStrategy) error {
			if !model.Priority(s.PriorityLevel).Valid() {
				return fmt.Errorf("unknown priority level %q", s.PriorityLevel)
			}
			if !model.NextAction(s.NextAction).Valid() {
				return fmt.Errorf("unknown next action %q", s.NextAction)
			}
			if s.ReminderFrequency < 1 {
				return fmt.Errorf("reminder frequency %d must be at least 1 day", s.ReminderFrequency)
			}
			return nil
		},
		func() aiStrategy { return fallbackStrategy(analysis.Level) },
	)

	return followup.FollowUpStrategy{
		PriorityLevel:       model.Priority(result.Value.PriorityLevel),
		NextAction:          model.NextAction(result.Value.NextAction),
		EscalationRequired:  result.Value.EscalationRequired,
		ReminderCadenceDays: result.Value.ReminderFrequency,
		Stakeholders:        result.Value.Stakeholders,
		Provenance:          result.Provenance,
	}
}

// fallbackStrategy maps risk level to a fixed strategy.
func fallbackStrategy(risk model.RiskLevel) aiStrategy {
	switch risk {
	case model.RiskCritical:
		return aiStrategy{
			PriorityLevel:      string(model.PriorityUrgent),
			NextAction:         string(model.ActionUrgentFollowUp),
			EscalationRequired: true,
			ReminderFrequency:  1,
			Stakeholders:       []string{"manager", "assignee"},
		}
	case model.RiskHigh:
		return aiStrategy{
			PriorityLevel:      string(model.PriorityHigh),
			NextAction:         string(model.ActionDirectFollowUp),
			EscalationRequired: false,
			ReminderFrequency:  2,
			Stakeholders:       []string{"assignee"},
		}
	default:
		return aiStrategy{
			PriorityLevel:      string(model.PriorityMedium),
			NextAction:         string(model.ActionGentleReminder),
			EscalationRequired: false,
			ReminderFrequency:  7,
			Stakeholders:       []string{"assignee"},
		}
	}
}
