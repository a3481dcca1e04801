package usecase

import (
	"context"
	"fmt"
	"strings"

	"meetmate/internal/model"
	"meetmate/internal/scheduling"
	"meetmate/pkg/judgment"
)

// Keyword sets for the deterministic priority fallback. Membership is what
// matters; match order does not.
var (
	urgentKeywords = []string{"urgent", "emergency", "asap", "critical", "immediate", "crisis"}
	highKeywords   = []string{"client", "interview", "deadline", "review", "demo", "presentation"}
)

const priorityInstructions = `You are an expert meeting scheduler who analyzes meeting requests to determine priority and urgency.

Classify the priority level based on:
1. Keywords indicating urgency (urgent, emergency, ASAP, critical, immediate)
2. Meeting type (client meeting, interview, deadline review, casual sync)
3. Number of attendees
4. Business impact potential
5. Time sensitivity from description

Priority Levels:
- urgent: Immediate action required, high business impact (urgency_score 8-10)
- high: Important business meeting, client-facing, interview, deadline-related (urgency_score 6-8)
- medium: Regular team meetings, project updates, planning sessions (urgency_score 4-6)
- low: Social meetings, optional sync-ups, informal discussions (urgency_score 1-4)

Schema: {"level": "low"|"medium"|"high"|"urgent", "urgency_score": <int 1-10 consistent with level>, "reasoning": "<string>"}`

type aiPriority struct {
	Level        string `json:"level"`
	UrgencyScore int    `json:"urgency_score"`
	Reasoning    string `json:"reasoning"`
}

// classifyPriority grades the request's urgency, falling back to keyword
// matching when the judgment cannot be used.
func (uc *implUseCase) classifyPriority(ctx context.Context, req scheduling.MeetingRequest) scheduling.PriorityAssessment {
	spec := judgment.Spec{
		Name:         "meeting_priority",
		Instructions: priorityInstructions,
		Context: map[string]any{
			"title":            req.Title,
			"description":      req.Description,
			"organizer":        req.Organizer,
			"attendees":        req.Attendees,
			"duration_minutes": req.DurationMinutes,
		},
	}

	result := judgment.Ask(ctx, uc.judge, spec,
		func(p *aiPriority) error {
			level := model.Priority(p.Level)
			if !level.Valid() {
				return fmt.Errorf("unknown priority level %q", p.Level)
			}
			return level.ValidateUrgencyScore(p.UrgencyScore)
		},
		func() aiPriority { return fallbackPriority(req.Title, req.Description) },
	)

	return scheduling.PriorityAssessment{
		Level:        model.Priority(result.Value.Level),
		UrgencyScore: result.Value.UrgencyScore,
		Reasoning:    result.Value.Reasoning,
		Provenance:   result.Provenance,
	}
}

// fallbackPriority is the deterministic keyword heuristic.
func fallbackPriority(title, description string) aiPriority {
	text := strings.ToLower(title + " " + description)

	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			return aiPriority{Level: string(model.PriorityUrgent), UrgencyScore: 9, Reasoning: "Contains urgent keywords"}
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			return aiPriority{Level: string(model.PriorityHigh), UrgencyScore: 7, Reasoning: "Important business meeting"}
		}
	}
	return aiPriority{Level: string(model.PriorityMedium), UrgencyScore: 5, Reasoning: "Standard meeting"}
}
