package usecase

import (
	"context"
	"fmt"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/datemath"
	"meetmate/pkg/judgment"
)

const preferenceInstructions = `You are an expert at extracting time preferences from meeting requests.

Extract and interpret:
1. Explicit date/time mentions
2. Relative time references (next week, tomorrow, end of month)
3. Time constraints (morning only, after 2pm, before lunch)
4. Days of week preferences
5. Times to avoid

Convert relative dates to absolute YYYY-MM-DD dates based on today's date given in the context.

Schema: {"preferred_date": "<YYYY-MM-DD or empty>", "preferred_time": "<HH:MM or empty>", "flexible_hours": [<acceptable start hours 0-23>], "avoid_times": ["<HH:MM>", ...], "reasoning": "<string>"}`

type aiPreference struct {
	PreferredDate string   `json:"preferred_date"`
	PreferredTime string   `json:"preferred_time"`
	FlexibleHours []int    `json:"flexible_hours"`
	AvoidTimes    []string `json:"avoid_times"`
	Reasoning     string   `json:"reasoning"`
}

// extractPreference pulls time preferences out of the request text, defaulting
// to business hours when the judgment cannot be used.
func (uc *implUseCase) extractPreference(ctx context.Context, req scheduling.MeetingRequest, now time.Time) scheduling.TimePreference {
	today := now.In(uc.dateMath.Location()).Format("2006-01-02")

	spec := judgment.Spec{
		Name:         "time_preference",
		Instructions: preferenceInstructions,
		Context: map[string]any{
			"title":           req.Title,
			"description":     req.Description,
			"organizer_notes": req.OrganizerNotes,
			"today_date":      today,
		},
	}

	result := judgment.Ask(ctx, uc.judge, spec, validatePreference,
		func() aiPreference { return uc.fallbackPreference(req, now) },
	)

	return scheduling.TimePreference{
		PreferredDate: result.Value.PreferredDate,
		PreferredTime: result.Value.PreferredTime,
		FlexibleHours: result.Value.FlexibleHours,
		AvoidTimes:    result.Value.AvoidTimes,
		Reasoning:     result.Value.Reasoning,
		Provenance:    result.Provenance,
	}
}

func validatePreference(p *aiPreference) error {
	if p.PreferredTime != "" {
		if _, _, err := datemath.ParseClock(p.PreferredTime); err != nil {
			return fmt.Errorf("invalid preferred_time: %w", err)
		}
	}
	for _, h := range p.FlexibleHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("flexible hour %d out of range", h)
		}
	}
	for _, t := range p.AvoidTimes {
		if _, _, err := datemath.ParseClock(t); err != nil {
			return fmt.Errorf("invalid avoid time: %w", err)
		}
	}
	return nil
}

// fallbackPreference is the no-judgment fallback: business-hour start times
// (9 through 16), nothing avoided. Relative date phrases in the organizer
// notes are still honored, resolved deterministically.
func (uc *implUseCase) fallbackPreference(req scheduling.MeetingRequest, now time.Time) aiPreference {
	hours := make([]int, 0, 8)
	for h := 9; h < 17; h++ {
		hours = append(hours, h)
	}
	pref := aiPreference{
		FlexibleHours: hours,
		Reasoning:     "No explicit preference; defaulting to business hours",
	}

	if req.OrganizerNotes != "" {
		if date, ok := uc.dateMath.FindRelativeDate(req.OrganizerNotes, now); ok {
			pref.PreferredDate = date.Format("2006-01-02")
			pref.Reasoning = "Defaulting to business hours; date taken from organizer notes"
		}
	}
	return pref
}
