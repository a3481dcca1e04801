package usecase

import (
	"context"
	"fmt"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/judgment"
)

const reconcileInstructions = `You are an expert meeting scheduler who picks the best slot from a shortlist.

Consider:
1. Attendee availability and conflicts
2. Meeting priority level
3. The deterministic score attached to each candidate
4. Business hours and productivity patterns

Every candidate carries an opaque "slot_id". You MUST echo the chosen candidate's slot_id verbatim; do not invent or modify identifiers.

Schema: {"slot_id": "<one of the candidate slot_ids>", "confidence": <float 0-1>, "reasoning": "<string>"}`

type aiRecommendation struct {
	SlotID     string  `json:"slot_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// reconcile asks the reasoning service to pick one of the top-scored slots.
// The chosen slot_id must key back to exactly one candidate; any mismatch or
// out-of-range confidence falls back to the highest-scored candidate.
func (uc *implUseCase) reconcile(
	ctx context.Context,
	candidates []scheduling.ScoredSlot,
	pri scheduling.PriorityAssessment,
	pref scheduling.TimePreference,
	conflictSummary string,
) scheduling.Recommendation {
	byID := make(map[string]scheduling.ScoredSlot, len(candidates))
	candidateCtx := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
		candidateCtx = append(candidateCtx, map[string]any{
			"slot_id":          c.ID,
			"start":            c.StartTime.Format(time.RFC3339),
			"end":              c.EndTime.Format(time.RFC3339),
			"weekday":          c.StartTime.Weekday().String(),
			"duration_minutes": c.DurationMinutes,
			"score":            c.Score,
		})
	}

	spec := judgment.Spec{
		Name:         "slot_recommendation",
		Instructions: reconcileInstructions,
		Context: map[string]any{
			"candidates":       candidateCtx,
			"priority_level":   string(pri.Level),
			"urgency_score":    pri.UrgencyScore,
			"preferred_date":   pref.PreferredDate,
			"preferred_time":   pref.PreferredTime,
			"conflict_summary": conflictSummary,
		},
	}

	result := judgment.Ask(ctx, uc.judge, spec,
		func(r *aiRecommendation) error {
			if _, ok := byID[r.SlotID]; !ok {
				return fmt.Errorf("slot_id %q does not match any candidate", r.SlotID)
			}
			if r.Confidence < 0 || r.Confidence > 1 {
				return fmt.Errorf("confidence %f out of range", r.Confidence)
			}
			return nil
		},
		func() aiRecommendation {
			return aiRecommendation{
				SlotID:     candidates[0].ID,
				Confidence: 0.7,
				Reasoning:  "heuristic fallback: reconciliation failed",
			}
		},
	)

	chosen := byID[result.Value.SlotID]
	return scheduling.Recommendation{
		SlotID:     chosen.ID,
		StartTime:  chosen.StartTime,
		EndTime:    chosen.EndTime,
		Score:      chosen.Score,
		Confidence: result.Value.Confidence,
		Reasoning:  result.Value.Reasoning,
		Provenance: result.Provenance,
	}
}
