package usecase

import (
	"sort"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/datemath"
)

// scoreSlot is the deterministic slot scorer. It returns the slot's score and
// whether the slot is excluded by a hard filter. All inputs are explicit,
// including now; identical inputs always produce the identical score.
func scoreSlot(slot scheduling.CandidateSlot, pref scheduling.TimePreference, pri scheduling.PriorityAssessment, now time.Time) (int, bool) {
	startHour := slot.StartTime.Hour()

	// Hard filters: disallowed start hour, exact avoid-time match.
	if len(pref.FlexibleHours) > 0 && !containsInt(pref.FlexibleHours, startHour) {
		return 0, true
	}
	startClock := slot.StartTime.Format("15:04")
	for _, avoid := range pref.AvoidTimes {
		if avoid == startClock {
			return 0, true
		}
	}

	score := 100

	// Distance from the preferred hour.
	if preferred := pref.PreferredHour(); preferred >= 0 {
		score -= 5 * absInt(startHour-preferred)
	}

	// Mid-week bonus for high-urgency meetings.
	if pri.UrgencyScore >= 7 {
		switch slot.StartTime.Weekday() {
		case time.Tuesday, time.Wednesday, time.Thursday:
			score += 10
		case time.Monday, time.Friday:
			score -= 5
		case time.Saturday, time.Sunday:
			score -= 20
		}
	}

	// Time-of-day productivity shaping.
	switch {
	case startHour >= 9 && startHour <= 11:
		score += 15
	case startHour >= 14 && startHour <= 16:
		score += 10
	case startHour == 12 || startHour == 13:
		score -= 10
	case startHour < 9 || startHour > 17:
		score -= 20
	}

	// Long meetings do better in the morning.
	if slot.DurationMinutes >= 90 && startHour >= 9 && startHour <= 11 {
		score += 20
	}

	// Very urgent meetings prefer the earliest days.
	if pri.UrgencyScore >= 8 {
		score -= 10 * datemath.CalendarDays(now, slot.StartTime)
	}

	if score < 0 {
		score = 0
	}
	return score, false
}

// rankSlots scores every candidate, drops hard-filtered ones, and returns the
// survivors sorted by score descending, ties broken by earliest start then by
// slot ID for full determinism.
func rankSlots(slots []scheduling.CandidateSlot, pref scheduling.TimePreference, pri scheduling.PriorityAssessment, now time.Time) []scheduling.ScoredSlot {
	scored := make([]scheduling.ScoredSlot, 0, len(slots))
	for _, slot := range slots {
		score, excluded := scoreSlot(slot, pref, pri, now)
		if excluded {
			continue
		}
		scored = append(scored, scheduling.ScoredSlot{CandidateSlot: slot, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if !scored[i].StartTime.Equal(scored[j].StartTime) {
			return scored[i].StartTime.Before(scored[j].StartTime)
		}
		return scored[i].ID < scored[j].ID
	})
	return scored
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
