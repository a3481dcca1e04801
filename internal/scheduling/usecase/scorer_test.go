package usecase

import (
	"testing"
	"time"

	"meetmate/internal/model"
	"meetmate/internal/scheduling"
)

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestScoreSlot_HardFilters(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityMedium, UrgencyScore: 5}
	now := mustTime("2024-05-13 07:00")

	t.Run("disallowed start hour", func(t *testing.T) {
		pref := scheduling.TimePreference{FlexibleHours: []int{9, 10, 11}}
		slot := candidate("s1", mustTime("2024-05-13 14:00"), 30)

		if _, excluded := scoreSlot(slot, pref, pri, now); !excluded {
			t.Error("expected slot outside flexible hours to be excluded")
		}
	})

	t.Run("exact avoid-time match", func(t *testing.T) {
		pref := scheduling.TimePreference{AvoidTimes: []string{"10:30"}}
		slot := candidate("s1", mustTime("2024-05-13 10:30"), 30)

		if _, excluded := scoreSlot(slot, pref, pri, now); !excluded {
			t.Error("expected avoid-time slot to be excluded")
		}
	})

	t.Run("near-miss avoid time is not excluded", func(t *testing.T) {
		pref := scheduling.TimePreference{AvoidTimes: []string{"10:30"}}
		slot := candidate("s1", mustTime("2024-05-13 10:00"), 30)

		if _, excluded := scoreSlot(slot, pref, pri, now); excluded {
			t.Error("10:00 should not match avoid time 10:30")
		}
	})
}

func TestScoreSlot_Deterministic(t *testing.T) {
	pref := scheduling.TimePreference{PreferredTime: "10:00", FlexibleHours: []int{9, 10, 11, 14}}
	pri := scheduling.PriorityAssessment{Level: model.PriorityUrgent, UrgencyScore: 9}
	now := mustTime("2024-05-13 07:00")
	slot := candidate("s1", mustTime("2024-05-14 09:00"), 60)

	first, _ := scoreSlot(slot, pref, pri, now)
	for i := 0; i < 10; i++ {
		if got, _ := scoreSlot(slot, pref, pri, now); got != first {
			t.Fatalf("score not deterministic: %d vs %d", got, first)
		}
	}
}

func TestScoreSlot_PreferredHourPenalty(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityMedium, UrgencyScore: 5}
	now := mustTime("2024-05-13 07:00")
	pref := scheduling.TimePreference{PreferredTime: "10:00"}

	at10, _ := scoreSlot(candidate("a", mustTime("2024-05-14 10:00"), 30), pref, pri, now)
	at14, _ := scoreSlot(candidate("b", mustTime("2024-05-14 14:00"), 30), pref, pri, now)

	// 10:00 gets +15 shaping and no distance penalty; 14:00 gets +10 shaping
	// and -20 distance.
	if at10-at14 != 25 {
		t.Errorf("expected 25-point gap between preferred and distant hour, got %d (%d vs %d)", at10-at14, at10, at14)
	}
}

func TestScoreSlot_LongMeetingMorningBonus(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityMedium, UrgencyScore: 5}
	now := mustTime("2024-05-13 07:00")
	pref := scheduling.TimePreference{}

	long, _ := scoreSlot(candidate("a", mustTime("2024-05-14 10:00"), 90), pref, pri, now)
	short, _ := scoreSlot(candidate("b", mustTime("2024-05-14 10:00"), 60), pref, pri, now)

	if long-short != 20 {
		t.Errorf("expected +20 morning bonus for 90m meeting, got %d", long-short)
	}
}

func TestScoreSlot_UrgencyRecencyPenalty(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityUrgent, UrgencyScore: 8}
	now := mustTime("2024-05-13 07:00")
	pref := scheduling.TimePreference{}

	day1, _ := scoreSlot(candidate("a", mustTime("2024-05-14 10:00"), 30), pref, pri, now)
	day4, _ := scoreSlot(candidate("b", mustTime("2024-05-17 10:00"), 30), pref, pri, now)

	// Same hour and shaping; the only difference is 10 points per day, plus
	// the Tue/Fri weekday difference (+10 vs -5).
	if day1 <= day4 {
		t.Errorf("urgent meeting must prefer earlier day: day1=%d day4=%d", day1, day4)
	}
	if diff := day1 - day4; diff != 3*10+15 {
		t.Errorf("expected 45-point gap, got %d", diff)
	}
}

func TestScoreSlot_FloorsAtZero(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityUrgent, UrgencyScore: 9}
	now := mustTime("2024-05-13 07:00")
	pref := scheduling.TimePreference{}

	// Far-future weekend slot before business hours accumulates penalties
	// well past -100.
	score, excluded := scoreSlot(candidate("a", mustTime("2024-06-15 07:00"), 30), pref, pri, now)
	if excluded {
		t.Fatal("slot should be penalized, not excluded")
	}
	if score != 0 {
		t.Errorf("expected floor at 0, got %d", score)
	}
}

// Mirrors the urgent client-escalation walkthrough: five candidates, urgent
// priority from the keyword fallback, no hour restrictions.
func TestRankSlots_UrgentEscalationOrdering(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityUrgent, UrgencyScore: 9}
	pref := scheduling.TimePreference{}
	now := mustTime("2024-05-13 07:00") // Monday

	slots := []scheduling.CandidateSlot{
		candidate("mon-0800", mustTime("2024-05-13 08:00"), 30),
		candidate("tue-0930", mustTime("2024-05-14 09:30"), 30),
		candidate("tue-1400", mustTime("2024-05-14 14:00"), 30),
		candidate("sat-1000", mustTime("2024-05-18 10:00"), 30),
		candidate("wed-next-0900", mustTime("2024-05-22 09:00"), 30),
	}

	ranked := rankSlots(slots, pref, pri, now)

	if len(ranked) != 5 {
		t.Fatalf("no slot should be hard-filtered without hour restrictions, got %d", len(ranked))
	}
	if ranked[0].ID != "tue-0930" {
		t.Errorf("winner = %s, want tue-0930", ranked[0].ID)
	}

	pos := make(map[string]int, len(ranked))
	for i, s := range ranked {
		pos[s.ID] = i
	}
	if pos["tue-0930"] > pos["mon-0800"] {
		t.Error("Tue 09:30 must outrank Mon 08:00 (outside productivity window)")
	}
	if pos["tue-0930"] > pos["wed-next-0900"] {
		t.Error("Tue 09:30 must outrank next-week Wed (urgency recency penalty)")
	}
	if pos["sat-1000"] < 3 {
		t.Errorf("weekend slot should be heavily penalized, ranked at %d", pos["sat-1000"])
	}
}

func TestRankSlots_WeekendHardFilteredByHourRestriction(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityUrgent, UrgencyScore: 9}
	pref := scheduling.TimePreference{FlexibleHours: []int{9, 14}}
	now := mustTime("2024-05-13 07:00")

	slots := []scheduling.CandidateSlot{
		candidate("tue-0900", mustTime("2024-05-14 09:00"), 30),
		candidate("sat-1000", mustTime("2024-05-18 10:00"), 30),
	}

	ranked := rankSlots(slots, pref, pri, now)
	if len(ranked) != 1 || ranked[0].ID != "tue-0900" {
		t.Errorf("expected only tue-0900 to survive, got %+v", ranked)
	}
}

func TestRankSlots_StableTieBreak(t *testing.T) {
	pri := scheduling.PriorityAssessment{Level: model.PriorityMedium, UrgencyScore: 5}
	pref := scheduling.TimePreference{}
	now := mustTime("2024-05-13 07:00")

	// Same hour on equivalent days: identical scores.
	slots := []scheduling.CandidateSlot{
		candidate("b", mustTime("2024-05-14 10:00"), 30),
		candidate("a", mustTime("2024-05-14 10:00"), 30),
		candidate("c", mustTime("2024-05-13 10:00"), 30),
	}

	ranked := rankSlots(slots, pref, pri, now)

	if ranked[0].ID != "c" {
		t.Errorf("earliest start should win the tie, got %s", ranked[0].ID)
	}
	if ranked[1].ID != "a" || ranked[2].ID != "b" {
		t.Errorf("equal start times should break ties by ID: got %s, %s", ranked[1].ID, ranked[2].ID)
	}
}
