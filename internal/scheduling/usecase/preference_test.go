package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/judgment"
)

func TestExtractPreference_AIResult(t *testing.T) {
	gen := &mockGenerator{responses: map[string]string{
		"time preferences": `{"preferred_date": "2024-05-20", "preferred_time": "10:00", "flexible_hours": [9, 10, 11], "avoid_times": ["12:00"], "reasoning": "morning requested"}`,
	}}
	uc := newTestUseCase(gen, &mockAvailability{}, &mockBooker{})
	now := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)

	got := uc.extractPreference(context.Background(), scheduling.MeetingRequest{Title: "sync tomorrow morning"}, now)

	if got.Provenance != judgment.ProvenanceAI {
		t.Fatalf("expected ai provenance, got %s", got.Provenance)
	}
	if got.PreferredDate != "2024-05-20" || got.PreferredTime != "10:00" {
		t.Errorf("unexpected preference: %+v", got)
	}
	if got.PreferredHour() != 10 {
		t.Errorf("PreferredHour = %d, want 10", got.PreferredHour())
	}
}

func TestExtractPreference_NotesReachTheJudgment(t *testing.T) {
	gen := &mockGenerator{responses: map[string]string{
		"time preferences": `{"preferred_date": "", "preferred_time": "", "flexible_hours": [], "avoid_times": [], "reasoning": "ok"}`,
	}}
	uc := newTestUseCase(gen, &mockAvailability{}, &mockBooker{})
	now := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)

	uc.extractPreference(context.Background(), scheduling.MeetingRequest{
		Title:          "sync",
		OrganizerNotes: "prefer next monday morning, not before 10am",
	}, now)

	if len(gen.contents) != 1 {
		t.Fatalf("expected one judgment call, got %d", len(gen.contents))
	}
	if !strings.Contains(gen.contents[0], "prefer next monday morning, not before 10am") {
		t.Errorf("organizer notes missing from judgment payload: %s", gen.contents[0])
	}
}

func TestExtractPreference_InvalidFieldsFallBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"hour out of range", `{"preferred_date": "", "preferred_time": "", "flexible_hours": [25], "avoid_times": [], "reasoning": ""}`},
		{"bad preferred time", `{"preferred_date": "", "preferred_time": "afternoon", "flexible_hours": [], "avoid_times": [], "reasoning": ""}`},
		{"bad avoid time", `{"preferred_date": "", "preferred_time": "", "flexible_hours": [], "avoid_times": ["noonish"], "reasoning": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{responses: map[string]string{"time preferences": tt.response}}
			uc := newTestUseCase(gen, &mockAvailability{}, &mockBooker{})
			now := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)

			got := uc.extractPreference(context.Background(), scheduling.MeetingRequest{Title: "sync"}, now)

			if got.Provenance != judgment.ProvenanceFallback {
				t.Fatalf("expected fallback provenance, got %s", got.Provenance)
			}
		})
	}
}

func TestExtractPreference_DefaultFallback(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	uc := newTestUseCase(gen, &mockAvailability{}, &mockBooker{})
	now := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)

	got := uc.extractPreference(context.Background(), scheduling.MeetingRequest{Title: "sync"}, now)

	if got.Provenance != judgment.ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", got.Provenance)
	}
	if got.PreferredDate != "" || got.PreferredTime != "" {
		t.Errorf("default fallback should carry no explicit preference: %+v", got)
	}
	if len(got.AvoidTimes) != 0 {
		t.Errorf("default fallback avoid-set should be empty: %v", got.AvoidTimes)
	}
	// Business hours: start hours 9 through 16, so a one-hour meeting still
	// ends by 17:00.
	want := []int{9, 10, 11, 12, 13, 14, 15, 16}
	if len(got.FlexibleHours) != len(want) {
		t.Fatalf("flexible hours = %v, want %v", got.FlexibleHours, want)
	}
	for i, h := range want {
		if got.FlexibleHours[i] != h {
			t.Fatalf("flexible hours = %v, want %v", got.FlexibleHours, want)
		}
	}
	if got.PreferredHour() != -1 {
		t.Errorf("PreferredHour with no preference = %d, want -1", got.PreferredHour())
	}
}

func TestExtractPreference_FallbackReadsNotesForDate(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	uc := newTestUseCase(gen, &mockAvailability{}, &mockBooker{})
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	got := uc.extractPreference(context.Background(), scheduling.MeetingRequest{
		Title:          "planning session",
		OrganizerNotes: "Prefer next Monday if everyone is around",
	}, now)

	if got.Provenance != judgment.ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", got.Provenance)
	}
	if got.PreferredDate != "2024-05-06" {
		t.Errorf("PreferredDate = %q, want 2024-05-06", got.PreferredDate)
	}
}
