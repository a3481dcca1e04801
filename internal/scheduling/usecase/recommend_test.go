package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/gcalendar"
	"meetmate/pkg/judgment"
)

func weekSlots() []gcalendar.Slot {
	mk := func(id, start string) gcalendar.Slot {
		s := mustTime(start)
		return gcalendar.Slot{ID: id, StartTime: s, EndTime: s.Add(30 * time.Minute), DurationMinutes: 30}
	}
	return []gcalendar.Slot{
		mk("mon-0800", "2024-05-13 08:00"),
		mk("tue-0930", "2024-05-14 09:30"),
		mk("tue-1400", "2024-05-14 14:00"),
		mk("sat-1000", "2024-05-18 10:00"),
		mk("wed-next-0900", "2024-05-22 09:00"),
	}
}

func urgentRequest() scheduling.MeetingRequest {
	return scheduling.MeetingRequest{
		Title:           "URGENT: client escalation",
		Description:     "production incident review",
		Organizer:       "carol@example.com",
		Attendees:       []string{"alice@example.com", "bob@example.com"},
		DurationMinutes: 30,
	}
}

func TestRecommend_InputValidation(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{}, &mockAvailability{}, &mockBooker{})
	ctx := context.Background()

	tests := []struct {
		name    string
		input   scheduling.RecommendInput
		wantErr error
	}{
		{"empty title", scheduling.RecommendInput{Request: scheduling.MeetingRequest{DurationMinutes: 30, Attendees: []string{"a@example.com"}}}, scheduling.ErrEmptyTitle},
		{"zero duration", scheduling.RecommendInput{Request: scheduling.MeetingRequest{Title: "x", Attendees: []string{"a@example.com"}}}, scheduling.ErrInvalidDuration},
		{"no attendees", scheduling.RecommendInput{Request: scheduling.MeetingRequest{Title: "x", DurationMinutes: 30}}, scheduling.ErrNoAttendees},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Recommend(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommend_FallbackOnlyPipeline(t *testing.T) {
	// Reasoning service completely down: every stage falls back, the
	// pipeline still produces a full recommendation.
	gen := &mockGenerator{err: errors.New("service unavailable")}
	avail := &mockAvailability{slots: weekSlots()}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Found {
		t.Fatalf("expected a recommendation, got reason %q", out.Reason)
	}
	if out.Priority.Provenance != judgment.ProvenanceFallback || out.Priority.UrgencyScore != 9 {
		t.Errorf("expected urgent/9 keyword fallback, got %+v", out.Priority)
	}
	if out.Recommendation.Provenance != judgment.ProvenanceFallback {
		t.Errorf("expected fallback recommendation, got %s", out.Recommendation.Provenance)
	}
	if out.Recommendation.Confidence != 0.7 {
		t.Errorf("fallback confidence = %f, want 0.7", out.Recommendation.Confidence)
	}
	// Default business-hours fallback excludes the 08:00 slot; Tue 09:30
	// wins among the survivors.
	if out.Recommendation.SlotID != "tue-0930" {
		t.Errorf("recommended %s, want tue-0930", out.Recommendation.SlotID)
	}
	if len(out.Alternates) == 0 || len(out.Alternates) > 4 {
		t.Errorf("expected 1-4 alternates, got %d", len(out.Alternates))
	}
	for _, alt := range out.Alternates {
		if alt.ID == out.Recommendation.SlotID {
			t.Error("recommended slot repeated in alternates")
		}
	}
}

func TestRecommend_EmptyCandidateSetIsTerminalNotError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	avail := &mockAvailability{} // no slots at all
	uc := newTestUseCase(gen, avail, &mockBooker{})

	out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err != nil {
		t.Fatalf("empty candidate set must not be an error: %v", err)
	}

	if out.Found {
		t.Fatal("expected Found=false")
	}
	if out.Reason == "" {
		t.Error("expected a diagnostic reason")
	}
	if out.Priority.UrgencyScore != 9 {
		t.Errorf("analysis must still be carried for diagnostics, got %+v", out.Priority)
	}
	if n := gen.promptCount("shortlist"); n != 0 {
		t.Errorf("reconciliation must not run on an empty set, got %d calls", n)
	}
}

func TestRecommend_AllSlotsHardFiltered(t *testing.T) {
	gen := &mockGenerator{responses: map[string]string{
		"time preferences": `{"preferred_date": "", "preferred_time": "", "flexible_hours": [9], "avoid_times": ["09:30"], "reasoning": "only 9am, not 9:30"}`,
	}}
	slots := weekSlots()[:2] // mon-0800 and tue-0930
	avail := &mockAvailability{slots: slots}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Found {
		t.Fatalf("expected no suitable slot, got %+v", out.Recommendation)
	}
}

func TestRecommend_AvailabilityErrorSurfaces(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	avail := &mockAvailability{err: errors.New("calendar API quota exceeded")}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	_, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err == nil {
		t.Fatal("expected availability error to surface")
	}
}

func TestRecommend_ConflictSummaryReflectsCalendarLoad(t *testing.T) {
	day := mustTime("2024-05-14 00:00")
	gen := &mockGenerator{responses: map[string]string{}}
	avail := &mockAvailability{
		slots: weekSlots(),
		busy: map[string][]gcalendar.BusyInterval{
			"alice@example.com": {
				{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
				{Start: day.Add(15 * time.Hour), End: day.Add(16 * time.Hour)},
			},
		},
	}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Found {
		t.Fatalf("expected a recommendation, got reason %q", out.Reason)
	}

	if n := gen.promptCount("shortlist"); n != 1 {
		t.Fatalf("expected one reconciliation call, got %d", n)
	}
	if !gen.payloadContains("alice@example.com: 2 existing meetings") {
		t.Error("reconciliation payload missing alice's calendar load")
	}
	if !gen.payloadContains("bob@example.com: 0 existing meetings") {
		t.Error("reconciliation payload missing bob's calendar load")
	}
}

func TestRecommend_PreferredDateNarrowsWindow(t *testing.T) {
	gen := &mockGenerator{responses: map[string]string{
		"time preferences": `{"preferred_date": "2024-05-20", "preferred_time": "", "flexible_hours": [], "avoid_times": [], "reasoning": "next week requested"}`,
	}}
	avail := &mockAvailability{slots: weekSlots()}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	_, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
		Request: urgentRequest(),
		Now:     mustTime("2024-05-13 07:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := avail.gotStart; !got.Equal(mustTime("2024-05-20 00:00")) {
		t.Errorf("window start = %v, want 2024-05-20", got)
	}
	if got := avail.gotEnd; !got.Equal(mustTime("2024-05-27 00:00")) {
		t.Errorf("window end = %v, want 2024-05-27", got)
	}
}

func TestRecommend_UnparseablePreferredDateKeepsDefaultWindow(t *testing.T) {
	gen := &mockGenerator{responses: map[string]string{
		"time preferences": `{"preferred_date": "sometime soon", "preferred_time": "", "flexible_hours": [], "avoid_times": [], "reasoning": ""}`,
	}}
	avail := &mockAvailability{slots: weekSlots()}
	uc := newTestUseCase(gen, avail, &mockBooker{})

	now := mustTime("2024-05-13 07:00")
	if _, err := uc.Recommend(context.Background(), scheduling.RecommendInput{Request: urgentRequest(), Now: now}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !avail.gotStart.Equal(now) {
		t.Errorf("window start = %v, want now", avail.gotStart)
	}
	if !avail.gotEnd.Equal(now.AddDate(0, 0, 14)) {
		t.Errorf("window end = %v, want now+14d", avail.gotEnd)
	}
}

func TestRecommend_AutoBook(t *testing.T) {
	t.Run("books the recommended slot", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("service unavailable")}
		booker := &mockBooker{}
		uc := newTestUseCase(gen, &mockAvailability{slots: weekSlots()}, booker)

		out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
			Request:  urgentRequest(),
			Now:      mustTime("2024-05-13 07:00"),
			AutoBook: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Booked == nil {
			t.Fatal("expected a booked event")
		}
		if len(booker.booked) != 1 {
			t.Fatalf("expected exactly one booking attempt, got %d", len(booker.booked))
		}
		if !booker.booked[0].StartTime.Equal(out.Recommendation.StartTime) {
			t.Errorf("booked start %v does not match recommendation %v", booker.booked[0].StartTime, out.Recommendation.StartTime)
		}
	})

	t.Run("single attempt on failure", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("service unavailable")}
		booker := &mockBooker{err: errors.New("event insert rejected")}
		uc := newTestUseCase(gen, &mockAvailability{slots: weekSlots()}, booker)

		out, err := uc.Recommend(context.Background(), scheduling.RecommendInput{
			Request:  urgentRequest(),
			Now:      mustTime("2024-05-13 07:00"),
			AutoBook: true,
		})

		if !errors.Is(err, scheduling.ErrBookingFailed) {
			t.Fatalf("expected ErrBookingFailed, got %v", err)
		}
		if len(booker.booked) != 1 {
			t.Errorf("booking must not be retried, got %d attempts", len(booker.booked))
		}
		if out.Recommendation == nil {
			t.Error("recommendation should still be returned alongside the booking error")
		}
	})
}
