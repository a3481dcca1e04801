package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/gcalendar"
)

// Recommend runs the full pipeline: concurrent analysis, candidate search,
// deterministic scoring, reconciliation, and optional booking.
func (uc *implUseCase) Recommend(ctx context.Context, input scheduling.RecommendInput) (scheduling.RecommendOutput, error) {
	req := input.Request
	if err := validateRequest(req); err != nil {
		return scheduling.RecommendOutput{}, err
	}
	if len(req.Attendees) == 0 {
		return scheduling.RecommendOutput{}, scheduling.ErrNoAttendees
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	pri, pref := uc.analyzeRequest(ctx, req, now)
	out := scheduling.RecommendOutput{Priority: pri, Preference: pref}

	start, end := uc.searchWindow(pref, now)
	uc.l.Infof(ctx, "scheduling: searching slots for %q in [%s, %s] priority=%s urgency=%d",
		req.Title, start.Format("2006-01-02"), end.Format("2006-01-02"), pri.Level, pri.UrgencyScore)

	busy, err := uc.availability.Availability(ctx, req.Attendees, start, end)
	if err != nil {
		return out, fmt.Errorf("fetching attendee availability: %w", err)
	}
	rawSlots := uc.availability.FindSlots(busy, start, end, req.DurationMinutes, uc.cfg.BufferMinutes)

	candidates := make([]scheduling.CandidateSlot, 0, len(rawSlots))
	for _, s := range rawSlots {
		candidates = append(candidates, scheduling.CandidateSlot{
			ID:              s.ID,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
		})
	}

	ranked := rankSlots(candidates, pref, pri, now)
	if len(ranked) == 0 {
		out.Reason = "no slot survived availability and preference filtering"
		uc.l.Infof(ctx, "scheduling: no suitable slot for %q out of %d candidates", req.Title, len(candidates))
		return out, nil
	}

	top := ranked
	if len(top) > uc.cfg.TopK {
		top = top[:uc.cfg.TopK]
	}

	rec := uc.reconcile(ctx, top, pri, pref, conflictSummary(req.Attendees, busy))
	out.Found = true
	out.Recommendation = &rec

	for _, s := range top {
		if s.ID == rec.SlotID {
			continue
		}
		out.Alternates = append(out.Alternates, s)
		if len(out.Alternates) == uc.cfg.TopK-1 {
			break
		}
	}

	if input.AutoBook {
		booked, bookErr := uc.booker.Book(ctx, gcalendar.BookEventRequest{
			Title:       req.Title,
			Description: req.Description,
			Attendees:   req.Attendees,
			StartTime:   rec.StartTime,
			EndTime:     rec.EndTime,
		})
		if bookErr != nil {
			// Single attempt; the caller decides whether to rerun the flow.
			uc.l.Errorf(ctx, "scheduling: booking failed for %q slot %s: %v", req.Title, rec.SlotID, bookErr)
			return out, fmt.Errorf("%w: %v", scheduling.ErrBookingFailed, bookErr)
		}
		out.Booked = booked
	}

	return out, nil
}

// conflictSummary describes each attendee's calendar load inside the search
// window so reconciliation can weigh how contended the shortlist is.
func conflictSummary(attendees []string, busy map[string][]gcalendar.BusyInterval) string {
	parts := make([]string, 0, len(attendees))
	for _, a := range attendees {
		parts = append(parts, fmt.Sprintf("%s: %d existing meetings", a, len(busy[a])))
	}
	return strings.Join(parts, "; ")
}

// searchWindow derives the slot search window: [now, now+default] unless a
// parseable preferred date narrows it.
func (uc *implUseCase) searchWindow(pref scheduling.TimePreference, now time.Time) (time.Time, time.Time) {
	start := now
	end := now.AddDate(0, 0, uc.cfg.SearchWindowDays)

	if pref.PreferredDate == "" {
		return start, end
	}

	preferred, err := uc.dateMath.ParseDate(pref.PreferredDate)
	if err != nil {
		preferred, err = uc.dateMath.Parse(pref.PreferredDate, now)
	}
	if err != nil || preferred.Before(uc.dateMath.StartOfDay(now)) {
		return start, end
	}

	if preferred.After(now) {
		start = preferred
	}
	return start, start.AddDate(0, 0, uc.cfg.PreferredWindowDays)
}
