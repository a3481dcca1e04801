package scheduling

import (
	"context"
	"time"

	"meetmate/pkg/gcalendar"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// Analyze runs priority classification and time-preference extraction for
	// a meeting request without touching the calendar.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Recommend runs the full pipeline: analysis, candidate slot search,
	// scoring, and reconciliation, optionally booking the winning slot.
	Recommend(ctx context.Context, input RecommendInput) (RecommendOutput, error)
}

// AvailabilityProvider supplies attendee busy intervals and conflict-free
// candidate slots derived from them. The pipeline trusts FindSlots for
// conflict-freedom and never merges busy intervals itself, but it does read
// the busy map to summarize calendar load for reconciliation.
type AvailabilityProvider interface {
	Availability(ctx context.Context, attendees []string, start, end time.Time) (map[string][]gcalendar.BusyInterval, error)
	FindSlots(busy map[string][]gcalendar.BusyInterval, start, end time.Time, durationMinutes, bufferMinutes int) []gcalendar.Slot
}

// Booker creates the actual calendar event once a slot is confirmed.
type Booker interface {
	Book(ctx context.Context, req gcalendar.BookEventRequest) (*gcalendar.BookedEvent, error)
}
