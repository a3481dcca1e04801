package repository

import (
	"context"
	"time"

	"meetmate/internal/followup"
)

// ItemRepository is the read-only query surface over action items. Writing
// back status changes is the caller's concern, not the triage pipeline's.
type ItemRepository interface {
	// Overdue returns items whose due date is before now's date and whose
	// status is still pending or in progress.
	Overdue(ctx context.Context, now time.Time) ([]followup.ActionItemSnapshot, error)

	// DueWithin returns open items due between now's date and now+days
	// inclusive.
	DueWithin(ctx context.Context, now time.Time, days int) ([]followup.ActionItemSnapshot, error)
}
