package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrEmptyTitle      = errors.New("meeting title is empty")
	ErrInvalidDuration = errors.New("meeting duration must be positive")
	ErrNoAttendees     = errors.New("at least one attendee is required")
	ErrBookingFailed   = errors.New("calendar booking failed")
)
