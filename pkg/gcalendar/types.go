package gcalendar

import "time"

// BusyInterval is one busy block on an attendee's calendar.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is a conflict-free candidate meeting slot. ID is an opaque identifier
// generated when the slot is produced; callers correlate on it, never on
// formatted timestamps.
type Slot struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// SlotOptions bounds candidate slot generation.
type SlotOptions struct {
	DayStartHour int            // first hour of day considered (default 8)
	DayEndHour   int            // slots must end by this hour (default 18)
	StepMinutes  int            // candidate start granularity (default 30)
	Location     *time.Location // timezone for day boundaries (default UTC)
}

// BookEventRequest is the input for booking a meeting on the calendar.
type BookEventRequest struct {
	CalendarID  string
	Title       string
	Description string
	Attendees   []string // attendee email addresses
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// BookedEvent is a simplified representation of a created calendar event.
type BookedEvent struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
