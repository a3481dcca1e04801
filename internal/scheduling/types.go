package scheduling

import (
	"time"

	"meetmate/internal/model"
	"meetmate/pkg/datemath"
	"meetmate/pkg/gcalendar"
	"meetmate/pkg/judgment"
)

// MeetingRequest describes the meeting the caller wants scheduled.
type MeetingRequest struct {
	Title           string
	Description     string
	Organizer       string
	OrganizerNotes  string   // free-text notes ("prefer next monday morning")
	Attendees       []string // attendee email addresses
	DurationMinutes int
}

// PriorityAssessment grades a meeting request's urgency.
type PriorityAssessment struct {
	Level        model.Priority
	UrgencyScore int // 1-10, consistent with Level's band
	Reasoning    string
	Provenance   judgment.Provenance
}

// TimePreference captures scheduling preferences extracted from the request
// text. Empty fields mean "no preference stated".
type TimePreference struct {
	PreferredDate string   // ISO date or relative phrase ("tomorrow", "next monday")
	PreferredTime string   // HH:MM
	FlexibleHours []int    // acceptable start hours; empty means any
	AvoidTimes    []string // exact HH:MM starts to exclude
	Reasoning     string
	Provenance    judgment.Provenance
}

// PreferredHour returns the preferred start hour, or -1 when none was stated.
func (p TimePreference) PreferredHour() int {
	if p.PreferredTime == "" {
		return -1
	}
	h, _, err := datemath.ParseClock(p.PreferredTime)
	if err != nil {
		return -1
	}
	return h
}

// CandidateSlot is one conflict-free slot under consideration. The ID is
// opaque and echoed through reconciliation for exact correlation.
type CandidateSlot struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// ScoredSlot is a candidate slot with its deterministic score attached.
type ScoredSlot struct {
	CandidateSlot
	Score int
}

// Recommendation is the chosen slot plus the justification for choosing it.
type Recommendation struct {
	SlotID     string
	StartTime  time.Time
	EndTime    time.Time
	Score      int
	Confidence float64 // in [0,1]
	Reasoning  string
	Provenance judgment.Provenance
}

// AnalyzeInput is the input for the analysis-only operation.
type AnalyzeInput struct {
	Request MeetingRequest
	Now     time.Time
}

// AnalyzeOutput carries the two independent judgments about a request.
type AnalyzeOutput struct {
	Priority   PriorityAssessment
	Preference TimePreference
}

// RecommendInput is the input for the full recommendation pipeline.
type RecommendInput struct {
	Request MeetingRequest
	Now     time.Time

	// AutoBook books the recommended slot immediately instead of waiting
	// for a separate confirmation call.
	AutoBook bool
}

// RecommendOutput is the result of the recommendation pipeline. Found is
// false when no slot survives filtering; that is a valid terminal state, not
// an error, and Priority/Preference still carry the analysis for diagnostics.
type RecommendOutput struct {
	Found          bool
	Reason         string // diagnostic when Found is false
	Recommendation *Recommendation
	Alternates     []ScoredSlot
	Priority       PriorityAssessment
	Preference     TimePreference
	Booked         *gcalendar.BookedEvent
}
