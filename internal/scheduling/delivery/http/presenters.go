package http

import (
	"strings"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/gcalendar"
)

type analyzeReq struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Organizer       string   `json:"organizer"`
	OrganizerNotes  string   `json:"organizer_notes"`
	Attendees       []string `json:"attendees"`
	DurationMinutes int      `json:"duration_minutes"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return scheduling.ErrEmptyTitle
	}
	if r.DurationMinutes <= 0 {
		return scheduling.ErrInvalidDuration
	}
	return nil
}

func (r analyzeReq) toRequest() scheduling.MeetingRequest {
	return scheduling.MeetingRequest{
		Title:           r.Title,
		Description:     r.Description,
		Organizer:       r.Organizer,
		OrganizerNotes:  r.OrganizerNotes,
		Attendees:       r.Attendees,
		DurationMinutes: r.DurationMinutes,
	}
}

type recommendReq struct {
	analyzeReq
	AutoBook bool `json:"auto_book"`
}

func (r recommendReq) validate() error {
	if err := r.analyzeReq.validate(); err != nil {
		return err
	}
	if len(r.Attendees) == 0 {
		return scheduling.ErrNoAttendees
	}
	return nil
}

type priorityResp struct {
	Level        string `json:"level"`
	UrgencyScore int    `json:"urgency_score"`
	Reasoning    string `json:"reasoning"`
	Provenance   string `json:"provenance"`
}

type preferenceResp struct {
	PreferredDate string   `json:"preferred_date,omitempty"`
	PreferredTime string   `json:"preferred_time,omitempty"`
	FlexibleHours []int    `json:"flexible_hours"`
	AvoidTimes    []string `json:"avoid_times"`
	Reasoning     string   `json:"reasoning"`
	Provenance    string   `json:"provenance"`
}

type analyzeResp struct {
	Priority   priorityResp   `json:"priority"`
	Preference preferenceResp `json:"preference"`
}

type slotResp struct {
	SlotID          string `json:"slot_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Score           int    `json:"score"`
}

type recommendationResp struct {
	SlotID     string  `json:"slot_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Score      int     `json:"score"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Provenance string  `json:"provenance"`
}

type bookedResp struct {
	EventID   string `json:"event_id"`
	Summary   string `json:"summary"`
	HTMLLink  string `json:"html_link,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type recommendResp struct {
	Found          bool                `json:"found"`
	Reason         string              `json:"reason,omitempty"`
	Recommendation *recommendationResp `json:"recommendation,omitempty"`
	Alternates     []slotResp          `json:"alternates"`
	Priority       priorityResp        `json:"priority"`
	Preference     preferenceResp      `json:"preference"`
	Booked         *bookedResp         `json:"booked,omitempty"`
}

func newPriorityResp(p scheduling.PriorityAssessment) priorityResp {
	return priorityResp{
		Level:        string(p.Level),
		UrgencyScore: p.UrgencyScore,
		Reasoning:    p.Reasoning,
		Provenance:   string(p.Provenance),
	}
}

func newPreferenceResp(p scheduling.TimePreference) preferenceResp {
	return preferenceResp{
		PreferredDate: p.PreferredDate,
		PreferredTime: p.PreferredTime,
		FlexibleHours: p.FlexibleHours,
		AvoidTimes:    p.AvoidTimes,
		Reasoning:     p.Reasoning,
		Provenance:    string(p.Provenance),
	}
}

func (h *handler) newAnalyzeResp(out scheduling.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Priority:   newPriorityResp(out.Priority),
		Preference: newPreferenceResp(out.Preference),
	}
}

func (h *handler) newRecommendResp(out scheduling.RecommendOutput) recommendResp {
	resp := recommendResp{
		Found:      out.Found,
		Reason:     out.Reason,
		Alternates: make([]slotResp, 0, len(out.Alternates)),
		Priority:   newPriorityResp(out.Priority),
		Preference: newPreferenceResp(out.Preference),
	}

	if out.Recommendation != nil {
		resp.Recommendation = &recommendationResp{
			SlotID:     out.Recommendation.SlotID,
			StartTime:  out.Recommendation.StartTime.Format(time.RFC3339),
			EndTime:    out.Recommendation.EndTime.Format(time.RFC3339),
			Score:      out.Recommendation.Score,
			Confidence: out.Recommendation.Confidence,
			Reasoning:  out.Recommendation.Reasoning,
			Provenance: string(out.Recommendation.Provenance),
		}
	}

	for _, alt := range out.Alternates {
		resp.Alternates = append(resp.Alternates, slotResp{
			SlotID:          alt.ID,
			StartTime:       alt.StartTime.Format(time.RFC3339),
			EndTime:         alt.EndTime.Format(time.RFC3339),
			DurationMinutes: alt.DurationMinutes,
			Score:           alt.Score,
		})
	}

	if out.Booked != nil {
		resp.Booked = newBookedResp(out.Booked)
	}

	return resp
}

func newBookedResp(ev *gcalendar.BookedEvent) *bookedResp {
	return &bookedResp{
		EventID:   ev.ID,
		Summary:   ev.Summary,
		HTMLLink:  ev.HtmlLink,
		StartTime: ev.StartTime.Format(time.RFC3339),
		EndTime:   ev.EndTime.Format(time.RFC3339),
	}
}
