package model

import "fmt"

// Priority is the urgency grade assigned to a meeting request or action item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ScoreBand returns the inclusive urgency-score range consistent with the
// level: urgent 8-10, high 6-8, medium 4-6, low 1-4.
func (p Priority) ScoreBand() (min, max int) {
	switch p {
	case PriorityUrgent:
		return 8, 10
	case PriorityHigh:
		return 6, 8
	case PriorityMedium:
		return 4, 6
	default:
		return 1, 4
	}
}

// ValidateUrgencyScore checks that score sits inside the band for the level.
func (p Priority) ValidateUrgencyScore(score int) error {
	min, max := p.ScoreBand()
	if score < min || score > max {
		return fmt.Errorf("urgency score %d outside band [%d, %d] for priority %q", score, min, max, p)
	}
	return nil
}
