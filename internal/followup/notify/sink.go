package notify

import (
	"context"

	"meetmate/internal/followup"
	pkgLog "meetmate/pkg/log"
)

// LogEscalationSink records escalations in the log only. The escalation
// contract is defined but its downstream effect (ticket, page, reassignment)
// is left to deployments that wire a real sink.
type LogEscalationSink struct {
	l pkgLog.Logger
}

// NewLogEscalationSink creates the log-only escalation sink.
func NewLogEscalationSink(l pkgLog.Logger) *LogEscalationSink {
	return &LogEscalationSink{l: l}
}

// Escalate logs the escalation intent and succeeds.
func (s *LogEscalationSink) Escalate(ctx context.Context, item followup.ActionItemSnapshot, strategy followup.FollowUpStrategy) error {
	s.l.Warnf(ctx, "escalation: item %s (%s) priority=%s notify=%v",
		item.ID, item.Title, strategy.PriorityLevel, strategy.Stakeholders)
	return nil
}
