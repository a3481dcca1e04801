package followup

import "context"

// UseCase defines the business logic interface for the follow-up domain.
type UseCase interface {
	// Analyze runs risk analysis and strategy selection for a single item.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Process triages all overdue and upcoming items, sending reminders and
	// recording escalations. Per-item failures are aggregated, never raised.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// StartProcess runs Process in the background and returns a handle the
	// caller can await or poll.
	StartProcess(ctx context.Context, input ProcessInput) *Run

	// Report builds a management summary across overdue and upcoming items.
	Report(ctx context.Context, input ReportInput) (Report, error)
}

// Notifier delivers reminder notifications for action items.
type Notifier interface {
	SendReminder(ctx context.Context, item ActionItemSnapshot, customMessage string) (bool, error)
}

// EscalationSink receives escalation records. The original system only logs
// the intent; implementations may open tickets or page someone.
type EscalationSink interface {
	Escalate(ctx context.Context, item ActionItemSnapshot, strategy FollowUpStrategy) error
}
