package notify

import (
	"context"

	"meetmate/internal/followup"
	pkgLog "meetmate/pkg/log"
)

// LogNotifier writes reminders to the log. It stands in for the Telegram
// notifier when no bot token is configured.
type LogNotifier struct {
	l pkgLog.Logger
}

func NewLogNotifier(l pkgLog.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) SendReminder(ctx context.Context, item followup.ActionItemSnapshot, customMessage string) (bool, error) {
	n.l.Infof(ctx, "reminder for %q (assignee %s): %s", item.Title, item.Assignee, customMessage)
	return true, nil
}
