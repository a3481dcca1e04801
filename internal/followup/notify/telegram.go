package notify

import (
	"context"
	"fmt"
	"strings"

	"meetmate/internal/followup"
	pkgLog "meetmate/pkg/log"
	"meetmate/pkg/telegram"
)

// TelegramNotifier delivers action-item reminders to a Telegram chat.
type TelegramNotifier struct {
	bot    *telegram.Bot
	chatID int64
	l      pkgLog.Logger
}

// NewTelegramNotifier creates a notifier posting to the given chat.
func NewTelegramNotifier(bot *telegram.Bot, chatID int64, l pkgLog.Logger) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID, l: l}
}

// SendReminder formats and sends one reminder message. Single attempt.
func (n *TelegramNotifier) SendReminder(ctx context.Context, item followup.ActionItemSnapshot, customMessage string) (bool, error) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*Reminder: %s*\n", item.Title))
	if item.AssigneeName != "" {
		b.WriteString(fmt.Sprintf("Assignee: %s\n", item.AssigneeName))
	} else if item.Assignee != "" {
		b.WriteString(fmt.Sprintf("Assignee: %s\n", item.Assignee))
	}
	if item.HasDueDate() {
		b.WriteString(fmt.Sprintf("Due: %s\n", item.DueDate.Format("2006-01-02")))
	}
	if item.MeetingTitle != "" {
		b.WriteString(fmt.Sprintf("From meeting: %s\n", item.MeetingTitle))
	}
	if customMessage != "" {
		b.WriteString("\n" + customMessage)
	}

	if err := n.bot.SendMessageWithMode(ctx, n.chatID, b.String(), "Markdown"); err != nil {
		return false, err
	}
	n.l.Debugf(ctx, "notify: reminder sent for item %s", item.ID)
	return true, nil
}
