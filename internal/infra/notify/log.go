package notify

import (
	"context"
	"log/slog"

	"parkbuddy/internal/usecase/notifier"
)

// LogDispatcher records messages instead of delivering them.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, msg notifier.Message) error {
	attachments := make([]string, len(msg.Attachments))
	for i, a := range msg.Attachments {
		attachments[i] = a.Filename
	}
	d.logger.InfoContext(ctx, "notification",
		"to", msg.Recipient.Email,
		"phone", msg.Recipient.Phone,
		"subject", msg.Subject,
		"sms", msg.SMS != "" && msg.Recipient.Phone != "",
		"attachments", attachments)
	return nil
}
