package notify

import (
	"context"
	"errors"
	"log/slog"

	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/usecase/notifier"
)

// MultiDispatcher hands every message to each channel dispatcher and joins
// their errors.
type MultiDispatcher struct {
	dispatchers []notifier.Dispatcher
}

func NewMultiDispatcher(dispatchers ...notifier.Dispatcher) *MultiDispatcher {
	return &MultiDispatcher{dispatchers: dispatchers}
}

func (d *MultiDispatcher) Dispatch(ctx context.Context, msg notifier.Message) error {
	var failures []error
	for _, next := range d.dispatchers {
		if err := next.Dispatch(ctx, msg); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// NewFromConfig picks SendGrid and Twilio when their credentials are set.
// With neither configured, messages are only logged.
func NewFromConfig(sg config.SendGridConfig, tw config.TwilioConfig, logger *slog.Logger) notifier.Dispatcher {
	var channels []notifier.Dispatcher
	if sg.APIKey != "" {
		channels = append(channels, NewSendGridDispatcher(sg))
	}
	if tw.Enabled() {
		channels = append(channels, NewTwilioDispatcher(tw))
	}
	if len(channels) == 0 {
		channels = append(channels, NewLogDispatcher(logger))
	}
	return NewMultiDispatcher(channels...)
}
