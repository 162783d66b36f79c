package notify

import (
	"context"
	"strings"

	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/notifier"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioDispatcher delivers the SMS channel. Messages without an SMS body or
// a recipient phone are skipped.
type TwilioDispatcher struct {
	api  messageCreator
	from string
}

func NewTwilioDispatcher(cfg config.TwilioConfig) *TwilioDispatcher {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})
	return newTwilioDispatcher(client.Api, cfg.FromNumber)
}

func newTwilioDispatcher(api messageCreator, from string) *TwilioDispatcher {
	return &TwilioDispatcher{api: api, from: from}
}

func (d *TwilioDispatcher) Dispatch(_ context.Context, msg notifier.Message) error {
	if msg.SMS == "" || msg.Recipient.Phone == "" {
		return nil
	}
	if !strings.HasPrefix(msg.Recipient.Phone, "+") {
		return errs.Newf("phone %q is not in E.164 format", msg.Recipient.Phone)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.Recipient.Phone)
	params.SetFrom(d.from)
	params.SetBody(msg.SMS)

	if _, err := d.api.CreateMessage(params); err != nil {
		return errs.Wrap(err, "twilio create message")
	}
	return nil
}
