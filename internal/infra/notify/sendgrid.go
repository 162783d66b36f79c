package notify

import (
	"context"
	"encoding/base64"

	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/usecase/notifier"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridDispatcher delivers the email channel.
type SendGridDispatcher struct {
	client   mailSender
	fromName string
	from     string
}

func NewSendGridDispatcher(cfg config.SendGridConfig) *SendGridDispatcher {
	return newSendGridDispatcher(sendgrid.NewSendClient(cfg.APIKey), cfg)
}

func newSendGridDispatcher(client mailSender, cfg config.SendGridConfig) *SendGridDispatcher {
	return &SendGridDispatcher{
		client:   client,
		fromName: cfg.FromName,
		from:     cfg.FromEmail,
	}
}

func (d *SendGridDispatcher) Dispatch(ctx context.Context, msg notifier.Message) error {
	if msg.Recipient.Email == "" {
		return nil
	}

	from := mail.NewEmail(d.fromName, d.from)
	to := mail.NewEmail(msg.Recipient.Name, msg.Recipient.Email)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		m.AddAttachment(att)
	}

	resp, err := d.client.SendWithContext(ctx, m)
	if err != nil {
		return errs.Wrap(err, "sendgrid send")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
