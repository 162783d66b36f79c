package notifier

import "context"

type Recipient struct {
	Name  string
	Email string
	Phone string
}

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is one notification. Email dispatchers use Subject, Text, HTML and
// Attachments; SMS dispatchers send SMS when both it and Recipient.Phone are set.
type Message struct {
	Recipient   Recipient
	Subject     string
	Text        string
	HTML        string
	SMS         string
	Attachments []Attachment
}

type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}
