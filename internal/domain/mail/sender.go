package mail

import "context"

// Message is one outbound email. At least one of Text and HTML is set.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender defines an interface for delivering email via a mail transport.
// This keeps the application logic decoupled from the SMTP library.
type Sender interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
}
