package email

import (
	"context"
	"fmt"

	"lease_notification_service/internal/domain/mail"

	"github.com/google/uuid"
	gomail "gopkg.in/mail.v2"
)

// SMTPSender implements the mail.Sender interface using gopkg.in/mail.v2.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers the message over SMTP and returns the generated Message-ID.
func (s *SMTPSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@locaccm>", uuid.NewString())

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)

	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			m.AddAlternative("text/html", msg.HTML)
		}
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("error sending email via SMTP: %w", err)
	}
	return messageID, nil
}
