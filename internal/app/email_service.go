package app

import (
	"context"
	"fmt"

	"lease_notification_service/internal/domain/mail"
	"lease_notification_service/internal/domain/tenant"
	"lease_notification_service/internal/infra/email"

	"github.com/sirupsen/logrus"
)

const reminderSubject = "Automatic Reminder"

// EmailService renders and delivers outbound email. It backs both the
// send-email endpoint and the reminder dispatcher.
type EmailService struct {
	sender mail.Sender
	logger *logrus.Logger
}

func NewEmailService(sender mail.Sender, logger *logrus.Logger) *EmailService {
	return &EmailService{
		sender: sender,
		logger: logger,
	}
}

// SendEmail delivers a single email and returns the transport's message ID.
func (s *EmailService) SendEmail(ctx context.Context, to, subject, text, html string) (string, error) {
	messageID, err := s.sender.Send(ctx, mail.Message{
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return messageID, nil
}

// SendReminders delivers one reminder email per message to the tenant. A
// tenant without a contact email is skipped entirely: reminders are still
// computed for them, but nothing is sent.
func (s *EmailService) SendReminders(ctx context.Context, messages []string, t *tenant.Tenant) error {
	to := t.ContactEmail()
	if to == "" {
		s.logger.Warnf("Skipping reminders for tenant %d because email is null or empty", t.ID)
		return nil
	}

	for _, message := range messages {
		body, err := email.RenderReminderBody(t.DisplayName(), message)
		if err != nil {
			return fmt.Errorf("failed to render reminder body for tenant %d: %w", t.ID, err)
		}

		messageID, err := s.sender.Send(ctx, mail.Message{
			To:      to,
			Subject: reminderSubject,
			HTML:    body,
		})
		if err != nil {
			return fmt.Errorf("failed to send reminder to tenant %d: %w", t.ID, err)
		}
		s.logger.Infof("Reminder sent to tenant %d (message ID %s).", t.ID, messageID)
	}
	return nil
}
