package httpserver

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EmailSender delivers a single email and returns the transport's message ID.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, text, html string) (string, error)
}

// SendEmailRequest is the body of POST /send-email. At least one of Text and
// HTML must be set in addition to the validated fields.
type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type EmailHandler struct {
	emails EmailSender
	logger *logrus.Logger
}

func NewEmailHandler(emails EmailSender, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{
		emails: emails,
		logger: logger,
	}
}

func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var payload SendEmailRequest
	if err := readJSON(w, r, &payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if payload.Text == "" && payload.HTML == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	h.logger.Infof("New request to send email to %s.", payload.To)
	messageID, err := h.emails.SendEmail(r.Context(), payload.To, payload.Subject, payload.Text, payload.HTML)
	if err != nil {
		h.logger.Errorf("Email sending failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Email sending failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Email sent successfully",
		"messageId": messageID,
	})
}
