package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// The right checked against the platform's central rights service before a
// caller may use the SMTP endpoint.
const smtpRightName = "createSmtpServer"

const defaultRequestTimeout = 5 * time.Second

// Client checks bearer tokens against the external rights service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
}

type accessCheckRequest struct {
	Token     string `json:"token"`
	RightName string `json:"rightName"`
}

// HasAccess reports whether the token holds the SMTP right. Any failure to
// reach or satisfy the rights service denies access.
func (c *Client) HasAccess(ctx context.Context, token string) bool {
	if c.baseURL == "" {
		c.logger.Warn("AUTH_SERVICE_URL is not configured; denying access.")
		return false
	}

	body, err := json.Marshal(accessCheckRequest{Token: token, RightName: smtpRightName})
	if err != nil {
		c.logger.Errorf("Error encoding access check request: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Errorf("Error building access check request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Error checking access: %v", err)
		return false
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false
	default:
		c.logger.Errorf("Unexpected status %d during access check.", resp.StatusCode)
		return false
	}
}
