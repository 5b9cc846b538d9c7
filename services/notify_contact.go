package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/FijacksProp/portfolio/config"
	"github.com/FijacksProp/portfolio/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner when a contact message is stored.
// It is best-effort: failures are logged and never surfaced to the visitor,
// and the stored message is never rolled back.
//
// Requires environment variables:
//   - RESEND_API_KEY: Resend API key
//   - CONTACT_NOTIFY_EMAIL: recipient address
//
// Optional:
//   - RESEND_FROM_EMAIL: sender address, defaults to Resend's onboarding sender
type ContactNotifier struct {
	apiKey    string
	from      string
	recipient string
	logger    zerolog.Logger
}

// NewContactNotifier builds a notifier from config. Returns nil when the
// required settings are missing, which disables notifications.
func NewContactNotifier(c map[string]string) *ContactNotifier {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	recipient := config.GetString(c, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || recipient == "" {
		return nil
	}

	return &ContactNotifier{
		apiKey:    apiKey,
		from:      config.GetString(c, "RESEND_FROM_EMAIL", "Portfolio <[email protected]>"),
		recipient: recipient,
		logger:    log.With().Str("serviceName", "contactNotifier").Logger(),
	}
}

// Notify sends the owner an email summarizing the contact message.
func (n *ContactNotifier) Notify(contact models.Contact) {
	body := fmt.Sprintf("From: %s <%s>\n\nSubject: %s\n\n%s",
		contact.Name, contact.Email, contact.Subject, contact.Message)

	payload := ResendEmailRequest{
		From:    n.from,
		To:      []string{n.recipient},
		Subject: fmt.Sprintf("New contact message: %s", contact.Subject),
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error().Err(err).Msg("Error marshaling notification request")
		return
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		n.logger.Error().Err(err).Msg("Error building notification request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		n.logger.Error().Err(err).Msg("Error sending contact notification")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if err := json.Unmarshal(respBody, &resendErr); err == nil && resendErr.Message != "" {
			n.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", resendErr.Message).
				Msg("Notification service returned an error")
			return
		}
		n.logger.Error().Int("status", resp.StatusCode).Msg("Notification service returned non-200 status")
	}
}
