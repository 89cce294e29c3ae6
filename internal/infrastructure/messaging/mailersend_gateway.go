package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"tsmit_os/internal/usecase/interfaces"
)

var ErrMissingMailerSendAPIKey = errors.New("missing MAILERSEND_API_KEY")

const mailerSendEndpoint = "https://api.mailersend.com/v1/email"

// MailerSendGateway sends transactional email through the MailerSend HTTP
// API. The sender address comes from the settings/email document so
// administrators can change it without a redeploy.

type MailerSendGateway struct {
	apiKey   string
	settings interfaces.ISettingsRepository
	client   *http.Client
}

var _ interfaces.IEmailSender = (*MailerSendGateway)(nil)

func NewMailerSendGateway(apiKey string, settings interfaces.ISettingsRepository) (*MailerSendGateway, error) {
	if apiKey == "" {
		log.Printf("[notify][gateway] missing MAILERSEND_API_KEY")
		return nil, ErrMissingMailerSendAPIKey
	}
	return &MailerSendGateway{
		apiKey:   apiKey,
		settings: settings,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type mailerSendAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailerSendPayload struct {
	From    mailerSendAddress   `json:"from"`
	To      []mailerSendAddress `json:"to"`
	Subject string              `json:"subject"`
	HTML    string              `json:"html"`
}

func (g *MailerSendGateway) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	cfg, err := g.settings.GetEmailSettings(ctx)
	if err != nil {
		return err
	}
	if cfg.SenderEmail == "" {
		return errors.New("sender email not configured")
	}

	payload := mailerSendPayload{
		From:    mailerSendAddress{Email: cfg.SenderEmail, Name: "TSMIT"},
		To:      []mailerSendAddress{{Email: msg.RecipientEmail, Name: msg.RecipientName}},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mailerSendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[notify][gateway] mailersend request failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[notify][gateway] mailersend rejected status=%d body=%s", resp.StatusCode, detail)
		return fmt.Errorf("mailersend returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][gateway] mailersend accepted recipient=%s", msg.RecipientEmail)
	return nil
}
