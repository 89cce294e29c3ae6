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

// WhatsappWebhookGateway posts messages to the self-hosted WhatsApp ticket
// webhook configured in the settings/integrations document. The webhook
// contract is fixed by the ticketing system on the other side.

type WhatsappWebhookGateway struct {
	settings interfaces.ISettingsRepository
	client   *http.Client
}

var _ interfaces.IWhatsappSender = (*WhatsappWebhookGateway)(nil)

func NewWhatsappWebhookGateway(settings interfaces.ISettingsRepository) *WhatsappWebhookGateway {
	return &WhatsappWebhookGateway{
		settings: settings,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type whatsappWebhookPayload struct {
	Number        string `json:"number"`
	Body          string `json:"body"`
	UserID        string `json:"userId"`
	QueueID       string `json:"queueId"`
	SendSignature bool   `json:"sendSignature"`
	CloseTicket   bool   `json:"closeTicket"`
}

func (g *WhatsappWebhookGateway) Send(ctx context.Context, msg interfaces.WhatsappMessage) error {
	cfg, err := g.settings.GetWhatsappSettings(ctx)
	if err != nil {
		return err
	}
	if cfg.Endpoint == "" {
		return errors.New("whatsapp endpoint not configured")
	}

	payload := whatsappWebhookPayload{
		Number:        msg.PhoneNumber,
		Body:          msg.Body,
		SendSignature: false,
		CloseTicket:   true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.BearerToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[notify][gateway] whatsapp request failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[notify][gateway] whatsapp rejected status=%d body=%s", resp.StatusCode, detail)
		return fmt.Errorf("whatsapp webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][gateway] whatsapp accepted number=%s", msg.PhoneNumber)
	return nil
}
