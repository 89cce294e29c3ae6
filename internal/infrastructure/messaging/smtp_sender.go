package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"tsmit_os/internal/usecase/interfaces"
)

// SMTPSender delivers email straight through the SMTP server configured in
// the settings/email document. It is the self-hosted alternative to the
// MailerSend gateway; routes pick one via the EMAIL_TRANSPORT env var.

type SMTPSender struct {
	settings interfaces.ISettingsRepository
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSender(settings interfaces.ISettingsRepository) *SMTPSender {
	return &SMTPSender{settings: settings}
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	cfg, err := s.settings.GetEmailSettings(ctx)
	if err != nil {
		return err
	}
	if cfg.SMTPServer == "" || cfg.SenderEmail == "" {
		return errors.New("smtp transport not configured")
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", cfg.SMTPServer, port)

	var auth smtp.Auth
	if cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", cfg.SenderEmail, cfg.SMTPPassword, cfg.SMTPServer)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: TSMIT <%s>\r\n", cfg.SenderEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.RecipientEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	if err := smtp.SendMail(addr, auth, cfg.SenderEmail, []string{msg.RecipientEmail}, []byte(b.String())); err != nil {
		log.Printf("[notify][gateway] smtp send failed server=%s err=%v", addr, err)
		return err
	}
	log.Printf("[notify][gateway] smtp sent recipient=%s", msg.RecipientEmail)
	return nil
}
