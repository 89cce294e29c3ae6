package interfaces

import "context"

// EmailMessage is a rendered notification ready for dispatch.
type EmailMessage struct {
	RecipientEmail string
	RecipientName  string
	Subject        string
	HTMLBody       string
}

// WhatsappMessage is a rendered WhatsApp notification. PhoneNumber must be
// digits only, country-code prefixed.
type WhatsappMessage struct {
	PhoneNumber string
	Body        string
}

// IEmailSender dispatches a rendered email. Historical deployments used
// either SMTP credentials or a transactional-email provider; both live
// behind this interface and are interchangeable from the core's
// perspective.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// IWhatsappSender posts a rendered message to the configured WhatsApp
// webhook.
type IWhatsappSender interface {
	Send(ctx context.Context, msg WhatsappMessage) error
}
