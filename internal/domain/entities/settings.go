package entities

// EmailSettings is the settings/email document. It drives both historical
// email transports: SenderEmail is always required; the SMTP fields only
// matter for the SMTP sender variant.
type EmailSettings struct {
	SMTPServer   string `json:"smtp_server,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty"`
	SMTPSecurity string `json:"smtp_security,omitempty"`
	SenderEmail  string `json:"sender_email,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty"`
}

// WhatsappSettings is the settings/integrations whatsapp block: the webhook
// endpoint plus its bearer token.
type WhatsappSettings struct {
	Endpoint    string `json:"endpoint,omitempty"`
	BearerToken string `json:"bearer_token,omitempty"`
}
