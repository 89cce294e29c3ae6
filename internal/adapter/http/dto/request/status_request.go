package request

import "tsmit_os/internal/domain/entities"

// StatusRequest is the admin payload for creating or replacing a workflow
// status.
type StatusRequest struct {
	Name                    string   `json:"name" binding:"required"`
	Order                   int      `json:"order"`
	Color                   string   `json:"color"`
	Icon                    string   `json:"icon"`
	IsInitial               bool     `json:"is_initial"`
	IsFinal                 bool     `json:"is_final"`
	IsPickupStatus          bool     `json:"is_pickup_status"`
	TriggersEmail           bool     `json:"triggers_email"`
	TriggersWhatsapp        bool     `json:"triggers_whatsapp"`
	EmailSubject            string   `json:"email_subject"`
	EmailBody               string   `json:"email_body"`
	WhatsappBody            string   `json:"whatsapp_body"`
	AllowedNextStatuses     []string `json:"allowed_next_statuses"`
	AllowedPreviousStatuses []string `json:"allowed_previous_statuses"`
}

func (r StatusRequest) ToEntity() entities.Status {
	return entities.Status{
		Name:                    r.Name,
		Order:                   r.Order,
		Color:                   r.Color,
		Icon:                    r.Icon,
		IsInitial:               r.IsInitial,
		IsFinal:                 r.IsFinal,
		IsPickupStatus:          r.IsPickupStatus,
		TriggersEmail:           r.TriggersEmail,
		TriggersWhatsapp:        r.TriggersWhatsapp,
		EmailSubject:            r.EmailSubject,
		EmailBody:               r.EmailBody,
		WhatsappBody:            r.WhatsappBody,
		AllowedNextStatuses:     r.AllowedNextStatuses,
		AllowedPreviousStatuses: r.AllowedPreviousStatuses,
	}
}
