package response

import "tsmit_os/internal/domain/entities"

type StatusResponse struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Order                   int      `json:"order"`
	Color                   string   `json:"color"`
	Icon                    string   `json:"icon,omitempty"`
	IsInitial               bool     `json:"is_initial"`
	IsFinal                 bool     `json:"is_final"`
	IsPickupStatus          bool     `json:"is_pickup_status"`
	TriggersEmail           bool     `json:"triggers_email"`
	TriggersWhatsapp        bool     `json:"triggers_whatsapp"`
	EmailSubject            string   `json:"email_subject,omitempty"`
	EmailBody               string   `json:"email_body,omitempty"`
	WhatsappBody            string   `json:"whatsapp_body,omitempty"`
	AllowedNextStatuses     []string `json:"allowed_next_statuses"`
	AllowedPreviousStatuses []string `json:"allowed_previous_statuses"`
}

func FromStatus(s entities.Status) StatusResponse {
	return StatusResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		Order:                   s.Order,
		Color:                   s.Color,
		Icon:                    s.Icon,
		IsInitial:               s.IsInitial,
		IsFinal:                 s.IsFinal,
		IsPickupStatus:          s.IsPickupStatus,
		TriggersEmail:           s.TriggersEmail,
		TriggersWhatsapp:        s.TriggersWhatsapp,
		EmailSubject:            s.EmailSubject,
		EmailBody:               s.EmailBody,
		WhatsappBody:            s.WhatsappBody,
		AllowedNextStatuses:     s.AllowedNextStatuses,
		AllowedPreviousStatuses: s.AllowedPreviousStatuses,
	}
}

func FromStatuses(statuses []entities.Status) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromStatus(s))
	}
	return out
}
