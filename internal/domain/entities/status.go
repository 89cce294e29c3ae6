package entities

// Status is a configurable workflow node for service orders.
//
// Domain notes:
//   - Statuses are created/edited by administrators and referenced by id
//     from service orders.
//   - AllowedNextStatuses / AllowedPreviousStatuses form the transition
//     graph consumed by the workflow candidate computation. Previous
//     statuses are rendered as "back" transitions.
//   - Exactly the statuses flagged IsInitial are valid starting points for
//     new orders.
//
// Storage model (DynamoDB):
//   - PK: id

type Status struct {
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
	AllowedNextStatuses     []string `json:"allowed_next_statuses,omitempty"`
	AllowedPreviousStatuses []string `json:"allowed_previous_statuses,omitempty"`
}

// UnknownStatus is the sentinel substituted when an order references a
// status that no longer exists. A dangling status reference must never
// crash order retrieval, so readers fall back to this value instead of
// failing. All trigger flags are false: a dangling reference never
// notifies anyone.
func UnknownStatus() Status {
	return Status{
		ID:    "unknown",
		Name:  "Desconhecido",
		Color: "#808080",
		Order: 999,
	}
}
