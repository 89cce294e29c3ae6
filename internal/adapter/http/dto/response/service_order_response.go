package response

import (
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/domain/workflow"
	"tsmit_os/internal/usecase"
)

type CollaboratorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type EquipmentResponse struct {
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

type LogEntryResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Responsible string    `json:"responsible"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Observation string    `json:"observation,omitempty"`
}

type EditLogChangeResponse struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

type EditLogEntryResponse struct {
	Timestamp   time.Time               `json:"timestamp"`
	Responsible string                  `json:"responsible"`
	Observation string                  `json:"observation,omitempty"`
	Changes     []EditLogChangeResponse `json:"changes"`
}

type ServiceOrderResponse struct {
	ID                  string                    `json:"id"`
	OrderNumber         string                    `json:"order_number"`
	ClientID            string                    `json:"client_id"`
	ClientName          string                    `json:"client_name"`
	Collaborator        CollaboratorResponse      `json:"collaborator"`
	Equipment           EquipmentResponse         `json:"equipment"`
	ReportedProblem     string                    `json:"reported_problem"`
	Analyst             string                    `json:"analyst"`
	Status              StatusResponse            `json:"status"`
	TechnicalSolution   string                    `json:"technical_solution,omitempty"`
	CreatedAt           time.Time                 `json:"created_at"`
	Attachments         []string                  `json:"attachments"`
	ContractedServices  []ProvidedServiceResponse `json:"contracted_services"`
	ConfirmedServiceIDs []string                  `json:"confirmed_service_ids"`
	Logs                []LogEntryResponse        `json:"logs"`
	EditLogs            []EditLogEntryResponse    `json:"edit_logs"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	logs := make([]LogEntryResponse, 0, len(o.Logs))
	for _, l := range o.Logs {
		logs = append(logs, LogEntryResponse{
			Timestamp:   l.Timestamp,
			Responsible: l.Responsible,
			FromStatus:  l.FromStatus,
			ToStatus:    l.ToStatus,
			Observation: l.Observation,
		})
	}
	editLogs := make([]EditLogEntryResponse, 0, len(o.EditLogs))
	for _, l := range o.EditLogs {
		changes := make([]EditLogChangeResponse, 0, len(l.Changes))
		for _, c := range l.Changes {
			changes = append(changes, EditLogChangeResponse{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue})
		}
		editLogs = append(editLogs, EditLogEntryResponse{
			Timestamp:   l.Timestamp,
			Responsible: l.Responsible,
			Observation: l.Observation,
			Changes:     changes,
		})
	}
	contracted := make([]ProvidedServiceResponse, 0, len(o.ContractedServices))
	for _, s := range o.ContractedServices {
		contracted = append(contracted, FromProvidedService(s))
	}
	return ServiceOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		Collaborator: CollaboratorResponse{
			Name:  o.Collaborator.Name,
			Email: o.Collaborator.Email,
			Phone: o.Collaborator.Phone,
		},
		Equipment: EquipmentResponse{
			Type:         o.Equipment.Type,
			Brand:        o.Equipment.Brand,
			Model:        o.Equipment.Model,
			SerialNumber: o.Equipment.SerialNumber,
		},
		ReportedProblem:     o.ReportedProblem,
		Analyst:             o.Analyst,
		Status:              FromStatus(o.Status),
		TechnicalSolution:   o.TechnicalSolution,
		CreatedAt:           o.CreatedAt,
		Attachments:         o.Attachments,
		ContractedServices:  contracted,
		ConfirmedServiceIDs: o.ConfirmedServiceIDs,
		Logs:                logs,
		EditLogs:            editLogs,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

// NotificationResultResponse reports each channel's dispatch outcome. The
// mutation already succeeded by the time this is produced.
type NotificationResultResponse struct {
	EmailSent     bool   `json:"email_sent"`
	EmailError    string `json:"email_error,omitempty"`
	WhatsappSent  bool   `json:"whatsapp_sent"`
	WhatsappError string `json:"whatsapp_error,omitempty"`
}

type UpdateStatusResponse struct {
	Order         ServiceOrderResponse       `json:"order"`
	Notifications NotificationResultResponse `json:"notifications"`
}

func FromUpdateStatusResult(res usecase.UpdateStatusResult) UpdateStatusResponse {
	return UpdateStatusResponse{
		Order: FromServiceOrder(res.Order),
		Notifications: NotificationResultResponse{
			EmailSent:     res.Notifications.EmailSent,
			EmailError:    res.Notifications.EmailError,
			WhatsappSent:  res.Notifications.WhatsappSent,
			WhatsappError: res.Notifications.WhatsappError,
		},
	}
}

// TransitionResponse is a candidate target status. Backward marks "go back"
// moves so the UI can render them apart.
type TransitionResponse struct {
	Status   StatusResponse `json:"status"`
	Backward bool           `json:"backward"`
}

func FromTransitions(candidates []workflow.Candidate) []TransitionResponse {
	out := make([]TransitionResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, TransitionResponse{Status: FromStatus(c.Status), Backward: c.Backward})
	}
	return out
}
