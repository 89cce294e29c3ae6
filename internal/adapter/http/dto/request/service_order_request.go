package request

import (
	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase"
)

type CollaboratorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type EquipmentRequest struct {
	Type         string `json:"type" binding:"required"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

// CreateServiceOrderRequest is the intake form payload. Everything else on
// the order (number, status, logs, service snapshot) is derived server-side.
type CreateServiceOrderRequest struct {
	ClientID        string              `json:"client_id" binding:"required"`
	Collaborator    CollaboratorRequest `json:"collaborator" binding:"required"`
	Equipment       EquipmentRequest    `json:"equipment" binding:"required"`
	ReportedProblem string              `json:"reported_problem" binding:"required"`
	Analyst         string              `json:"analyst" binding:"required"`
}

func (r CreateServiceOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		ClientID: r.ClientID,
		Collaborator: entities.Collaborator{
			Name:  r.Collaborator.Name,
			Email: r.Collaborator.Email,
			Phone: r.Collaborator.Phone,
		},
		Equipment: entities.Equipment{
			Type:         r.Equipment.Type,
			Brand:        r.Equipment.Brand,
			Model:        r.Equipment.Model,
			SerialNumber: r.Equipment.SerialNumber,
		},
		ReportedProblem: r.ReportedProblem,
		Analyst:         r.Analyst,
	}
}

// UpdateStatusRequest drives the order update engine. Pointer and slice
// fields left out of the payload mean "leave unchanged".
type UpdateStatusRequest struct {
	NewStatusID         string   `json:"new_status_id" binding:"required"`
	Responsible         string   `json:"responsible" binding:"required"`
	Privileged          bool     `json:"privileged"`
	TechnicalSolution   *string  `json:"technical_solution"`
	Observation         string   `json:"observation"`
	Attachments         []string `json:"attachments"`
	ConfirmedServiceIDs []string `json:"confirmed_service_ids"`
}

func (r UpdateStatusRequest) ToCommand() usecase.UpdateStatusCommand {
	return usecase.UpdateStatusCommand{
		NewStatusID:         r.NewStatusID,
		Responsible:         r.Responsible,
		Privileged:          r.Privileged,
		TechnicalSolution:   r.TechnicalSolution,
		Observation:         r.Observation,
		Attachments:         r.Attachments,
		ConfirmedServiceIDs: r.ConfirmedServiceIDs,
	}
}

type CollaboratorPatchRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type EquipmentPatchRequest struct {
	Type         *string `json:"type"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`
}

// UpdateDetailsRequest is the audited detail edit payload. Only supplied
// fields are diffed against the stored order.
type UpdateDetailsRequest struct {
	Responsible       string                   `json:"responsible" binding:"required"`
	ClientID          *string                  `json:"client_id"`
	ReportedProblem   *string                  `json:"reported_problem"`
	TechnicalSolution *string                  `json:"technical_solution"`
	Collaborator      CollaboratorPatchRequest `json:"collaborator"`
	Equipment         EquipmentPatchRequest    `json:"equipment"`
}

func (r UpdateDetailsRequest) ToCommand() usecase.UpdateDetailsCommand {
	return usecase.UpdateDetailsCommand{
		Responsible:       r.Responsible,
		ClientID:          r.ClientID,
		ReportedProblem:   r.ReportedProblem,
		TechnicalSolution: r.TechnicalSolution,
		Collaborator: usecase.CollaboratorPatch{
			Name:  r.Collaborator.Name,
			Email: r.Collaborator.Email,
			Phone: r.Collaborator.Phone,
		},
		Equipment: usecase.EquipmentPatch{
			Type:         r.Equipment.Type,
			Brand:        r.Equipment.Brand,
			Model:        r.Equipment.Model,
			SerialNumber: r.Equipment.SerialNumber,
		},
	}
}
