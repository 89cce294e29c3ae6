package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"
)

const editObservation = "Detalhes da OS editados."

// UpdateDetails is the edit audit engine: it diffs the supplied fields
// against the stored order and, when at least one actually changed, applies
// the updates together with a single appended edit-log entry. Editing with
// no actual change performs no write at all, not even a no-op log.
func (u *ServiceOrderUseCase) UpdateDetails(ctx context.Context, id string, cmd UpdateDetailsCommand) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	cmd.Responsible = strings.TrimSpace(cmd.Responsible)
	if cmd.Responsible == "" {
		return entities.ServiceOrder{}, ErrInvalidResponsible
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	var changes []entities.EditLogChange
	upd := interfaces.ServiceOrderUpdate{}

	diff := func(field string, oldVal string, newVal *string, apply func(*string)) {
		if newVal == nil || *newVal == oldVal {
			return
		}
		changes = append(changes, entities.EditLogChange{
			Field:    field,
			OldValue: nullable(oldVal),
			NewValue: nullable(*newVal),
		})
		apply(newVal)
	}

	diff("clientId", order.ClientID, cmd.ClientID, func(v *string) { upd.ClientID = v })
	diff("reportedProblem", order.ReportedProblem, cmd.ReportedProblem, func(v *string) { upd.ReportedProblem = v })
	diff("technicalSolution", order.TechnicalSolution, cmd.TechnicalSolution, func(v *string) { upd.TechnicalSolution = v })

	diff("collaborator.name", order.Collaborator.Name, cmd.Collaborator.Name, func(v *string) { upd.CollaboratorName = v })
	diff("collaborator.email", order.Collaborator.Email, cmd.Collaborator.Email, func(v *string) { upd.CollaboratorEmail = v })
	diff("collaborator.phone", order.Collaborator.Phone, cmd.Collaborator.Phone, func(v *string) { upd.CollaboratorPhone = v })

	diff("equipment.type", order.Equipment.Type, cmd.Equipment.Type, func(v *string) { upd.EquipmentType = v })
	diff("equipment.brand", order.Equipment.Brand, cmd.Equipment.Brand, func(v *string) { upd.EquipmentBrand = v })
	diff("equipment.model", order.Equipment.Model, cmd.Equipment.Model, func(v *string) { upd.EquipmentModel = v })
	diff("equipment.serialNumber", order.Equipment.SerialNumber, cmd.Equipment.SerialNumber, func(v *string) { upd.EquipmentSerialNumber = v })

	if len(changes) == 0 {
		log.Printf("[os][usecase] update-details no-op order_id=%s", order.ID)
		return u.resolve(ctx, order), nil
	}

	upd.AppendEditLog = &entities.EditLogEntry{
		Timestamp:   time.Now().UTC(),
		Responsible: cmd.Responsible,
		Observation: editObservation,
		Changes:     changes,
	}

	updated, err := u.repo.Update(ctx, order.ID, upd)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] update-details success order_id=%s changes=%d", updated.ID, len(changes))
	return u.resolve(ctx, updated), nil
}

// nullable normalizes empty strings to null in audit records.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
