package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/domain/workflow"
	"tsmit_os/internal/notification"
	"tsmit_os/internal/usecase/interfaces"
)

// UpdateStatus is the order update engine: it validates the requested
// transition, applies field changes with an atomic log append, and then
// dispatches the configured notification channels.
//
// Failure semantics: structural and validation errors abort before any
// write. Notification failures are soft: the mutation stands and each
// channel's outcome is reported separately in the result envelope.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, cmd UpdateStatusCommand) (UpdateStatusResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UpdateStatusResult{}, ErrInvalidServiceOrderID
	}
	cmd.Responsible = strings.TrimSpace(cmd.Responsible)
	if cmd.Responsible == "" {
		return UpdateStatusResult{}, ErrInvalidResponsible
	}
	log.Printf("[os][usecase] update-status start order_id=%s new_status_id=%s responsible=%s privileged=%t", id, cmd.NewStatusID, cmd.Responsible, cmd.Privileged)

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return UpdateStatusResult{}, err
	}
	if order.ID == "" {
		return UpdateStatusResult{}, ErrServiceOrderNotFound
	}

	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return UpdateStatusResult{}, err
	}

	current := entities.UnknownStatus()
	var target entities.Status
	for _, s := range statuses {
		if s.ID == order.StatusID {
			current = s
		}
		if s.ID == cmd.NewStatusID {
			target = s
		}
	}
	if target.ID == "" {
		return UpdateStatusResult{}, ErrStatusNotFound
	}

	isStatusChanging := target.ID != order.StatusID

	if isStatusChanging && !workflow.IsAllowed(current, target.ID, statuses, cmd.Privileged) {
		log.Printf("[os][usecase] invalid transition order_id=%s from=%s to=%s", order.ID, order.StatusID, target.ID)
		return UpdateStatusResult{}, ErrInvalidTransition
	}

	solution := order.TechnicalSolution
	if cmd.TechnicalSolution != nil {
		solution = *cmd.TechnicalSolution
	}
	if target.IsPickupStatus && strings.TrimSpace(solution) == "" {
		return UpdateStatusResult{}, ErrTechnicalSolutionRequired
	}

	confirmed := order.ConfirmedServiceIDs
	if cmd.ConfirmedServiceIDs != nil {
		confirmed = cmd.ConfirmedServiceIDs
	}
	// A customer-facing notification must not fire while service
	// confirmations are incomplete.
	if (target.TriggersEmail || target.TriggersWhatsapp) && !allServicesConfirmed(order.ContractedServices, confirmed) {
		return UpdateStatusResult{}, ErrServicesNotConfirmed
	}

	if !isStatusChanging && solution == order.TechnicalSolution && sameIDSet(confirmed, order.ConfirmedServiceIDs) {
		log.Printf("[os][usecase] update-status no-op order_id=%s", order.ID)
		return UpdateStatusResult{Order: u.resolve(ctx, order)}, nil
	}

	now := time.Now().UTC()
	upd := interfaces.ServiceOrderUpdate{}
	if isStatusChanging || cmd.Observation != "" {
		upd.StatusID = &target.ID
		upd.AppendLog = &entities.LogEntry{
			Timestamp:   now,
			Responsible: cmd.Responsible,
			FromStatus:  order.StatusID,
			ToStatus:    target.ID,
			Observation: cmd.Observation,
		}
	}
	if cmd.TechnicalSolution != nil && *cmd.TechnicalSolution != order.TechnicalSolution {
		upd.TechnicalSolution = cmd.TechnicalSolution
	}
	if cmd.Attachments != nil {
		upd.Attachments = cmd.Attachments
	}
	if cmd.ConfirmedServiceIDs != nil {
		upd.ConfirmedServiceIDs = cmd.ConfirmedServiceIDs
	}

	updated, err := u.repo.Update(ctx, order.ID, upd)
	if err != nil {
		return UpdateStatusResult{}, err
	}
	updated = u.resolve(ctx, updated)
	log.Printf("[os][usecase] update-status success order_id=%s from=%s to=%s", updated.ID, order.StatusID, updated.StatusID)

	result := UpdateStatusResult{Order: updated}
	if isStatusChanging && (target.TriggersEmail || target.TriggersWhatsapp) {
		result.Notifications = u.dispatchNotifications(ctx, updated, target, now)
	}
	return result, nil
}

// dispatchNotifications runs the per-channel pipeline after the order write
// committed. Channels are independent: one failing never blocks the other,
// and nothing here is retried.
func (u *ServiceOrderUseCase) dispatchNotifications(ctx context.Context, order entities.ServiceOrder, target entities.Status, now time.Time) NotificationResult {
	var res NotificationResult

	client, err := u.clientRepo.GetByID(ctx, order.ClientID)
	if err != nil {
		log.Printf("[os][notify] client lookup failed order_id=%s client_id=%s err=%v", order.ID, order.ClientID, err)
		client = entities.Client{}
	}
	tctx := notification.BuildContext(order, client.Name, now)

	if target.TriggersEmail {
		res.EmailSent, res.EmailError = u.dispatchEmail(ctx, order, client, target, tctx)
	}
	if target.TriggersWhatsapp {
		res.WhatsappSent, res.WhatsappError = u.dispatchWhatsapp(ctx, order, target, tctx)
	}
	return res
}

func (u *ServiceOrderUseCase) dispatchEmail(ctx context.Context, order entities.ServiceOrder, client entities.Client, target entities.Status, tctx notification.Context) (bool, string) {
	if u.email == nil {
		return false, "Serviço de e-mail não configurado."
	}

	recipientEmail := client.Email
	if recipientEmail == "" {
		recipientEmail = order.Collaborator.Email
	}
	if recipientEmail == "" {
		return false, "E-mail do destinatário não encontrado."
	}
	recipientName := client.Name
	if recipientName == "" {
		recipientName = order.Collaborator.Name
	}

	// No configured template means no dispatch. Silent hardcoded fallback
	// content would bypass administrator customization.
	if strings.TrimSpace(target.EmailBody) == "" {
		return false, "Nenhum template de e-mail configurado para este status."
	}

	msg := interfaces.EmailMessage{
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        notification.Subject(target, tctx),
		HTMLBody:       notification.EmailHTML(target.EmailBody, tctx, order),
	}
	if err := u.email.Send(ctx, msg); err != nil {
		log.Printf("[os][notify] email send failed order_id=%s err=%v", order.ID, err)
		return false, "Falha no envio do e-mail: " + err.Error()
	}
	log.Printf("[os][notify] email sent order_id=%s recipient=%s", order.ID, recipientEmail)
	return true, ""
}

func (u *ServiceOrderUseCase) dispatchWhatsapp(ctx context.Context, order entities.ServiceOrder, target entities.Status, tctx notification.Context) (bool, string) {
	if u.whatsapp == nil {
		return false, "API do WhatsApp não configurada."
	}
	if order.Collaborator.Phone == "" {
		return false, "Número de telefone não encontrado para este colaborador."
	}
	if strings.TrimSpace(target.WhatsappBody) == "" {
		return false, "Nenhum template de WhatsApp configurado para este status."
	}

	msg := interfaces.WhatsappMessage{
		PhoneNumber: notification.SanitizePhoneNumber(order.Collaborator.Phone),
		Body:        notification.Render(target.WhatsappBody, tctx),
	}
	if err := u.whatsapp.Send(ctx, msg); err != nil {
		log.Printf("[os][notify] whatsapp send failed order_id=%s err=%v", order.ID, err)
		return false, "Falha na API do WhatsApp: " + err.Error()
	}
	log.Printf("[os][notify] whatsapp sent order_id=%s", order.ID)
	return true, ""
}

func allServicesConfirmed(contracted []entities.ProvidedService, confirmed []string) bool {
	set := make(map[string]bool, len(confirmed))
	for _, id := range confirmed {
		set[id] = true
	}
	for _, svc := range contracted {
		if !set[svc.ID] {
			return false
		}
	}
	return true
}

// sameIDSet compares two id slices order-independently.
func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
