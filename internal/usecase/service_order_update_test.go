package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"
	mock_interfaces "tsmit_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func workflowStatuses() []entities.Status {
	return []entities.Status{
		{ID: "A", Name: "Aberta", Order: 1, IsInitial: true, AllowedNextStatuses: []string{"B"}},
		{ID: "B", Name: "Pronta para Retirada", Order: 2, IsPickupStatus: true, TriggersEmail: true,
			EmailBody:               "Olá {{clientName}}, a OS {{osNumber}} está {{statusName}}.",
			AllowedNextStatuses:     []string{"D"},
			AllowedPreviousStatuses: []string{"A"}},
		{ID: "C", Name: "Aguardando Peça", Order: 3},
		{ID: "D", Name: "Entregue", Order: 4, IsFinal: true, TriggersWhatsapp: true,
			WhatsappBody: "OS {os_number} entregue."},
	}
}

func storedOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:          "o1",
		OrderNumber: "OS-007",
		ClientID:    "c1",
		Collaborator: entities.Collaborator{
			Name:  "João",
			Email: "joao@acme.com",
			Phone: "(11) 98888-7777",
		},
		Equipment:       entities.Equipment{Type: "Notebook", Brand: "Dell", Model: "XPS"},
		ReportedProblem: "Não liga",
		Analyst:         "Alice",
		StatusID:        "A",
		CreatedAt:       time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Logs: []entities.LogEntry{{
			Timestamp:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
			Responsible: "Alice",
			FromStatus:  "A",
			ToStatus:    "A",
			Observation: "OS criada no sistema.",
		}},
	}
}

type engineMocks struct {
	repo        *mock_interfaces.MockIServiceOrderRepository
	statusRepo  *mock_interfaces.MockIStatusRepository
	clientRepo  *mock_interfaces.MockIClientRepository
	serviceRepo *mock_interfaces.MockIProvidedServiceRepository
	email       *mock_interfaces.MockIEmailSender
	whatsapp    *mock_interfaces.MockIWhatsappSender
}

func newEngine(ctrl *gomock.Controller) (*ServiceOrderUseCase, engineMocks) {
	m := engineMocks{
		repo:        mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		statusRepo:  mock_interfaces.NewMockIStatusRepository(ctrl),
		clientRepo:  mock_interfaces.NewMockIClientRepository(ctrl),
		serviceRepo: mock_interfaces.NewMockIProvidedServiceRepository(ctrl),
		email:       mock_interfaces.NewMockIEmailSender(ctrl),
		whatsapp:    mock_interfaces.NewMockIWhatsappSender(ctrl),
	}
	uc := NewServiceOrderUseCase(m.repo, m.statusRepo, m.clientRepo, m.serviceRepo, m.email, m.whatsapp)
	return uc, m
}

func strptr(s string) *string { return &s }

func TestUpdateStatus_Validation(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newEngine(gomock.NewController(t))
		_, err := uc.UpdateStatus(context.Background(), "  ", UpdateStatusCommand{NewStatusID: "B", Responsible: "Alice"})
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("missing responsible", func(t *testing.T) {
		uc, _ := newEngine(gomock.NewController(t))
		_, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "B"})
		if !errors.Is(err, ErrInvalidResponsible) {
			t.Fatalf("expected ErrInvalidResponsible, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngine(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", UpdateStatusCommand{NewStatusID: "B", Responsible: "Alice"})
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("target status not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEngine(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(storedOrder(), nil)
		m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)

		_, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "nope", Responsible: "Alice"})
		if !errors.Is(err, ErrStatusNotFound) {
			t.Fatalf("expected ErrStatusNotFound, got %v", err)
		}
	})
}

func TestUpdateStatus_InvalidTransitionRejectedBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	// C is in neither adjacency list of A; no Update expectation: any
	// write would fail the test.
	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(storedOrder(), nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)

	_, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "C", Responsible: "Bob"})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatus_PrivilegedOverridesTransitionGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)

	updated := order
	updated.StatusID = "C"
	m.repo.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd interfaces.ServiceOrderUpdate) (entities.ServiceOrder, error) {
			if upd.StatusID == nil || *upd.StatusID != "C" {
				t.Fatalf("expected status update to C, got %+v", upd.StatusID)
			}
			return updated, nil
		},
	)
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "C").Return(workflowStatuses()[2], nil)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "ACME"}, nil)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "C", Responsible: "Root", Privileged: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.StatusID != "C" {
		t.Fatalf("expected status C, got %s", res.Order.StatusID)
	}
}

func TestUpdateStatus_PickupRequiresTechnicalSolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(storedOrder(), nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)

	_, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{
		NewStatusID:       "B",
		Responsible:       "Alice",
		TechnicalSolution: strptr("   "),
	})
	if !errors.Is(err, ErrTechnicalSolutionRequired) {
		t.Fatalf("expected ErrTechnicalSolutionRequired, got %v", err)
	}
}

func TestUpdateStatus_UnconfirmedServicesBlockNotifyingTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	order.ContractedServices = []entities.ProvidedService{{ID: "s1", Name: "Backup"}, {ID: "s2", Name: "EDR"}}
	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)

	_, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{
		NewStatusID:         "B",
		Responsible:         "Alice",
		TechnicalSolution:   strptr("Troca da fonte."),
		ConfirmedServiceIDs: []string{"s1"},
	})
	if !errors.Is(err, ErrServicesNotConfirmed) {
		t.Fatalf("expected ErrServicesNotConfirmed, got %v", err)
	}
}

func TestUpdateStatus_NoOpPerformsNoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	order.TechnicalSolution = "done"
	order.ConfirmedServiceIDs = []string{"s1", "s2"}

	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(workflowStatuses(), nil)
	// resolve only; no repo.Update expectation.
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "A").Return(workflowStatuses()[0], nil)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "ACME"}, nil)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{
		NewStatusID:         "A",
		Responsible:         "Alice",
		TechnicalSolution:   strptr("done"),
		ConfirmedServiceIDs: []string{"s2", "s1"}, // order-independent comparison
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Notifications.EmailSent || res.Notifications.WhatsappSent {
		t.Fatalf("no-op must not notify")
	}
	if res.Order.StatusID != "A" {
		t.Fatalf("status must be unchanged")
	}
}

func TestUpdateStatus_TransitionAppendsLogAndSendsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	statuses := workflowStatuses()
	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(statuses, nil)

	updated := order
	updated.StatusID = "B"
	updated.TechnicalSolution = "Troca da fonte."
	updated.Logs = append(append([]entities.LogEntry{}, order.Logs...), entities.LogEntry{
		Responsible: "Alice", FromStatus: "A", ToStatus: "B",
	})

	m.repo.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd interfaces.ServiceOrderUpdate) (entities.ServiceOrder, error) {
			if upd.AppendLog == nil {
				t.Fatalf("expected appended log entry")
			}
			if upd.AppendLog.FromStatus != "A" || upd.AppendLog.ToStatus != "B" || upd.AppendLog.Responsible != "Alice" {
				t.Fatalf("unexpected log entry: %+v", upd.AppendLog)
			}
			if upd.AppendLog.Timestamp.IsZero() {
				t.Fatalf("expected log timestamp")
			}
			if upd.TechnicalSolution == nil || *upd.TechnicalSolution != "Troca da fonte." {
				t.Fatalf("expected technical solution update")
			}
			return updated, nil
		},
	)
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "B").Return(statuses[1], nil)
	client := entities.Client{ID: "c1", Name: "ACME Ltda", Email: "contato@acme.com"}
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(client, nil).Times(2)

	var sent interfaces.EmailMessage
	m.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg interfaces.EmailMessage) error {
			sent = msg
			return nil
		},
	)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{
		NewStatusID:       "B",
		Responsible:       "Alice",
		TechnicalSolution: strptr("Troca da fonte."),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Notifications.EmailSent || res.Notifications.EmailError != "" {
		t.Fatalf("expected email sent, got %+v", res.Notifications)
	}
	if sent.RecipientEmail != "contato@acme.com" || sent.RecipientName != "ACME Ltda" {
		t.Fatalf("unexpected recipient: %+v", sent)
	}
	// Placeholders substituted, not left literal.
	if !strings.Contains(sent.HTMLBody, "Olá ACME Ltda, a OS OS-007 está Pronta para Retirada.") {
		t.Fatalf("unexpected body: %s", sent.HTMLBody)
	}
	if strings.Contains(sent.HTMLBody, "{{clientName}}") {
		t.Fatalf("placeholder left unsubstituted")
	}
	if sent.Subject != "Atualização da OS OS-007 - Status: Pronta para Retirada" {
		t.Fatalf("unexpected subject: %s", sent.Subject)
	}
}

func TestUpdateStatus_MissingTemplateFailsChannelOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	statuses := workflowStatuses()
	statuses[1].EmailBody = "" // no template configured for B

	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(statuses, nil)

	updated := order
	updated.StatusID = "B"
	m.repo.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).Return(updated, nil)
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "B").Return(statuses[1], nil)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "ACME", Email: "a@b.c"}, nil).Times(2)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{
		NewStatusID:       "B",
		Responsible:       "Alice",
		TechnicalSolution: strptr("ok"),
	})
	if err != nil {
		t.Fatalf("mutation must succeed despite template error, got %v", err)
	}
	if res.Notifications.EmailSent {
		t.Fatalf("email must not be sent without a template")
	}
	if res.Notifications.EmailError == "" || !strings.Contains(res.Notifications.EmailError, "template") {
		t.Fatalf("expected template-missing reason, got %q", res.Notifications.EmailError)
	}
}

func TestUpdateStatus_WhatsappFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	order.StatusID = "B"
	order.TechnicalSolution = "done"
	statuses := workflowStatuses()

	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(statuses, nil)

	updated := order
	updated.StatusID = "D"
	m.repo.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).Return(updated, nil)
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "D").Return(statuses[3], nil)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "ACME"}, nil).Times(2)

	m.whatsapp.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg interfaces.WhatsappMessage) error {
			if msg.PhoneNumber != "5511988887777" {
				t.Fatalf("expected sanitized phone, got %q", msg.PhoneNumber)
			}
			if msg.Body != "OS OS-007 entregue." {
				t.Fatalf("unexpected body: %q", msg.Body)
			}
			return errors.New("webhook timeout")
		},
	)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "D", Responsible: "Alice"})
	if err != nil {
		t.Fatalf("transport failure must not fail the mutation, got %v", err)
	}
	if res.Notifications.WhatsappSent {
		t.Fatalf("whatsapp must be reported unsent")
	}
	if !strings.Contains(res.Notifications.WhatsappError, "webhook timeout") {
		t.Fatalf("expected transport reason, got %q", res.Notifications.WhatsappError)
	}
	if res.Order.StatusID != "D" {
		t.Fatalf("order mutation must stand")
	}
}

func TestUpdateStatus_BackwardTransitionAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newEngine(ctrl)

	order := storedOrder()
	order.StatusID = "B"
	order.TechnicalSolution = "done"
	statuses := workflowStatuses()

	m.repo.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)
	m.statusRepo.EXPECT().List(gomock.Any()).Return(statuses, nil)

	updated := order
	updated.StatusID = "A"
	m.repo.EXPECT().Update(gomock.Any(), "o1", gomock.Any()).Return(updated, nil)
	m.statusRepo.EXPECT().GetByID(gomock.Any(), "A").Return(statuses[0], nil)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "ACME"}, nil)

	res, err := uc.UpdateStatus(context.Background(), "o1", UpdateStatusCommand{NewStatusID: "A", Responsible: "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A does not notify: no channel activity at all.
	if res.Notifications != (NotificationResult{}) {
		t.Fatalf("unexpected notifications: %+v", res.Notifications)
	}
}
