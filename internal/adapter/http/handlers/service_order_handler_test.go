package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tsmit_os/internal/adapter/http/handlers/mocks"
	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/domain/workflow"
	"tsmit_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrClientNotFound)

		body := `{"client_id":"ghost","collaborator":{"name":"João"},"equipment":{"type":"Notebook"},"reported_problem":"Não liga","analyst":"Alice"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, cmd usecase.CreateOrderCommand) (entities.ServiceOrder, error) {
				if cmd.ClientID != "c1" || cmd.Analyst != "Alice" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.ServiceOrder{ID: "o1", OrderNumber: "OS-001", ClientID: "c1", StatusID: "A"}, nil
			},
		)

		body := `{"client_id":"c1","collaborator":{"name":"João"},"equipment":{"type":"Notebook"},"reported_problem":"Não liga","analyst":"Alice"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["order_number"] != "OS-001" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestServiceOrderHandler_UpdateServiceOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", gomock.Any()).Return(usecase.UpdateStatusResult{}, usecase.ErrInvalidTransition)

		body := `{"new_status_id":"C","responsible":"Bob"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing solution maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", gomock.Any()).Return(usecase.UpdateStatusResult{}, usecase.ErrTechnicalSolutionRequired)

		body := `{"new_status_id":"B","responsible":"Bob"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success includes notification outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", gomock.Any()).Return(usecase.UpdateStatusResult{
			Order: entities.ServiceOrder{ID: "o1", StatusID: "B"},
			Notifications: usecase.NotificationResult{
				EmailSent:     true,
				WhatsappSent:  false,
				WhatsappError: "Número de telefone não encontrado para este colaborador.",
			},
		}, nil)

		body := `{"new_status_id":"B","responsible":"Bob"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got struct {
			Notifications struct {
				EmailSent     bool   `json:"email_sent"`
				WhatsappSent  bool   `json:"whatsapp_sent"`
				WhatsappError string `json:"whatsapp_error"`
			} `json:"notifications"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !got.Notifications.EmailSent || got.Notifications.WhatsappSent || got.Notifications.WhatsappError == "" {
			t.Fatalf("unexpected notifications: %+v", got.Notifications)
		}
	})
}

func TestServiceOrderHandler_ListTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/:id/transitions", h.ListTransitions)

	uc.EXPECT().Transitions(gomock.Any(), "o1", true).Return([]workflow.Candidate{
		{Status: entities.Status{ID: "A", Name: "Aberta"}, Backward: true},
		{Status: entities.Status{ID: "D", Name: "Entregue"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/o1/transitions?privileged=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []struct {
		Status   struct{ ID string `json:"id"` } `json:"status"`
		Backward bool                            `json:"backward"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 2 || got[0].Status.ID != "A" || !got[0].Backward {
		t.Fatalf("unexpected transitions: %+v", got)
	}
}

func TestServiceOrderHandler_UpdateServiceOrderDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing responsible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/details", h.UpdateServiceOrderDetails)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/details", bytes.NewBufferString(`{"reported_problem":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards patch command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/details", h.UpdateServiceOrderDetails)

		uc.EXPECT().UpdateDetails(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, cmd usecase.UpdateDetailsCommand) (entities.ServiceOrder, error) {
				if cmd.Responsible != "Bob" {
					t.Fatalf("unexpected responsible: %q", cmd.Responsible)
				}
				if cmd.ReportedProblem == nil || *cmd.ReportedProblem != "Tela trincada" {
					t.Fatalf("unexpected reported problem: %+v", cmd.ReportedProblem)
				}
				if cmd.Equipment.Brand != nil {
					t.Fatalf("omitted field must stay nil")
				}
				return entities.ServiceOrder{ID: "o1", ReportedProblem: "Tela trincada"}, nil
			},
		)

		body := `{"responsible":"Bob","reported_problem":"Tela trincada"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1/details", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
