package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"
	mock_interfaces "tsmit_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWhatsappWebhookGateway_Send(t *testing.T) {
	t.Run("posts payload with bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var gotAuth string
		var gotPayload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotPayload)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		settings.EXPECT().GetWhatsappSettings(gomock.Any()).Return(entities.WhatsappSettings{
			Endpoint:    srv.URL,
			BearerToken: "tok-123",
		}, nil)

		g := NewWhatsappWebhookGateway(settings)
		err := g.Send(context.Background(), interfaces.WhatsappMessage{
			PhoneNumber: "5511988887777",
			Body:        "OS OS-007 entregue.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "Bearer tok-123" {
			t.Fatalf("unexpected authorization header: %q", gotAuth)
		}
		if gotPayload["number"] != "5511988887777" || gotPayload["body"] != "OS OS-007 entregue." {
			t.Fatalf("unexpected payload: %v", gotPayload)
		}
		if gotPayload["closeTicket"] != true {
			t.Fatalf("expected closeTicket=true, got %v", gotPayload["closeTicket"])
		}
	})

	t.Run("missing endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		settings.EXPECT().GetWhatsappSettings(gomock.Any()).Return(entities.WhatsappSettings{}, nil)

		g := NewWhatsappWebhookGateway(settings)
		if err := g.Send(context.Background(), interfaces.WhatsappMessage{PhoneNumber: "5511", Body: "x"}); err == nil {
			t.Fatalf("expected error for unconfigured endpoint")
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		settings.EXPECT().GetWhatsappSettings(gomock.Any()).Return(entities.WhatsappSettings{Endpoint: srv.URL}, nil)

		g := NewWhatsappWebhookGateway(settings)
		if err := g.Send(context.Background(), interfaces.WhatsappMessage{PhoneNumber: "5511", Body: "x"}); err == nil {
			t.Fatalf("expected error for rejected webhook call")
		}
	})
}
