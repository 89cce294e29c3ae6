package messaging

import (
	"context"
	"errors"
	"testing"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"
	mock_interfaces "tsmit_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewMailerSendGateway(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewMailerSendGateway("", nil)
		if !errors.Is(err, ErrMissingMailerSendAPIKey) {
			t.Fatalf("expected ErrMissingMailerSendAPIKey, got %v", err)
		}
	})

	t.Run("valid api key", func(t *testing.T) {
		g, err := NewMailerSendGateway("ms-key", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g == nil {
			t.Fatalf("expected gateway instance")
		}
	})
}

func TestMailerSendGateway_Send(t *testing.T) {
	t.Run("missing sender email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		settings.EXPECT().GetEmailSettings(gomock.Any()).Return(entities.EmailSettings{}, nil)

		g, err := NewMailerSendGateway("ms-key", settings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.Send(context.Background(), interfaces.EmailMessage{RecipientEmail: "contato@acme.com"}); err == nil {
			t.Fatalf("expected error when sender email is not configured")
		}
	})

	t.Run("settings lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		settings.EXPECT().GetEmailSettings(gomock.Any()).Return(entities.EmailSettings{}, errors.New("dynamodb unavailable"))

		g, err := NewMailerSendGateway("ms-key", settings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.Send(context.Background(), interfaces.EmailMessage{RecipientEmail: "contato@acme.com"}); err == nil {
			t.Fatalf("expected settings error to propagate")
		}
	})
}
