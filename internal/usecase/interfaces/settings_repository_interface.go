package interfaces

import (
	"context"

	"tsmit_os/internal/domain/entities"
)

// ISettingsRepository reads the notification configuration documents
// (settings/email, settings/integrations). A missing document returns a
// zero value with a nil error: absent configuration degrades to "channel
// not configured", it is not a failure.

type ISettingsRepository interface {
	GetEmailSettings(ctx context.Context) (entities.EmailSettings, error)
	GetWhatsappSettings(ctx context.Context) (entities.WhatsappSettings, error)
}
