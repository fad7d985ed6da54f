package drafts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков записей
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentDraft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
