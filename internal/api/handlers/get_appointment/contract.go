package get_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DonationService/internal/service/drafts/models"
)

type DraftService interface {
	GetByID(ctx context.Context, id uuid.UUID, donorID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
