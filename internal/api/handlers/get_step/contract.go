package get_step

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/service/steps/models"
)

type StepService interface {
	Current(ctx context.Context, donorID int64, sessionID string) (*models.StepResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
