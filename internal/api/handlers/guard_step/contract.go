package guard_step

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/steps/models"
)

type StepService interface {
	Guard(ctx context.Context, donorID int64, sessionID string, step domain.Step) (*models.GuardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
