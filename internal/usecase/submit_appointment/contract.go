package submit_appointment

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// FlowOpener открывает флоу для сессии донора
type FlowOpener interface {
	Open(ctx context.Context, donorID int64, sessionID string) (*workflow.Flow, error)
}

// FacilityRepository интерфейс репозитория учреждений
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
