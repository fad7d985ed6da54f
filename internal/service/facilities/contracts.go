package facilities

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// FacilityRepository интерфейс репозитория учреждений
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
