package check_waiting_period

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// HistoryClient интерфейс клиента AppointmentService
type HistoryClient interface {
	GetAppointmentsWithGracefulDegradation(ctx context.Context, donorID int64) ([]domain.Appointment, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
