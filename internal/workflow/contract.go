package workflow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// DonorProvider источник профиля донора (пол, имя); nil без ошибки = донор не найден
type DonorProvider interface {
	FindDonor(ctx context.Context, donorID int64) (*domain.Donor, error)
}

// HistoryProvider источник истории записей донора; при недоступности возвращает degraded=true
type HistoryProvider interface {
	GetAppointmentsWithGracefulDegradation(ctx context.Context, donorID int64) ([]domain.Appointment, bool)
}

// DraftSaver принимает готовый черновик записи
type DraftSaver interface {
	Create(ctx context.Context, draft *domain.AppointmentDraft) error
}

// StepGate хранилище разблокированного шага сессии
type StepGate interface {
	Current(ctx context.Context, sessionID string) (domain.Step, error)
	Advance(ctx context.Context, sessionID string, step domain.Step) (domain.Step, error)
	Reset(ctx context.Context, sessionID string) error
}

// Metrics доменные счётчики
type Metrics interface {
	IncSlotFallback()
	IncDraftSubmitted()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
