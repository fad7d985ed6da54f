package stepgate

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// Store persists the unlocked step per donor session.
// AdvanceTo must be monotonic: it stores max(stored, step) and returns the stored value.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.Step, bool, error)
	AdvanceTo(ctx context.Context, sessionID string, step domain.Step) (domain.Step, error)
	Delete(ctx context.Context, sessionID string) error
}

// Metrics счётчики шагов
type Metrics interface {
	IncStepAdvance(step string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
