package steps

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
)

// StepGate интерфейс step gate
type StepGate interface {
	Current(ctx context.Context, sessionID string) (domain.Step, error)
	Guard(ctx context.Context, sessionID string, required domain.Step) (stepgate.GuardResult, error)
	Reset(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
