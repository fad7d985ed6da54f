package evaluate_eligibility

import (
	"context"

	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// FlowOpener открывает флоу для оценки анкеты (без запроса истории донаций)
type FlowOpener interface {
	OpenScreening(ctx context.Context, donorID int64, sessionID string) (*workflow.Flow, error)
}

// Metrics счётчик вердиктов
type Metrics interface {
	IncVerdict(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
