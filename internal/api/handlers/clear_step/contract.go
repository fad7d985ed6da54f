package clear_step

import "context"

type StepService interface {
	Clear(ctx context.Context, donorID int64, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
