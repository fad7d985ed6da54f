package advance_step

import (
	"context"

	advanceStep "github.com/m04kA/SMC-DonationService/internal/usecase/advance_step"
)

type AdvanceStepUseCase interface {
	Execute(ctx context.Context, req *advanceStep.Request) (*advanceStep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
