package get_waiting_period

import (
	"context"

	checkWaitingPeriod "github.com/m04kA/SMC-DonationService/internal/usecase/check_waiting_period"
)

type CheckWaitingPeriodUseCase interface {
	Execute(ctx context.Context, req *checkWaitingPeriod.Request) (*checkWaitingPeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
