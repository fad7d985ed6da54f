package evaluate_eligibility

import (
	"context"

	evaluateEligibility "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
)

type EvaluateEligibilityUseCase interface {
	Execute(ctx context.Context, req *evaluateEligibility.Request) (*evaluateEligibility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
