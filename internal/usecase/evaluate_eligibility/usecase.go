package evaluate_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/eligibility"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// UseCase оценка ответов анкеты без изменения состояния флоу
type UseCase struct {
	flows   FlowOpener
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(flows FlowOpener, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		flows:   flows,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет оценку. Неизвестные вопросы возвращают ошибку валидации,
// незаполненная анкета возвращает вердикт без решения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Step != nil && *req.Step != domain.StepDonationHistory && *req.Step != domain.StepHealthScreening {
		return nil, fmt.Errorf("%w: step must be 1 or 2", ErrInvalidInput)
	}

	// 2. Открываем флоу (пол донора нужен для фильтрации разделов, история не нужна)
	flow, err := uc.flows.OpenScreening(ctx, req.DonorID, req.SessionID)
	if err != nil {
		return nil, err
	}

	// 3. Применяем ответы
	if err := flow.RecordAnswers(req.Answers, req.LastDonationDate); err != nil {
		var verr *workflow.ValidationError
		if errors.As(err, &verr) {
			uc.logger.Warn("EvaluateEligibility: donor=%d sent invalid answers: %v", req.DonorID, err)
		}
		return nil, err
	}

	// 4. Считаем вердикт
	var verdict domain.Verdict
	if req.Step != nil {
		verdict = flow.SectionVerdict(*req.Step)
	} else {
		verdict = flow.CurrentVerdict()
	}

	outcome := eligibility.Outcome(verdict)
	uc.metrics.IncVerdict(outcome)
	uc.logger.Info("EvaluateEligibility: donor=%d outcome=%s reasons=%d", req.DonorID, outcome, len(verdict.Reasons))

	return &Response{Verdict: verdict, Outcome: outcome}, nil
}
