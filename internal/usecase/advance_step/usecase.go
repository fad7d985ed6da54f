package advance_step

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// UseCase переход на следующий шаг флоу записи
type UseCase struct {
	flows        FlowOpener
	facilityRepo FacilityRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(flows FlowOpener, facilityRepo FacilityRepository, logger Logger) *UseCase {
	return &UseCase{
		flows:        flows,
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Execute выполняет переход
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdvanceStep: donor=%d, session=%s, step=%s", req.DonorID, req.SessionID, req.Step)

	// 1. Валидация входных данных
	if !req.Step.IsValid() || req.Step == domain.StepNone {
		return nil, fmt.Errorf("%w: step %d out of range", ErrInvalidInput, req.Step)
	}

	// 2. Получаем учреждение, если слот выбран
	var facility *domain.Facility
	if req.FacilityID > 0 {
		f, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
		if err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				uc.logger.Warn("AdvanceStep: facility id=%d not found", req.FacilityID)
				return nil, ErrFacilityNotFound
			}
			uc.logger.Error("AdvanceStep: failed to get facility id=%d: %v", req.FacilityID, err)
			return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
		}
		facility = f
	}

	// 3. Открываем флоу и восстанавливаем состояние клиента
	flow, err := uc.flows.Open(ctx, req.DonorID, req.SessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.Restore(workflow.Snapshot{
		Facility:         facility,
		Date:             req.Date,
		Time:             req.Time,
		Answers:          req.Answers,
		LastDonationDate: req.LastDonationDate,
	}); err != nil {
		uc.logger.Warn("AdvanceStep: invalid flow state for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 4. Переходим на шаг (требования проверяет флоу)
	step, err := flow.AdvanceStep(ctx, req.Step)
	if err != nil {
		return nil, err
	}

	return &Response{Step: step}, nil
}
