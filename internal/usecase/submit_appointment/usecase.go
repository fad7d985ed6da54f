package submit_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// UseCase use case для отправки записи на донацию
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

// Execute выполняет use case отправки записи.
// Повторно проверяет все шаги; при ошибке сохранения повтор не выполняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitAppointment: donor=%d, session=%s, facility=%d, date=%s, time=%s",
		req.DonorID, req.SessionID, req.FacilityID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем учреждение
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("SubmitAppointment: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("SubmitAppointment: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
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
		uc.logger.Warn("SubmitAppointment: invalid flow state for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 4. Отправляем черновик
	draft, err := flow.Submit(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitAppointment: draft id=%s created for donor=%d", draft.ID, req.DonorID)
	return &Response{Draft: draft}, nil
}
