package check_waiting_period

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/waitingperiod"
)

// UseCase проверка перед началом записи: прошёл ли интервал после последней донации
type UseCase struct {
	historyClient  HistoryClient
	historyTimeout time.Duration
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(historyClient HistoryClient, historyTimeout time.Duration, logger Logger) *UseCase {
	return &UseCase{
		historyClient:  historyClient,
		historyTimeout: historyTimeout,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DonorID <= 0 {
		return nil, fmt.Errorf("%w: donorID must be positive", ErrInvalidInput)
	}

	// 1. Получаем историю с ограничением по времени
	historyCtx, cancel := context.WithTimeout(ctx, uc.historyTimeout)
	defer cancel()

	appointments, degraded := uc.historyClient.GetAppointmentsWithGracefulDegradation(historyCtx, req.DonorID)
	if degraded {
		uc.logger.Warn("CheckWaitingPeriod: history unavailable for donor=%d, no restriction applied", req.DonorID)
	}

	history := make([]*domain.Appointment, 0, len(appointments))
	for i := range appointments {
		history = append(history, &appointments[i])
	}

	// 2. Считаем ограничение
	restriction := waitingperiod.Check(history, uc.timeProvider.Now())

	uc.logger.Info("CheckWaitingPeriod: donor=%d canStartBooking=%t", req.DonorID, restriction.Elapsed)
	return &Response{
		CanStartBooking:  restriction.Elapsed,
		LastDonationDate: restriction.LastDonation,
		NextEligibleDate: restriction.NextEligibleDate,
		Degraded:         degraded,
	}, nil
}
