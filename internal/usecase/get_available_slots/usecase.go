package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-DonationService/internal/timeslot"
)

// UseCase use case для получения слотов учреждения на дату
type UseCase struct {
	facilityRepo FacilityRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(facilityRepo FacilityRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем учреждение
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:       req.Date,
		FacilityID: facility.ID,
		Slots:      []Slot{},
	}

	// 4. Проверяем рабочий день
	if !timeslot.IsOperatingDay(facility, req.Date) {
		uc.logger.Info("GetAvailableSlots: facility id=%d is closed on %s", facility.ID, req.Date.Weekday())
		return resp, nil
	}
	resp.OperatingDay = true

	// 5. Генерируем слоты; нераспознанные часы работы дают список по умолчанию
	result := timeslot.Generate(facility, req.Date)
	if result.Fallback {
		uc.metrics.IncSlotFallback()
		if result.ParseErr != nil {
			uc.logger.Warn("GetAvailableSlots: facility id=%d has malformed hours %q, using fallback: %v",
				facility.ID, *facility.OperatingHours, result.ParseErr)
		}
	}

	resp.Fallback = result.Fallback
	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, Slot{Label: s.Label, StartTime: s.StartTime, Available: s.Available})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for facility=%d on %s",
		len(resp.Slots), facility.ID, req.Date.Format(domain.DateFormat))
	return resp, nil
}
