package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-DonationService/internal/service/facilities/models"
)

// Service сервис для работы с учреждениями
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса учреждений
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// List получает все учреждения
func (s *Service) List(ctx context.Context) (*models.FacilityListResponse, error) {
	list, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d facilities", len(list))
	return models.FromDomainFacilities(list), nil
}

// GetByID получает учреждение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	facility, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainFacility(facility)
	return &resp, nil
}

// Get получает доменную модель учреждения
func (s *Service) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: facility id must be positive", ErrInvalidInput)
	}

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Get: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Get: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return facility, nil
}
