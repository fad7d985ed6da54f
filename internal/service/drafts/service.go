package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	draftRepo "github.com/m04kA/SMC-DonationService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-DonationService/internal/service/drafts/models"
)

// Service сервис для чтения отправленных черновиков записей
type Service struct {
	draftRepo DraftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(draftRepo DraftRepository, logger Logger) *Service {
	return &Service{
		draftRepo: draftRepo,
		logger:    logger,
	}
}

// GetByID получает черновик по ID
// Донор может видеть только свои черновики
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, donorID int64) (*models.DraftResponse, error) {
	s.logger.Info("GetByID: fetching draft id=%s for donor=%d", id, donorID)

	draft, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("GetByID: draft id=%s not found", id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("GetByID: repository error for draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if draft.DonorID != donorID {
		s.logger.Warn("GetByID: access denied for donor=%d to draft id=%s", donorID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainDraft(draft), nil
}
