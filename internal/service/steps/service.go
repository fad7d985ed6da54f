package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/steps/models"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
)

// Service навигация по шагам флоу без проверки анкеты
type Service struct {
	gate   StepGate
	logger Logger
}

// NewService создает новый экземпляр сервиса шагов
func NewService(gate StepGate, logger Logger) *Service {
	return &Service{
		gate:   gate,
		logger: logger,
	}
}

// Current возвращает разблокированный шаг сессии
func (s *Service) Current(ctx context.Context, donorID int64, sessionID string) (*models.StepResponse, error) {
	step, err := s.gate.Current(ctx, stepgate.SessionKey(donorID, sessionID))
	if err != nil {
		s.logger.Error("Current: failed to read step for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Current - gate error: %v", ErrInternal, err)
	}
	return models.FromStep(step), nil
}

// Guard проверяет, может ли сессия открыть шаг; иначе возвращает точку входа
func (s *Service) Guard(ctx context.Context, donorID int64, sessionID string, step domain.Step) (*models.GuardResponse, error) {
	res, err := s.gate.Guard(ctx, stepgate.SessionKey(donorID, sessionID), step)
	if err != nil {
		if errors.Is(err, stepgate.ErrInvalidStep) {
			return nil, ErrInvalidStep
		}
		s.logger.Error("Guard: failed for session=%s step=%d: %v", sessionID, step, err)
		return nil, fmt.Errorf("%w: Guard - gate error: %v", ErrInternal, err)
	}

	return &models.GuardResponse{
		Step:         int(step),
		Allowed:      res.Allowed,
		Unlocked:     int(res.Unlocked),
		RedirectTo:   int(res.RedirectTo),
		RedirectName: res.RedirectTo.String(),
	}, nil
}

// StartOver сбрасывает флоу (новая запись) и возвращает точку входа
func (s *Service) StartOver(ctx context.Context, donorID int64, sessionID string) (*models.StepResponse, error) {
	if err := s.Clear(ctx, donorID, sessionID); err != nil {
		return nil, err
	}
	return s.Current(ctx, donorID, sessionID)
}

// Clear удаляет состояние сессии (выход из аккаунта)
func (s *Service) Clear(ctx context.Context, donorID int64, sessionID string) error {
	if err := s.gate.Reset(ctx, stepgate.SessionKey(donorID, sessionID)); err != nil {
		s.logger.Error("Clear: failed to reset session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Clear - gate error: %v", ErrInternal, err)
	}
	s.logger.Info("Clear: session=%s reset", sessionID)
	return nil
}
