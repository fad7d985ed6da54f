package stepgate

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// MemoryStore in-process Store for development and tests
type MemoryStore struct {
	mu    sync.Mutex
	steps map[string]domain.Step
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{steps: make(map[string]domain.Step)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.Step, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step, ok := s.steps[sessionID]
	if !ok {
		return domain.StepNone, false, nil
	}
	return step, true, nil
}

func (s *MemoryStore) AdvanceTo(_ context.Context, sessionID string, step domain.Step) (domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.steps[sessionID]; ok && current >= step {
		return current, nil
	}
	s.steps[sessionID] = step
	return step, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.steps, sessionID)
	return nil
}
