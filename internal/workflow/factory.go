package workflow

import "context"

// Factory opens flows with a shared set of collaborators
type Factory struct {
	deps Deps
}

// NewFactory создает фабрику флоу
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// Open loads the donor and history for a new request-scoped flow
func (f *Factory) Open(ctx context.Context, donorID int64, sessionID string) (*Flow, error) {
	return New(ctx, f.deps, donorID, sessionID)
}

// OpenScreening opens a flow for answer evaluation only, without the history fetch
func (f *Factory) OpenScreening(ctx context.Context, donorID int64, sessionID string) (*Flow, error) {
	return NewScreening(ctx, f.deps, donorID, sessionID)
}
