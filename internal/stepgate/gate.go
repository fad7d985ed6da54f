// Package stepgate tracks the furthest workflow step a donor session has unlocked.
// The stored value is a ratchet: it only moves forward until it is reset on logout
// or when a new appointment flow begins.
package stepgate

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// IsStepUnlocked returns true iff unlocked >= required
func IsStepUnlocked(required, unlocked domain.Step) bool {
	return unlocked >= required
}

// SessionKey scopes a session ID to its donor, so one donor cannot reach
// another donor's gate by presenting the same session ID.
func SessionKey(donorID int64, sessionID string) string {
	if sessionID == "" {
		return ""
	}
	return strconv.FormatInt(donorID, 10) + ":" + sessionID
}

// GuardResult outcome of a route guard
type GuardResult struct {
	Allowed    bool
	Unlocked   domain.Step
	RedirectTo domain.Step // entry point when not allowed
}

// Gate step gate service
type Gate struct {
	store   Store
	metrics Metrics
	logger  Logger
}

// NewGate создает новый экземпляр step gate
func NewGate(store Store, metrics Metrics, logger Logger) *Gate {
	return &Gate{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Current returns the unlocked step, initialising a new session at the entry point
func (g *Gate) Current(ctx context.Context, sessionID string) (domain.Step, error) {
	if sessionID == "" {
		return domain.StepNone, ErrInvalidSession
	}

	step, found, err := g.store.Get(ctx, sessionID)
	if err != nil {
		g.logger.Error("StepGate: failed to read session=%s: %v", sessionID, err)
		return domain.StepNone, fmt.Errorf("%w: get: %v", ErrStore, err)
	}
	if found {
		return step, nil
	}

	step, err = g.store.AdvanceTo(ctx, sessionID, domain.StepSchedule)
	if err != nil {
		g.logger.Error("StepGate: failed to initialise session=%s: %v", sessionID, err)
		return domain.StepNone, fmt.Errorf("%w: init: %v", ErrStore, err)
	}

	g.logger.Info("StepGate: initialised session=%s at step=%s", sessionID, step)
	return step, nil
}

// CanAdvanceTo returns true if the session may open the given step
func (g *Gate) CanAdvanceTo(ctx context.Context, sessionID string, step domain.Step) (bool, error) {
	unlocked, err := g.Current(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return IsStepUnlocked(step, unlocked), nil
}

// Guard checks a navigation to required. A locked step redirects to the entry point.
func (g *Gate) Guard(ctx context.Context, sessionID string, required domain.Step) (GuardResult, error) {
	if !required.IsValid() {
		return GuardResult{}, fmt.Errorf("%w: %d", ErrInvalidStep, required)
	}

	unlocked, err := g.Current(ctx, sessionID)
	if err != nil {
		return GuardResult{}, err
	}

	if IsStepUnlocked(required, unlocked) {
		return GuardResult{Allowed: true, Unlocked: unlocked, RedirectTo: required}, nil
	}

	g.logger.Warn("StepGate: session=%s tried step=%s with unlocked=%s, redirecting", sessionID, required, unlocked)
	return GuardResult{Allowed: false, Unlocked: unlocked, RedirectTo: domain.StepSchedule}, nil
}

// Advance raises the unlocked step to step. A lower step leaves the stored value unchanged.
func (g *Gate) Advance(ctx context.Context, sessionID string, step domain.Step) (domain.Step, error) {
	if sessionID == "" {
		return domain.StepNone, ErrInvalidSession
	}
	if !step.IsValid() {
		return domain.StepNone, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	stored, err := g.store.AdvanceTo(ctx, sessionID, step)
	if err != nil {
		g.logger.Error("StepGate: failed to advance session=%s to step=%s: %v", sessionID, step, err)
		return domain.StepNone, fmt.Errorf("%w: advance: %v", ErrStore, err)
	}

	if stored == step {
		g.metrics.IncStepAdvance(step.String())
	}
	g.logger.Info("StepGate: session=%s requested step=%s, unlocked=%s", sessionID, step, stored)
	return stored, nil
}

// Reset clears the session's gate state (logout or a new appointment flow)
func (g *Gate) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	if err := g.store.Delete(ctx, sessionID); err != nil {
		g.logger.Error("StepGate: failed to reset session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: delete: %v", ErrStore, err)
	}
	g.logger.Info("StepGate: reset session=%s", sessionID)
	return nil
}
