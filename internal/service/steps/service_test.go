package steps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/steps"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncStepAdvance(string) {}

func TestService(t *testing.T) {
	ctx := context.Background()
	gate := stepgate.NewGate(stepgate.NewMemoryStore(), nopMetrics{}, nopLogger{})
	svc := steps.NewService(gate, nopLogger{})

	cur, err := svc.Current(ctx, 7, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, cur.Step)
	assert.Equal(t, "schedule", cur.Name)

	_, err = gate.Advance(ctx, stepgate.SessionKey(7, "s1"), domain.StepHealthScreening)
	require.NoError(t, err)

	guard, err := svc.Guard(ctx, 7, "s1", domain.StepReview)
	require.NoError(t, err)
	assert.False(t, guard.Allowed)
	assert.Equal(t, 0, guard.RedirectTo)
	assert.Equal(t, 2, guard.Unlocked)

	guard, err = svc.Guard(ctx, 7, "s1", domain.StepDonationHistory)
	require.NoError(t, err)
	assert.True(t, guard.Allowed)

	_, err = svc.Guard(ctx, 7, "s1", domain.Step(42))
	assert.ErrorIs(t, err, steps.ErrInvalidStep)

	cur, err = svc.StartOver(ctx, 7, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, cur.Step)

	require.NoError(t, svc.Clear(ctx, 7, "s1"))
}

func TestService_SessionScopedByDonor(t *testing.T) {
	ctx := context.Background()
	gate := stepgate.NewGate(stepgate.NewMemoryStore(), nopMetrics{}, nopLogger{})
	svc := steps.NewService(gate, nopLogger{})

	_, err := gate.Advance(ctx, stepgate.SessionKey(7, "shared"), domain.StepReview)
	require.NoError(t, err)

	other, err := svc.Current(ctx, 8, "shared")
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepSchedule), other.Step)

	require.NoError(t, svc.Clear(ctx, 8, "shared"))
	own, err := svc.Current(ctx, 7, "shared")
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepReview), own.Step)
}
