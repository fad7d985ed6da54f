package check_waiting_period_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	uc "github.com/m04kA/SMC-DonationService/internal/usecase/check_waiting_period"
	"github.com/m04kA/SMC-DonationService/pkg/ptr"
)

type stubHistory struct {
	appointments []domain.Appointment
	degraded     bool
}

func (s stubHistory) GetAppointmentsWithGracefulDegradation(ctx context.Context, _ int64) ([]domain.Appointment, bool) {
	if _, ok := ctx.Deadline(); !ok {
		panic("history must be fetched with a deadline")
	}
	return s.appointments, s.degraded
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type clock struct{ t time.Time }

func (c clock) Now() time.Time { return c.t }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute(t *testing.T) {
	today := clock{t: date(2024, 4, 14)}

	tests := []struct {
		name     string
		history  stubHistory
		canStart bool
		next     *time.Time
	}{
		{
			name:     "no history",
			history:  stubHistory{},
			canStart: true,
		},
		{
			name: "completed three months ago to the day",
			history: stubHistory{appointments: []domain.Appointment{
				{ID: 1, Date: date(2024, 1, 14), Status: domain.AppointmentCompleted},
			}},
			canStart: true,
			next:     ptr.Ptr(date(2024, 4, 14)),
		},
		{
			name: "recent completed",
			history: stubHistory{appointments: []domain.Appointment{
				{ID: 1, Date: date(2024, 1, 31), Status: domain.AppointmentCompleted},
			}},
			canStart: false,
			next:     ptr.Ptr(date(2024, 4, 30)),
		},
		{
			name: "cancelled ignored",
			history: stubHistory{appointments: []domain.Appointment{
				{ID: 1, Date: date(2024, 4, 1), Status: domain.AppointmentCancelled},
			}},
			canStart: true,
		},
		{
			name:     "degraded history",
			history:  stubHistory{degraded: true},
			canStart: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := uc.NewUseCase(tt.history, time.Second, nopLogger{}).WithTimeProvider(today)

			resp, err := useCase.Execute(context.Background(), &uc.Request{DonorID: 7})
			require.NoError(t, err)
			assert.Equal(t, tt.canStart, resp.CanStartBooking)
			assert.Equal(t, tt.next, resp.NextEligibleDate)
			assert.Equal(t, tt.history.degraded, resp.Degraded)
		})
	}
}

func TestExecute_InvalidDonor(t *testing.T) {
	_, err := uc.NewUseCase(stubHistory{}, time.Second, nopLogger{}).Execute(context.Background(), &uc.Request{})
	assert.ErrorIs(t, err, uc.ErrInvalidInput)
}
