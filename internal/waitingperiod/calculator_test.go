package waitingperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextEligibleDate(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		want time.Time
	}{
		{"regular", date(2024, time.January, 15), date(2024, time.April, 15)},
		{"month end clamps instead of overflowing", date(2024, time.January, 31), date(2024, time.April, 30)},
		{"leap year february", date(2023, time.November, 30), date(2024, time.February, 29)},
		{"non-leap february", date(2022, time.November, 30), date(2023, time.February, 28)},
		{"crosses year", date(2024, time.October, 10), date(2025, time.January, 10)},
		{"time of day ignored", time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC), date(2024, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextEligibleDate(tt.last))
		})
	}
}

func TestNextEligibleDate_NotNinetyDays(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		want time.Time
	}{
		{name: "non-leap january end", last: date(2023, time.January, 31), want: date(2023, time.April, 30)},
		{name: "march end", last: date(2024, time.March, 31), want: date(2024, time.June, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextEligibleDate(tt.last)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, tt.last.AddDate(0, 0, 90), got)
		})
	}
}

func TestHasWaitingPeriodElapsed(t *testing.T) {
	last := date(2024, time.January, 15)

	assert.True(t, HasWaitingPeriodElapsed(last, date(2024, time.April, 15)))
	assert.False(t, HasWaitingPeriodElapsed(last, date(2024, time.April, 14)))
	assert.True(t, HasWaitingPeriodElapsed(last, time.Date(2024, time.April, 15, 0, 0, 1, 0, time.UTC)))
	assert.False(t, HasWaitingPeriodElapsed(last, time.Date(2024, time.April, 14, 23, 59, 59, 0, time.UTC)))
}

func TestLatestCountable(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		assert.Nil(t, LatestCountable(nil))
	})

	t.Run("cancelled never counts", func(t *testing.T) {
		history := []*domain.Appointment{
			{ID: 1, Date: date(2024, time.May, 1), Status: domain.AppointmentCancelled},
		}
		assert.Nil(t, LatestCountable(history))
	})

	t.Run("most recent wins regardless of order", func(t *testing.T) {
		history := []*domain.Appointment{
			{ID: 1, Date: date(2024, time.January, 1), Status: domain.AppointmentCompleted},
			{ID: 2, Date: date(2024, time.June, 1), Status: domain.AppointmentCancelled},
			{ID: 3, Date: date(2024, time.March, 1), Status: domain.AppointmentScheduled},
		}
		latest := LatestCountable(history)
		require.NotNil(t, latest)
		assert.Equal(t, int64(3), latest.ID)
	})

	t.Run("ties are deterministic", func(t *testing.T) {
		history := []*domain.Appointment{
			{ID: 9, Date: date(2024, time.March, 1), Status: domain.AppointmentScheduled},
			{ID: 5, Date: date(2024, time.March, 1), Status: domain.AppointmentCompleted},
			{ID: 4, Date: date(2024, time.March, 1), Status: domain.AppointmentCompleted},
		}
		latest := LatestCountable(history)
		require.NotNil(t, latest)
		assert.Equal(t, int64(4), latest.ID)
	})
}

func TestCheck(t *testing.T) {
	today := date(2024, time.April, 10)

	t.Run("no history means no restriction", func(t *testing.T) {
		r := Check(nil, today)
		assert.True(t, r.Elapsed)
		assert.Nil(t, r.NextEligibleDate)
	})

	t.Run("recent donation blocks", func(t *testing.T) {
		history := []*domain.Appointment{{ID: 1, Date: date(2024, time.January, 31), Status: domain.AppointmentCompleted}}
		r := Check(history, today)
		assert.False(t, r.Elapsed)
		require.NotNil(t, r.NextEligibleDate)
		assert.Equal(t, date(2024, time.April, 30), *r.NextEligibleDate)
	})
}
