// Package waitingperiod implements the minimum interval between two donations.
// Both the questionnaire and the pre-scheduling check go through this package
// so they always agree for the same input.
package waitingperiod

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// NextEligibleDate returns lastDonation plus domain.WaitingPeriodMonths calendar months.
// A day that does not exist in the target month is clamped to its last day
// (Jan 31 -> Apr 30, Nov 30 -> Feb 28/29). The result is a UTC date at midnight.
func NextEligibleDate(lastDonation time.Time) time.Time {
	return addMonthsClamped(dateOnly(lastDonation), domain.WaitingPeriodMonths)
}

// HasWaitingPeriodElapsed reports whether today is on or after NextEligibleDate(lastDonation).
// Time of day is ignored.
func HasWaitingPeriodElapsed(lastDonation, today time.Time) bool {
	return !dateOnly(today).Before(NextEligibleDate(lastDonation))
}

// LatestCountable returns the most recent appointment that counts toward the waiting
// period, or nil. Cancelled appointments never count. Ties on the same date prefer
// Completed over Scheduled, then the lowest ID.
func LatestCountable(appointments []*domain.Appointment) *domain.Appointment {
	countable := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil && a.CountsTowardWaitingPeriod() && !a.Date.IsZero() {
			countable = append(countable, a)
		}
	}
	if len(countable) == 0 {
		return nil
	}

	sort.SliceStable(countable, func(i, j int) bool {
		di, dj := dateOnly(countable[i].Date), dateOnly(countable[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		if countable[i].Status != countable[j].Status {
			return countable[i].Status == domain.AppointmentCompleted
		}
		return countable[i].ID < countable[j].ID
	})

	return countable[0]
}

// Restriction is the outcome of the pre-scheduling check
type Restriction struct {
	LastDonation     *time.Time
	NextEligibleDate *time.Time
	Elapsed          bool
}

// Check evaluates the waiting period for a donor's appointment history.
// No countable appointment means no restriction.
func Check(appointments []*domain.Appointment, today time.Time) Restriction {
	latest := LatestCountable(appointments)
	if latest == nil {
		return Restriction{Elapsed: true}
	}

	last := dateOnly(latest.Date)
	next := NextEligibleDate(last)
	return Restriction{
		LastDonation:     &last,
		NextEligibleDate: &next,
		Elapsed:          HasWaitingPeriodElapsed(last, today),
	}
}

func addMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.Date()

	// первое число целевого месяца, затем ограничиваем день его длиной
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month())
	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnly keeps the calendar date as seen in t's own location
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
