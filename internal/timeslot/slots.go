package timeslot

import (
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/pkg/types"
)

// Slot bookable start time. Available is always true: capacity is not tracked.
type Slot struct {
	Label     string           // "9:00 AM"
	StartTime types.TimeString // "09:00"
	Available bool
}

// Result slots for a facility and date
type Result struct {
	Slots    []Slot
	Fallback bool  // default list served instead of parsed hours
	ParseErr error // set when the description exists but is malformed
}

// IsOperatingDay returns true if the facility works on the date's weekday.
// A facility without an operating-hours description works every day; a malformed
// description is treated the same way so that the fallback slots stay bookable.
func IsOperatingDay(facility *domain.Facility, date time.Time) bool {
	if facility == nil || !facility.HasOperatingHours() {
		return true
	}
	hours, err := Parse(*facility.OperatingHours)
	if err != nil {
		return true
	}
	return hours.IsOpenOn(date.Weekday())
}

// ListSlots returns the hourly slots for the facility on the given date
func ListSlots(facility *domain.Facility, date time.Time) []Slot {
	return Generate(facility, date).Slots
}

// Generate enumerates hourly slots within the operating window, at most
// domain.MaxSlotsPerDay of them. Missing or malformed hours yield FallbackSlots.
func Generate(facility *domain.Facility, _ time.Time) Result {
	if facility == nil || !facility.HasOperatingHours() {
		return Result{Slots: FallbackSlots(), Fallback: true}
	}

	hours, err := Parse(*facility.OperatingHours)
	if err != nil {
		return Result{Slots: FallbackSlots(), Fallback: true, ParseErr: err}
	}

	return Result{Slots: enumerate(hours.Start, hours.End)}
}

func enumerate(start, end time.Duration) []Slot {
	slots := make([]Slot, 0, domain.MaxSlotsPerDay)
	step := domain.SlotStepMinutes * time.Minute

	for current := start; current < end && len(slots) < domain.MaxSlotsPerDay; current += step {
		ts, err := types.NewTimeStringFromMinutes(int(current / time.Minute))
		if err != nil {
			break
		}
		slots = append(slots, newSlot(ts))
	}

	return slots
}

// FallbackSlots 9:00 to 17:00 hourly without the 12:00 lunch break
func FallbackSlots() []Slot {
	slots := make([]Slot, 0, domain.MaxSlotsPerDay)
	for hour := domain.FallbackOpenHour; hour <= domain.FallbackLastHour; hour++ {
		if hour == domain.LunchBreakHour {
			continue
		}
		ts, _ := types.NewTimeStringFromMinutes(hour * 60)
		slots = append(slots, newSlot(ts))
	}
	return slots
}

// FindSlot returns the slot whose label or start time matches value
func FindSlot(slots []Slot, value string) (Slot, bool) {
	for _, s := range slots {
		if s.Label == value || s.StartTime.String() == value {
			return s, true
		}
	}
	return Slot{}, false
}

func newSlot(ts types.TimeString) Slot {
	return Slot{Label: ts.Label(), StartTime: ts, Available: true}
}
