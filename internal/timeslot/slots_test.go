package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/pkg/ptr"
)

var (
	wednesday = time.Date(2024, time.April, 17, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
)

func facility(hours *string) *domain.Facility {
	return &domain.Facility{ID: 1, Name: "Central Blood Bank", Address: "1 Main St", OperatingHours: hours}
}

func labels(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func TestListSlots_WeekdayWindow(t *testing.T) {
	f := facility(ptr.Ptr("Mon-Fri 09:00 - 17:00"))

	assert.True(t, IsOperatingDay(f, wednesday))
	assert.False(t, IsOperatingDay(f, saturday))

	slots := ListSlots(f, wednesday)
	require.Len(t, slots, 8)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "4:00 PM", slots[7].Label)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestListSlots_ShortWindow(t *testing.T) {
	f := facility(ptr.Ptr("Sat 10:00 - 13:30"))

	assert.Equal(t, []string{"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"}, labels(ListSlots(f, saturday)))
}

func TestListSlots_CappedAtEight(t *testing.T) {
	f := facility(ptr.Ptr("Sun-Sat 00:00 - 24:00"))

	slots := ListSlots(f, wednesday)
	require.Len(t, slots, 8)
	assert.Equal(t, "12:00 AM", slots[0].Label)
	assert.Equal(t, "7:00 AM", slots[7].Label)
}

func TestListSlots_EndOfDayWindow(t *testing.T) {
	f := facility(ptr.Ptr("Fri 20:00 - 24:00"))

	assert.Equal(t, []string{"8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM"}, labels(ListSlots(f, wednesday)))
}

func TestGenerate_MalformedFallsBack(t *testing.T) {
	f := facility(ptr.Ptr("garbage"))

	res := Generate(f, wednesday)
	assert.True(t, res.Fallback)
	assert.ErrorIs(t, res.ParseErr, ErrMalformedHours)
	assert.Equal(t, []string{
		"9:00 AM", "10:00 AM", "11:00 AM",
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	}, labels(res.Slots))
	assert.True(t, IsOperatingDay(f, saturday))
}

func TestGenerate_AbsentHours(t *testing.T) {
	f := facility(nil)

	res := Generate(f, saturday)
	assert.True(t, res.Fallback)
	assert.NoError(t, res.ParseErr)
	assert.Len(t, res.Slots, 8)
	assert.True(t, IsOperatingDay(f, saturday))
}

func TestFallbackSlots_SkipsLunch(t *testing.T) {
	for _, s := range FallbackSlots() {
		assert.NotEqual(t, "12:00", s.StartTime.String())
	}
}

func TestFindSlot(t *testing.T) {
	slots := FallbackSlots()

	s, ok := FindSlot(slots, "1:00 PM")
	require.True(t, ok)
	assert.Equal(t, "13:00", s.StartTime.String())

	s, ok = FindSlot(slots, "14:00")
	require.True(t, ok)
	assert.Equal(t, "2:00 PM", s.Label)

	_, ok = FindSlot(slots, "12:00")
	assert.False(t, ok)
}
