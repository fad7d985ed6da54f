package domain

// Waiting period between two donations
const WaitingPeriodMonths = 3

// Slot generation limits
const (
	MaxSlotsPerDay   = 8
	SlotStepMinutes  = 60
	FallbackOpenHour = 9
	FallbackLastHour = 17
	LunchBreakHour   = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Field names used in verdict field errors
const (
	FieldLastDonationDate = "lastDonationDate"
)

// Field error messages
const (
	FieldErrRequired    = "required"
	FieldErrInvalidDate = "invalid date"
	FieldErrMustWait    = "must wait"
)
