package domain

// Step is the highest workflow screen a donor has unlocked
type Step int

const (
	StepNone            Step = -1 // no gate state for the session
	StepSchedule        Step = 0  // entry point: facility, date and time selection
	StepDonationHistory Step = 1  // prior-donation questions
	StepHealthScreening Step = 2  // 12-month risk, general health and female-only questions
	StepReview          Step = 3  // review of the answers and the selected slot
	StepConfirmation    Step = 4  // final confirmation before submit
	StepComplete        Step = 5  // draft handed off
)

// MinStep and MaxStep bound every stored step value
const (
	MinStep = StepNone
	MaxStep = StepComplete
)

// IsValid returns true if the step is within the supported range
func (s Step) IsValid() bool {
	return s >= MinStep && s <= MaxStep
}

// String returns the route-friendly name of the step
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepSchedule:
		return "schedule"
	case StepDonationHistory:
		return "donation_history"
	case StepHealthScreening:
		return "health_screening"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}
