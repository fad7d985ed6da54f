package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DonationService/pkg/types"
)

// AppointmentStatus represents the status of a past or upcoming appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a donor's appointment as returned by the history provider
type Appointment struct {
	ID      int64
	DonorID int64
	Date    time.Time
	Status  AppointmentStatus
}

// CountsTowardWaitingPeriod returns true for scheduled and completed appointments
func (a *Appointment) CountsTowardWaitingPeriod() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentCompleted
}

// AppointmentDraft is the finished payload handed to the persistence collaborator
type AppointmentDraft struct {
	ID              uuid.UUID
	DonorID         int64
	DonorName       string
	FacilityID      int64
	FacilityName    string
	FacilityAddress string
	Date            time.Time
	StartTime       types.TimeString
	Answers         []AnsweredItem
	RuleSetVersion  string
	CreatedAt       time.Time
}
