package appointmentservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// Appointment модель записи из AppointmentService
type Appointment struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`   // YYYY-MM-DD
	Status string `json:"status"` // Scheduled, Completed, Cancelled
}

func (a *Appointment) toDomain(donorID int64) (domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, a.Date)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %d has invalid date %q", ErrInvalidResponse, a.ID, a.Date)
	}

	return domain.Appointment{
		ID:      a.ID,
		DonorID: donorID,
		Date:    date,
		Status:  domain.AppointmentStatus(a.Status),
	}, nil
}
