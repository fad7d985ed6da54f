package get_waiting_period

import (
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	checkWaitingPeriod "github.com/m04kA/SMC-DonationService/internal/usecase/check_waiting_period"
)

// WaitingPeriodResponse HTTP response model
type WaitingPeriodResponse struct {
	CanStartBooking  bool    `json:"canStartBooking"`
	LastDonationDate *string `json:"lastDonationDate,omitempty"`
	NextEligibleDate *string `json:"nextEligibleDate,omitempty"`
	Degraded         bool    `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkWaitingPeriod.Response) *WaitingPeriodResponse {
	return &WaitingPeriodResponse{
		CanStartBooking:  resp.CanStartBooking,
		LastDonationDate: formatDate(resp.LastDonationDate),
		NextEligibleDate: formatDate(resp.NextEligibleDate),
		Degraded:         resp.Degraded,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
