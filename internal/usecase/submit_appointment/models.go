package submit_appointment

import (
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// Request модель запроса на отправку записи
type Request struct {
	DonorID          int64
	SessionID        string
	FacilityID       int64     // ID учреждения
	Date             time.Time // Дата записи (без времени)
	Time             string    // "9:00 AM" или "09:00"
	Answers          []workflow.AnswerInput
	LastDonationDate string
}

// Response отправленный черновик записи
type Response struct {
	Draft *domain.AppointmentDraft
}
