package create_appointment

import (
	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/service/drafts/models"
	submitAppointment "github.com/m04kA/SMC-DonationService/internal/usecase/submit_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	handlers.FlowStateRequest
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(donorID int64, sessionID string) (*submitAppointment.Request, error) {
	date, err := r.ParseDate()
	if err != nil {
		return nil, err
	}

	answers, err := handlers.ParseAnswers(r.Answers)
	if err != nil {
		return nil, err
	}

	return &submitAppointment.Request{
		DonorID:          donorID,
		SessionID:        sessionID,
		FacilityID:       r.FacilityID,
		Date:             date,
		Time:             r.Time,
		Answers:          answers,
		LastDonationDate: r.LastDonationDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitAppointment.Response) *models.DraftResponse {
	return models.FromDomainDraft(resp.Draft)
}
