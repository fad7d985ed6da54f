package advance_step

import (
	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	advanceStep "github.com/m04kA/SMC-DonationService/internal/usecase/advance_step"
)

// AdvanceStepRequest HTTP request model
type AdvanceStepRequest struct {
	Step int `json:"step"`
	handlers.FlowStateRequest
}

// StepResponse HTTP response model
type StepResponse struct {
	Step int    `json:"step"`
	Name string `json:"name"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdvanceStepRequest) ToUseCaseRequest(donorID int64, sessionID string) (*advanceStep.Request, error) {
	date, err := r.ParseDate()
	if err != nil {
		return nil, err
	}

	answers, err := handlers.ParseAnswers(r.Answers)
	if err != nil {
		return nil, err
	}

	return &advanceStep.Request{
		DonorID:          donorID,
		SessionID:        sessionID,
		Step:             domain.Step(r.Step),
		FacilityID:       r.FacilityID,
		Date:             date,
		Time:             r.Time,
		Answers:          answers,
		LastDonationDate: r.LastDonationDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *advanceStep.Response) *StepResponse {
	return &StepResponse{Step: int(resp.Step), Name: resp.Step.String()}
}
