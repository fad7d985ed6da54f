package evaluate_eligibility

import (
	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	evaluateEligibility "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
)

// EvaluateRequest HTTP request model
type EvaluateRequest struct {
	Answers          []handlers.AnswerRequest `json:"answers"`
	LastDonationDate string                   `json:"lastDonationDate,omitempty"`
	Step             *int                     `json:"step,omitempty"` // 1 или 2; без шага оценивается вся анкета
}

// VerdictResponse HTTP response model
type VerdictResponse struct {
	Outcome     string            `json:"outcome"`
	Eligible    *bool             `json:"eligible"`
	Reasons     []string          `json:"reasons"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EvaluateRequest) ToUseCaseRequest(donorID int64, sessionID string) (*evaluateEligibility.Request, error) {
	answers, err := handlers.ParseAnswers(r.Answers)
	if err != nil {
		return nil, err
	}

	req := &evaluateEligibility.Request{
		DonorID:          donorID,
		SessionID:        sessionID,
		Answers:          answers,
		LastDonationDate: r.LastDonationDate,
	}
	if r.Step != nil {
		step := domain.Step(*r.Step)
		req.Step = &step
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *evaluateEligibility.Response) *VerdictResponse {
	reasons := resp.Verdict.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	return &VerdictResponse{
		Outcome:     resp.Outcome,
		Eligible:    resp.Verdict.Eligible,
		Reasons:     reasons,
		FieldErrors: resp.Verdict.FieldErrors,
	}
}
