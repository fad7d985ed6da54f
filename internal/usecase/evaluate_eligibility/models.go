package evaluate_eligibility

import (
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// Request модель запроса на оценку анкеты
type Request struct {
	DonorID          int64
	SessionID        string
	Answers          []workflow.AnswerInput
	LastDonationDate string
	Step             *domain.Step // nil = вся анкета; 1 или 2 = разделы соответствующего шага
}

// Response вердикт по анкете
type Response struct {
	Verdict domain.Verdict
	Outcome string // eligible | not_eligible | incomplete
}
