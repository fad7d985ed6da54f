package advance_step

import (
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// Request модель запроса на переход к шагу.
// Состояние флоу хранится на клиенте и передаётся целиком.
type Request struct {
	DonorID          int64
	SessionID        string
	Step             domain.Step
	FacilityID       int64     // 0 = слот ещё не выбран
	Date             time.Time // Дата записи
	Time             string    // "9:00 AM" или "09:00"
	Answers          []workflow.AnswerInput
	LastDonationDate string
}

// Response разблокированный шаг после перехода
type Response struct {
	Step domain.Step
}
