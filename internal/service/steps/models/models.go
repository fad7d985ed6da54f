package models

import "github.com/m04kA/SMC-DonationService/internal/domain"

// StepResponse разблокированный шаг сессии
type StepResponse struct {
	Step int    `json:"step"`
	Name string `json:"name"`
}

// GuardResponse результат проверки доступа к шагу
type GuardResponse struct {
	Step         int    `json:"step"`
	Allowed      bool   `json:"allowed"`
	Unlocked     int    `json:"unlocked"`
	RedirectTo   int    `json:"redirectTo"`
	RedirectName string `json:"redirectName"`
}

// FromStep конвертирует шаг в ответ
func FromStep(step domain.Step) *StepResponse {
	return &StepResponse{Step: int(step), Name: step.String()}
}
