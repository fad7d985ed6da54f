package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

// AnswerRequest ответ на вопрос анкеты
type AnswerRequest struct {
	Section string `json:"section"`
	ItemID  string `json:"itemId"`
	Value   string `json:"value"` // "Yes" | "No" | ""
}

// FlowStateRequest состояние флоу, которое хранит клиент
type FlowStateRequest struct {
	FacilityID       int64           `json:"facilityId,omitempty"`
	Date             string          `json:"date,omitempty"` // "2024-04-18"
	Time             string          `json:"time,omitempty"` // "9:00 AM" или "09:00"
	Answers          []AnswerRequest `json:"answers,omitempty"`
	LastDonationDate string          `json:"lastDonationDate,omitempty"`
}

// ParseAnswers конвертирует ответы; некорректные значения возвращаются одной ошибкой валидации
func ParseAnswers(answers []AnswerRequest) ([]workflow.AnswerInput, error) {
	out := make([]workflow.AnswerInput, 0, len(answers))
	fieldErrors := make(map[string]string)

	for i, a := range answers {
		value, ok := domain.ParseAnswer(a.Value)
		if !ok {
			fieldErrors[fmt.Sprintf("answers[%d]", i)] = "value must be Yes or No"
			continue
		}
		out = append(out, workflow.AnswerInput{SectionID: a.Section, ItemID: a.ItemID, Value: value})
	}

	if len(fieldErrors) > 0 {
		return nil, &workflow.ValidationError{FieldErrors: fieldErrors}
	}
	return out, nil
}

// ParseDate разбирает дату записи; пустая строка = дата не выбрана
func (s *FlowStateRequest) ParseDate() (time.Time, error) {
	if s.Date == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(domain.DateFormat, s.Date)
	if err != nil {
		return time.Time{}, &workflow.ValidationError{FieldErrors: map[string]string{"date": "invalid date"}}
	}
	return date, nil
}
