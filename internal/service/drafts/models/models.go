package models

import (
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// DraftResponse черновик записи на донацию
type DraftResponse struct {
	ID              string                `json:"id"`
	DonorID         int64                 `json:"donorId"`
	DonorName       string                `json:"donorName"`
	FacilityID      int64                 `json:"facilityId"`
	FacilityName    string                `json:"facilityName"`
	FacilityAddress string                `json:"facilityAddress"`
	Date            string                `json:"date"`
	StartTime       string                `json:"startTime"`
	TimeLabel       string                `json:"timeLabel"`
	Answers         []domain.AnsweredItem `json:"answers"`
	RuleSetVersion  string                `json:"ruleSetVersion"`
	CreatedAt       string                `json:"createdAt"`
}

// FromDomainDraft конвертирует доменную модель в ответ
func FromDomainDraft(d *domain.AppointmentDraft) *DraftResponse {
	answers := d.Answers
	if answers == nil {
		answers = []domain.AnsweredItem{}
	}

	return &DraftResponse{
		ID:              d.ID.String(),
		DonorID:         d.DonorID,
		DonorName:       d.DonorName,
		FacilityID:      d.FacilityID,
		FacilityName:    d.FacilityName,
		FacilityAddress: d.FacilityAddress,
		Date:            d.Date.Format(domain.DateFormat),
		StartTime:       d.StartTime.String(),
		TimeLabel:       d.StartTime.Label(),
		Answers:         answers,
		RuleSetVersion:  d.RuleSetVersion,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
}
