package models

import (
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/timeslot"
)

// FacilityResponse учреждение для клиента
type FacilityResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	OperatingHours *string `json:"operatingHours,omitempty"`
	HoursParsed    bool    `json:"hoursParsed"` // false = часы не заданы или не распознаны, слоты по умолчанию
}

// FacilityListResponse список учреждений
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}

// FromDomainFacility конвертирует доменную модель в ответ
func FromDomainFacility(f *domain.Facility) FacilityResponse {
	parsed := false
	if f.HasOperatingHours() {
		_, err := timeslot.Parse(*f.OperatingHours)
		parsed = err == nil
	}

	return FacilityResponse{
		ID:             f.ID,
		Name:           f.Name,
		Address:        f.Address,
		OperatingHours: f.OperatingHours,
		HoursParsed:    parsed,
	}
}

// FromDomainFacilities конвертирует список учреждений
func FromDomainFacilities(list []*domain.Facility) *FacilityListResponse {
	items := make([]FacilityResponse, 0, len(list))
	for _, f := range list {
		items = append(items, FromDomainFacility(f))
	}
	return &FacilityListResponse{Facilities: items, Total: len(items)}
}
