package models

import "github.com/m04kA/SMC-DonationService/internal/domain"

// RuleSetResponse анкета допуска к донации
type RuleSetResponse struct {
	Version  string            `json:"version"`
	Language string            `json:"language"`
	Sections []SectionResponse `json:"sections"`
}

// SectionResponse раздел анкеты
type SectionResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	FemaleOnly bool           `json:"femaleOnly"`
	Items      []ItemResponse `json:"items"`
}

// ItemResponse вопрос анкеты
type ItemResponse struct {
	ID       string `json:"id"`
	Prompt   string `json:"prompt"`
	MustBeNo bool   `json:"mustBeNo"`
}

// FromDomainRuleSet конвертирует анкету; localized = взять локализованный текст, если он есть
func FromDomainRuleSet(rs *domain.RuleSet, language string, localized bool) *RuleSetResponse {
	sections := make([]SectionResponse, 0, len(rs.Sections))
	for _, s := range rs.Sections {
		items := make([]ItemResponse, 0, len(s.Items))
		for _, it := range s.Items {
			prompt := it.Prompt
			if localized && it.PromptLocalized != nil {
				prompt = *it.PromptLocalized
			}
			items = append(items, ItemResponse{ID: it.ID, Prompt: prompt, MustBeNo: it.MustBeNo})
		}
		sections = append(sections, SectionResponse{
			ID:         s.ID,
			Title:      s.Title,
			FemaleOnly: s.GenderRestriction == domain.RestrictionFemaleOnly,
			Items:      items,
		})
	}

	return &RuleSetResponse{
		Version:  rs.Version,
		Language: language,
		Sections: sections,
	}
}
