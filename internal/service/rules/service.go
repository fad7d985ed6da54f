package rules

import (
	"strings"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/rules/models"
)

const (
	LanguageDefault   = "en"
	LanguageLocalized = "es"
)

// Service отдаёт статическую анкету
type Service struct {
	ruleSet *domain.RuleSet
}

// NewService создает сервис анкеты
func NewService(ruleSet *domain.RuleSet) *Service {
	return &Service{ruleSet: ruleSet}
}

// Get возвращает анкету на запрошенном языке; пустой язык = английский
func (s *Service) Get(language string) (*models.RuleSetResponse, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", LanguageDefault:
		return models.FromDomainRuleSet(s.ruleSet, LanguageDefault, false), nil
	case LanguageLocalized:
		return models.FromDomainRuleSet(s.ruleSet, LanguageLocalized, true), nil
	default:
		return nil, ErrUnsupportedLanguage
	}
}
