package get_eligibility_rules

import "github.com/m04kA/SMC-DonationService/internal/service/rules/models"

type RuleService interface {
	Get(language string) (*models.RuleSetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
