package get_eligibility_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/service/rules"
)

const (
	msgUnsupportedLanguage = "язык анкеты не поддерживается"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/eligibility/rules
// Query params: lang (optional, en | es)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")

	ruleSet, err := h.service.Get(lang)
	if err != nil {
		if errors.Is(err, rules.ErrUnsupportedLanguage) {
			h.logger.Warn("GET /eligibility/rules - Unsupported language: %q", lang)
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)
			return
		}
		h.logger.Error("GET /eligibility/rules - Failed to get rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ruleSet)
}
