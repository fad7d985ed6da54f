package reset_flow

import (
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
)

const (
	msgMissingIdentity = "отсутствует ID донора или сессии"
)

type Handler struct {
	service StepService
	logger  Logger
}

func NewHandler(service StepService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/reset
// Начинает новую запись: состояние шагов сбрасывается, ответ содержит точку входа.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("POST /flow/reset - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	step, err := h.service.StartOver(r.Context(), donorID, sessionID)
	if err != nil {
		h.logger.Error("POST /flow/reset - Failed to reset flow: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flow/reset - Flow reset: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, step)
}
