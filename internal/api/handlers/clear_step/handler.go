package clear_step

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

// Handle DELETE /api/v1/flow/step
// Вызывается при выходе из аккаунта.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("DELETE /flow/step - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	if err := h.service.Clear(r.Context(), donorID, sessionID); err != nil {
		h.logger.Error("DELETE /flow/step - Failed to clear session: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /flow/step - Session cleared: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
