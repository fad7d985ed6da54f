package get_step

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

// Handle GET /api/v1/flow/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("GET /flow/step - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	step, err := h.service.Current(r.Context(), donorID, sessionID)
	if err != nil {
		h.logger.Error("GET /flow/step - Failed to read step: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, step)
}
