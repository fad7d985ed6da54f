package guard_step

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/service/steps"
)

const (
	msgMissingIdentity = "отсутствует ID донора или сессии"
	msgInvalidStep     = "некорректный номер шага"
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

// Handle GET /api/v1/flow/steps/{step}
// Закрытый шаг это не ошибка: ответ 200 с allowed=false и точкой входа в redirectTo.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(mux.Vars(r)["step"])
	if err != nil {
		h.logger.Warn("GET /flow/steps/{step} - Invalid step: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStep)
		return
	}

	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("GET /flow/steps/{step} - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.service.Guard(r.Context(), donorID, sessionID, domain.Step(step))
	if err != nil {
		switch {
		case errors.Is(err, steps.ErrInvalidStep):
			h.logger.Warn("GET /flow/steps/{step} - Step out of range: step=%d", step)
			handlers.RespondBadRequest(w, msgInvalidStep)

		default:
			h.logger.Error("GET /flow/steps/{step} - Failed to check step: session=%s, step=%d, error=%v", sessionID, step, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Allowed {
		h.logger.Info("GET /flow/steps/{step} - Step locked: session=%s, step=%d, unlocked=%d", sessionID, step, result.Unlocked)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
