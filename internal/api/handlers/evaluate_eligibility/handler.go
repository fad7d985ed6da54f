package evaluate_eligibility

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	evaluateEligibility "github.com/m04kA/SMC-DonationService/internal/usecase/evaluate_eligibility"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует ID донора или сессии"
	msgInvalidStep        = "оценка возможна только для шагов 1 и 2"
)

type Handler struct {
	useCase EvaluateEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase EvaluateEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/eligibility/evaluate
// Вердикт возвращается с кодом 200 в том числе при недопуске: это результат оценки, а не ошибка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("POST /eligibility/evaluate - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req EvaluateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /eligibility/evaluate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(donorID, sessionID)
	if err != nil {
		h.logger.Warn("POST /eligibility/evaluate - Invalid answers: donor_id=%d, error=%v", donorID, err)
		handlers.WriteFlowError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, evaluateEligibility.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStep)

		case handlers.WriteFlowError(w, err):
			h.logger.Warn("POST /eligibility/evaluate - Rejected: donor_id=%d, error=%v", donorID, err)

		default:
			h.logger.Error("POST /eligibility/evaluate - Failed to evaluate: donor_id=%d, error=%v", donorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /eligibility/evaluate - Evaluated: donor_id=%d, outcome=%s", donorID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
