package advance_step

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	advanceStep "github.com/m04kA/SMC-DonationService/internal/usecase/advance_step"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует ID донора или сессии"
	msgInvalidStep        = "некорректный номер шага"
	msgFacilityNotFound   = "учреждение не найдено"
)

type Handler struct {
	useCase AdvanceStepUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceStepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/flow/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("PUT /flow/step - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req AdvanceStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flow/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(donorID, sessionID)
	if err != nil {
		h.logger.Warn("PUT /flow/step - Failed to parse request: donor_id=%d, error=%v", donorID, err)
		handlers.WriteFlowError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, advanceStep.ErrInvalidInput):
			h.logger.Warn("PUT /flow/step - Invalid step: donor_id=%d, step=%d", donorID, req.Step)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, advanceStep.ErrFacilityNotFound):
			h.logger.Warn("PUT /flow/step - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case handlers.WriteFlowError(w, err):
			h.logger.Warn("PUT /flow/step - Step rejected: donor_id=%d, step=%d, error=%v", donorID, req.Step, err)

		default:
			h.logger.Error("PUT /flow/step - Failed to advance step: donor_id=%d, step=%d, error=%v", donorID, req.Step, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flow/step - Step unlocked: donor_id=%d, session=%s, step=%s", donorID, sessionID, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
