package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	submitAppointment "github.com/m04kA/SMC-DonationService/internal/usecase/submit_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует ID донора или сессии"
	msgMissingSelection   = "не выбраны учреждение, дата или время"
	msgFacilityNotFound   = "учреждение не найдено"
)

type Handler struct {
	useCase SubmitAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	donorID, okDonor := middleware.GetDonorID(r.Context())
	sessionID, okSession := middleware.GetSessionID(r.Context())
	if !okDonor || !okSession {
		h.logger.Warn("POST /appointments - Missing donor or session ID")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и ответов)
	useCaseReq, err := req.ToUseCaseRequest(donorID, sessionID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: donor_id=%d, error=%v", donorID, err)
		handlers.WriteFlowError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Incomplete selection: donor_id=%d, error=%v", donorID, err)
			handlers.RespondBadRequest(w, msgMissingSelection)

		case errors.Is(err, submitAppointment.ErrFacilityNotFound):
			h.logger.Warn("POST /appointments - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case handlers.WriteFlowError(w, err):
			h.logger.Warn("POST /appointments - Submit rejected: donor_id=%d, error=%v", donorID, err)

		default:
			// Черновик не сохранён, повтор выполняет клиент
			h.logger.Error("POST /appointments - Failed to submit appointment: donor_id=%d, facility_id=%d, error=%v",
				donorID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment draft created: draft_id=%s, donor_id=%d, facility_id=%d",
		result.Draft.ID, donorID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
