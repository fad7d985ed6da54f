package get_waiting_period

import (
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	checkWaitingPeriod "github.com/m04kA/SMC-DonationService/internal/usecase/check_waiting_period"
)

const (
	msgMissingDonorID = "отсутствует ID донора"
)

type Handler struct {
	useCase CheckWaitingPeriodUseCase
	logger  Logger
}

func NewHandler(useCase CheckWaitingPeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/donors/me/waiting-period
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем donorID из контекста (через middleware Auth)
	donorID, ok := middleware.GetDonorID(r.Context())
	if !ok {
		h.logger.Warn("GET /donors/me/waiting-period - Missing donor ID")
		handlers.RespondUnauthorized(w, msgMissingDonorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkWaitingPeriod.Request{DonorID: donorID})
	if err != nil {
		h.logger.Error("GET /donors/me/waiting-period - Failed to check waiting period: donor_id=%d, error=%v", donorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /donors/me/waiting-period - Checked: donor_id=%d, can_start=%t, degraded=%t",
		donorID, result.CanStartBooking, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
