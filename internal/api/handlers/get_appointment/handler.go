package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
	"github.com/m04kA/SMC-DonationService/internal/api/middleware"
	"github.com/m04kA/SMC-DonationService/internal/service/drafts"
)

const (
	msgInvalidDraftID = "некорректный ID записи"
	msgNotFound       = "запись не найдена"
	msgMissingDonorID = "отсутствует ID донора"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := uuid.Parse(mux.Vars(r)["draftId"])
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	// Получаем donorID из контекста (через middleware Auth)
	donorID, ok := middleware.GetDonorID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - Missing donor ID")
		handlers.RespondUnauthorized(w, msgMissingDonorID)
		return
	}

	// Сервис сам проверит права доступа
	draft, err := h.service.GetByID(r.Context(), draftID, donorID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("GET /appointments/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: draft_id=%s, donor_id=%d", draftID, donorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Draft retrieved successfully: draft_id=%s, donor_id=%d", draftID, donorID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
