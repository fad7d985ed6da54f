package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-DonationService/internal/workflow"
)

const (
	msgInternalError    = "внутренняя ошибка сервера"
	msgValidationFailed = "ошибка валидации"
	msgNotEligible      = "донор не допущен к донации"
	msgStepLocked       = "шаг недоступен"
	msgAlreadySubmitted = "запись уже отправлена"
	msgDonorNotFound    = "донор не найден"
	msgDonorUnavailable = "профиль донора временно недоступен"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// ErrorResponse модель ответа с ошибкой
type ErrorResponse struct {
	Code         int               `json:"code"`
	Message      string            `json:"message"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
	Reasons      []string          `json:"reasons,omitempty"`
	RedirectTo   *int              `json:"redirectTo,omitempty"`
	RedirectName string            `json:"redirectName,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку с указанным кодом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса; неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// WriteFlowError отвечает на ошибки флоу записи. Возвращает false, если ошибка не относится к флоу.
func WriteFlowError(w http.ResponseWriter, err error) bool {
	var (
		validationErr  *workflow.ValidationError
		notEligibleErr *workflow.NotEligibleError
		lockedErr      *workflow.StepLockedError
	)

	switch {
	case errors.As(err, &validationErr):
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:        http.StatusBadRequest,
			Message:     msgValidationFailed,
			FieldErrors: validationErr.FieldErrors,
		})

	case errors.As(err, &notEligibleErr):
		// Недопуск это вердикт, а не сбой
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Code:        http.StatusUnprocessableEntity,
			Message:     msgNotEligible,
			FieldErrors: notEligibleErr.FieldErrors,
			Reasons:     notEligibleErr.Reasons,
		})

	case errors.As(err, &lockedErr):
		redirect := int(lockedErr.RedirectTo)
		RespondJSON(w, http.StatusConflict, ErrorResponse{
			Code:         http.StatusConflict,
			Message:      msgStepLocked,
			RedirectTo:   &redirect,
			RedirectName: lockedErr.RedirectTo.String(),
		})

	case errors.Is(err, workflow.ErrAlreadySubmitted):
		RespondConflict(w, msgAlreadySubmitted)

	case errors.Is(err, workflow.ErrDonorNotFound):
		RespondNotFound(w, msgDonorNotFound)

	case errors.Is(err, workflow.ErrDonorUnavailable):
		RespondError(w, http.StatusBadGateway, msgDonorUnavailable)

	default:
		return false
	}
	return true
}
