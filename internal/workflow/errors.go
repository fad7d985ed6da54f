package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

var (
	// ErrValidation возвращается при незаполненных или некорректных полях
	ErrValidation = errors.New("workflow: validation failed")

	// ErrNotEligible возвращается, когда донор не допущен к донации
	ErrNotEligible = errors.New("workflow: donor is not eligible")

	// ErrStepLocked возвращается при попытке перейти на неразблокированный шаг
	ErrStepLocked = errors.New("workflow: step is locked")

	// ErrDonorNotFound возвращается, когда донор не найден
	ErrDonorNotFound = errors.New("workflow: donor not found")

	// ErrDonorUnavailable возвращается, когда профиль донора не удалось получить
	ErrDonorUnavailable = errors.New("workflow: donor profile unavailable")

	// ErrAlreadySubmitted возвращается при повторной отправке завершённого флоу
	ErrAlreadySubmitted = errors.New("workflow: appointment already submitted")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("workflow: internal error")
)

// ValidationError carries field-level messages. It matches ErrValidation.
type ValidationError struct {
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.FieldErrors))
	for field, msg := range e.FieldErrors {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotEligibleError carries the disqualification reasons. It matches ErrNotEligible.
type NotEligibleError struct {
	Reasons     []string
	FieldErrors map[string]string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotEligible, strings.Join(e.Reasons, "; "))
}

func (e *NotEligibleError) Unwrap() error { return ErrNotEligible }

// StepLockedError tells the caller where to send the donor. It matches ErrStepLocked.
type StepLockedError struct {
	Requested  domain.Step
	Unlocked   domain.Step
	RedirectTo domain.Step
}

func (e *StepLockedError) Error() string {
	return fmt.Sprintf("%v: requested=%s unlocked=%s", ErrStepLocked, e.Requested, e.Unlocked)
}

func (e *StepLockedError) Unwrap() error { return ErrStepLocked }

func validationErr(field, msg string) error {
	return &ValidationError{FieldErrors: map[string]string{field: msg}}
}
