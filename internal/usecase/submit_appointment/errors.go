package submit_appointment

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда учреждение не найдено
	ErrFacilityNotFound = errors.New("submit_appointment: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_appointment: internal error")
)
