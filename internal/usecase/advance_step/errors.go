package advance_step

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда учреждение не найдено
	ErrFacilityNotFound = errors.New("advance_step: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("advance_step: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("advance_step: internal error")
)
