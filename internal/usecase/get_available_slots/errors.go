package get_available_slots

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда учреждение не найдено
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
