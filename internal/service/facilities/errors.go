package facilities

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда учреждение не найдено
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
