package donorservice

import "errors"

var (
	// ErrDonorNotFound возвращается, когда донор не найден
	ErrDonorNotFound = errors.New("donorservice client: donor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("donorservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("donorservice client: invalid response")

	// ErrUnavailable возвращается, когда DonorService недоступен
	ErrUnavailable = errors.New("donorservice client: service unavailable")
)
