package steps

import "errors"

var (
	// ErrInvalidStep возвращается для шага вне диапазона
	ErrInvalidStep = errors.New("invalid step")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
