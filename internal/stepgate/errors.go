package stepgate

import "errors"

var (
	// ErrInvalidStep возвращается для шага вне диапазона -1..5
	ErrInvalidStep = errors.New("stepgate: invalid step")

	// ErrInvalidSession возвращается при пустом идентификаторе сессии
	ErrInvalidSession = errors.New("stepgate: session id is required")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("stepgate: store error")
)
