package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик записи не найден
	ErrDraftNotFound = errors.New("appointment draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому донору
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
