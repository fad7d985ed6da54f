package appointment

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("appointment.repository: draft not found")

	// ErrDuplicateDraft возвращается при повторной вставке черновика с тем же ID
	ErrDuplicateDraft = errors.New("appointment.repository: duplicate draft")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrInvalidAnswer возвращается при невалидной сохранённой записи ответа
	ErrInvalidAnswer = errors.New("appointment.repository: invalid stored answer")
)
