package check_waiting_period

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_waiting_period: invalid input data")
)
