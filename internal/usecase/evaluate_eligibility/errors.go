package evaluate_eligibility

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("evaluate_eligibility: invalid input data")
)
