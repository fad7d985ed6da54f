package rules

import "errors"

var (
	// ErrUnsupportedLanguage возвращается для языка без перевода анкеты
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
