package select_date

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("select_date: session not found")

	// ErrAccessDenied возвращается при попытке изменить чужую сессию
	ErrAccessDenied = errors.New("select_date: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_date: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_date: internal error")
)
