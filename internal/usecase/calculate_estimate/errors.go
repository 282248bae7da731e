package calculate_estimate

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("calculate_estimate: session not found")

	// ErrAccessDenied возвращается при попытке прочитать чужую сессию
	ErrAccessDenied = errors.New("calculate_estimate: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_estimate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_estimate: internal error")
)
