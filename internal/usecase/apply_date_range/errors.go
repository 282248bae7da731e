package apply_date_range

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("apply_date_range: session not found")

	// ErrAccessDenied возвращается при попытке изменить чужую сессию
	ErrAccessDenied = errors.New("apply_date_range: access denied")

	// ErrIncompleteRange возвращается, когда диапазон не охватывает ни одной ночи:
	// не выбраны обе даты, либо выезд не позже заезда
	ErrIncompleteRange = errors.New("apply_date_range: date range is incomplete or spans no nights")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_date_range: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_date_range: internal error")
)
