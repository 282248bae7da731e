package adjust_counter

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("adjust_counter: session not found")

	// ErrAccessDenied возвращается при попытке изменить чужую сессию
	ErrAccessDenied = errors.New("adjust_counter: access denied")

	// ErrItemNotFound возвращается, когда позиция каталога отсутствует в счётчиках сессии
	ErrItemNotFound = errors.New("adjust_counter: catalog item not found in session ledger")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("adjust_counter: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("adjust_counter: internal error")
)
