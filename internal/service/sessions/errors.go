package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions.service: session not found")

	// ErrAccessDenied возвращается при попытке доступа к чужой сессии
	ErrAccessDenied = errors.New("sessions.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions.service: internal error")
)
