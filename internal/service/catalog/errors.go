package catalog

import "errors"

var (
	// ErrContentUnavailable возвращается, когда CMS недоступна и синхронизация невозможна
	ErrContentUnavailable = errors.New("catalog.service: content service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
