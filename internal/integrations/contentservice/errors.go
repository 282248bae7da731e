package contentservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("contentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от CMS
	ErrInvalidResponse = errors.New("contentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что CMS недоступна и следует работать с каталогом из БД
	ErrServiceDegraded = errors.New("contentservice unavailable: graceful degradation applied")
)
