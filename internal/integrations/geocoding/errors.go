package geocoding

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoding client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("geocoding client: invalid response")

	// ErrServiceUnavailable возвращается, когда провайдер недоступен
	ErrServiceUnavailable = errors.New("geocoding client: service unavailable")
)
