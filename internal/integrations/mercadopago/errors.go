package mercadopago

import "errors"

var (
	// ErrPreferenceFailed возвращается, когда провайдер не вернул id преференции
	// Текст ошибки содержит сырой ответ провайдера
	ErrPreferenceFailed = errors.New("mercadopago client: preference creation failed")

	// ErrServiceUnavailable возвращается при транспортной ошибке (провайдер недоступен)
	ErrServiceUnavailable = errors.New("mercadopago client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mercadopago client: internal error")
)
