package payments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных оплаты
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPreferenceFailed возвращается, когда провайдер отклонил создание преференции
	ErrPreferenceFailed = errors.New("payment preference creation failed")

	// ErrServiceUnavailable возвращается, когда провайдер недоступен
	ErrServiceUnavailable = errors.New("payment provider unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
