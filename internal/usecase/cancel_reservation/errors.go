package cancel_reservation

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найдено
	ErrTurnoNotFound = errors.New("cancel_reservation: turno not found")

	// ErrNotReserved возвращается, когда у пользователя нет брони в турно
	ErrNotReserved = errors.New("cancel_reservation: not reserved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
