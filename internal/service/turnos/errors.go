package turnos

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найдено
	ErrTurnoNotFound = errors.New("turno not found")

	// ErrPlaceNotFound возвращается, когда заведение не найдено
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
