package reserve_turno

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найдено
	ErrTurnoNotFound = errors.New("reserve_turno: turno not found")

	// ErrNoAvailability возвращается, когда свободных мест нет (турно заполнено или подходящего турно нет)
	ErrNoAvailability = errors.New("reserve_turno: no availability")

	// ErrAlreadyReserved возвращается, когда пользователь уже держит место в этом турно
	ErrAlreadyReserved = errors.New("reserve_turno: already reserved")

	// ErrUserNotRegistered возвращается, когда пользователь не завершил регистрацию
	ErrUserNotRegistered = errors.New("reserve_turno: user not registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_turno: internal error")
)
