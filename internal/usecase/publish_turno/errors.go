package publish_turno

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда заведение не найдено
	ErrPlaceNotFound = errors.New("publish_turno: place not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не сотрудник заведения
	ErrAccessDenied = errors.New("publish_turno: access denied")

	// ErrDuplicateTurno возвращается, когда турно на это время уже опубликовано
	ErrDuplicateTurno = errors.New("publish_turno: turno already published for this date and time")

	// ErrInvalidCapacity возвращается при емкости вне допустимого диапазона
	ErrInvalidCapacity = errors.New("publish_turno: invalid capacity")

	// ErrDateInPast возвращается, когда дата-время турно уже прошли
	ErrDateInPast = errors.New("publish_turno: date and time are in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("publish_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("publish_turno: internal error")
)
