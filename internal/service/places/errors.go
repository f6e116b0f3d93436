package places

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда заведение не найдено
	ErrPlaceNotFound = errors.New("place not found")

	// ErrUserNotFound возвращается, когда владелец не зарегистрирован
	ErrUserNotFound = errors.New("user not found")

	// ErrNotPlaceAccount возвращается, когда заведение регистрирует аккаунт с ролью user
	ErrNotPlaceAccount = errors.New("only place accounts can register places")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
