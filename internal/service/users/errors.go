package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists возвращается при повторной регистрации
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrPlaceNotFound возвращается, когда заведение не найдено
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
