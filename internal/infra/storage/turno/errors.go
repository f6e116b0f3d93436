package turno

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найдено
	ErrTurnoNotFound = errors.New("turno.repository: turno not found")

	// ErrNoAvailability возвращается, когда в турно нет свободных мест
	ErrNoAvailability = errors.New("turno.repository: no availability")

	// ErrAlreadyReserved возвращается, когда пользователь уже держит место в турно
	ErrAlreadyReserved = errors.New("turno.repository: already reserved")

	// ErrNotReserved возвращается, когда у пользователя нет брони в турно
	ErrNotReserved = errors.New("turno.repository: not reserved")

	// ErrUserNotFound возвращается, когда бронирующий пользователь не зарегистрирован
	ErrUserNotFound = errors.New("turno.repository: user not found")

	// ErrDuplicateTurno возвращается при повторной публикации (place, date, time)
	ErrDuplicateTurno = errors.New("turno.repository: duplicate turno")

	// ErrCapacityExceeded возвращается, если счетчик свободных мест уже равен емкости
	ErrCapacityExceeded = errors.New("turno.repository: slots available already at capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("turno.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("turno.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("turno.repository: failed to scan row")
)
