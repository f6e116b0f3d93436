package place

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда заведение не найдено
	ErrPlaceNotFound = errors.New("place.repository: place not found")

	// ErrOwnerNotFound возвращается, когда владелец не зарегистрирован
	ErrOwnerNotFound = errors.New("place.repository: owner not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("place.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")
)
