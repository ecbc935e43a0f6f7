package tourdate

import "errors"

var (
	// ErrTourDateNotFound возвращается, когда рейс тура не найден
	ErrTourDateNotFound = errors.New("tourdate.repository: tour date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tourdate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tourdate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tourdate.repository: failed to scan row")
)
