package tour

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден (или неактивен для GetActiveByID)
	ErrTourNotFound = errors.New("tour.repository: tour not found")

	// ErrTourHasBookings возвращается, когда на тур ссылаются бронирования
	ErrTourHasBookings = errors.New("tour.repository: tour has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tour.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tour.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tour.repository: failed to scan row")
)
