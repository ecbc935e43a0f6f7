package tours

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден (или неактивен для публичных методов)
	ErrTourNotFound = errors.New("tours.service: tour not found")

	// ErrAccessDenied возвращается, когда операция вызвана без проверенного администратора
	ErrAccessDenied = errors.New("tours.service: access denied")

	// ErrInvalidInput возвращается при некорректном фильтре
	ErrInvalidInput = errors.New("tours.service: invalid input data")

	// ErrTourInUse возвращается при удалении тура, у которого есть бронирования
	ErrTourInUse = errors.New("tours.service: tour has bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tours.service: internal error")
)
