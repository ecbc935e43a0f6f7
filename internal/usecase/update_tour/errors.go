package update_tour

import "errors"

var (
	// ErrAccessDenied операция выполняется без проверенного администратора
	ErrAccessDenied = errors.New("update_tour: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_tour: invalid input data")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("update_tour: tour not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_tour: internal error")
)
