package create_tour

import "errors"

var (
	// ErrAccessDenied операция выполняется без проверенного администратора
	ErrAccessDenied = errors.New("create_tour: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_tour: internal error")
)
