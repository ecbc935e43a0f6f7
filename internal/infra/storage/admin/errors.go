package admin

import "errors"

var (
	// ErrAdminNotFound возвращается, когда активный администратор не найден
	ErrAdminNotFound = errors.New("admin.repository: admin not found")

	ErrBuildQuery = errors.New("admin.repository: failed to build query")
	ErrScanRow    = errors.New("admin.repository: failed to scan row")
)
