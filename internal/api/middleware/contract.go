package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/internal/integrations/identity"
)

// TokenVerifier проверяет bearer token
type TokenVerifier interface {
	Verify(token string) (*identity.Claims, error)
}

// AdminRepository ищет активного администратора
type AdminRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
}

// HTTPMetrics собирает метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(service, method, path, status string, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
