package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/WebMTour-Service/internal/api/handlers"
	"github.com/m04kA/WebMTour-Service/internal/domain"
	adminRepo "github.com/m04kA/WebMTour-Service/internal/infra/storage/admin"
	"github.com/m04kA/WebMTour-Service/internal/integrations/identity"
)

const (
	msgMissingToken = "กรุณาเข้าสู่ระบบ"
	msgInvalidToken = "เซสชันไม่ถูกต้องหรือหมดอายุ กรุณาเข้าสู่ระบบใหม่"
	msgNotAdmin     = "ไม่มีสิทธิ์เข้าถึง"
)

type contextKey string

const adminContextKey contextKey = "admin"

// AdminAuth пропускает запрос, только если bearer token принадлежит активному администратору
func AdminAuth(verifier TokenVerifier, admins AdminRepository, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, identity.ErrTokenExpired) {
					logger.Warn("%s %s - Token expired", r.Method, r.URL.Path)
				} else {
					logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			admin, err := admins.GetActiveByID(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, adminRepo.ErrAdminNotFound) {
					logger.Warn("%s %s - User %s is not an active admin", r.Method, r.URL.Path, claims.Subject)
					handlers.RespondForbidden(w, msgNotAdmin)
					return
				}
				logger.Error("%s %s - Failed to load admin %s: %v", r.Method, r.URL.Path, claims.Subject, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

// WithAdmin кладет администратора в контекст
func WithAdmin(ctx context.Context, admin *domain.Admin) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// GetAdmin достает администратора, положенного AdminAuth
func GetAdmin(ctx context.Context) (*domain.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*domain.Admin)
	return admin, ok && admin != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
