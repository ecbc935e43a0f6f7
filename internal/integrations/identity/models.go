package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims проверенные данные токена identity-сервиса
type Claims struct {
	Subject   uuid.UUID // id пользователя, совпадает с admin_users.id
	Email     string
	Role      string
	ExpiresAt time.Time
}

// accessTokenClaims формат access token identity-сервиса
type accessTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
