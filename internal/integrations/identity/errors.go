package identity

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или формата
	ErrInvalidToken = errors.New("identity: invalid token")

	// ErrTokenExpired возвращается, когда срок действия токена истек
	ErrTokenExpired = errors.New("identity: token expired")
)
