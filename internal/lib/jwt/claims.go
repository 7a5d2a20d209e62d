// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// CustomClaims расширяет стандартные claims JWT, добавляя идентификатор,
// роль пользователя и вид токена (access или refresh).
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind различает короткоживущий access-токен и долгоживущий refresh-токен.
type TokenKind string

const (
	// KindAccess — токен доступа, принимается общим middleware.
	KindAccess TokenKind = "access"
	// KindRefresh — токен обновления, принимается только эндпоинтом refresh_token.
	KindRefresh TokenKind = "refresh"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserID               int64     `json:"user_id"`    // Числовой идентификатор пользователя
	UserUID              string    `json:"uid"`        // UUID пользователя
	Role                 string    `json:"role"`       // Роль пользователя
	Kind                 TokenKind `json:"token_kind"` // Вид токена: access или refresh
	jwt.RegisteredClaims           // Встроенные стандартные claims JWT (Issuer, Subject, ExpiresAt, IssuedAt)
}
