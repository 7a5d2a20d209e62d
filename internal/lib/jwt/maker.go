// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки access/refresh токенов.
// MakerImpl — конкретная реализация с использованием секретного ключа и
// раздельных сроков жизни для двух видов токенов.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Имя издателя, проставляемое в claim iss каждого выданного токена.
const issuerName = "Gym_Helper"

var (
	// ErrExpiredToken возвращается для корректно подписанного, но просроченного токена.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken возвращается для токена с неверной подписью или структурой.
	ErrInvalidToken = errors.New("token is invalid")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает подписанный токен указанного вида для пользователя.
	GenerateToken(username string, role string, userUID string, userID int64, kind TokenKind) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает *CustomClaims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов (TTL).
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни access-токена
	refreshTTL time.Duration // Время жизни refresh-токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateToken создает JWT токен с заданными username, role и видом,
// подписывая его секретным ключом алгоритмом HS512.
//
// Время жизни определяется видом токена: accessTTL или refreshTTL.
func (j *MakerImpl) GenerateToken(username, role, userUID string, userID int64, kind TokenKind) (string, error) {
	const op = "jwt.GenerateToken"
	ttl := j.accessTTL
	if kind == KindRefresh {
		ttl = j.refreshTTL
	}
	now := time.Now()
	claims := CustomClaims{
		UserID:  userID,
		UserUID: userUID,
		Role:    role,
		Kind:    kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными, если токен корректен.
//
// Просроченный токен различим от некорректного: errors.Is(err, ErrExpiredToken).
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrExpiredToken)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims, nil
}
