// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-helper/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-helper/internal/lib/password"
	"github.com/magabrotheeeer/gym-helper/internal/models"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

var (
	// ErrInvalidCredentials возвращается при неизвестном пользователе или неверном пароле.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidTokenKind возвращается, когда предъявлен токен не того вида:
	// access вместо refresh на эндпоинте обновления и наоборот.
	ErrInvalidTokenKind = errors.New("invalid token kind")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Роль обязана входить в закрытое перечисление Admin|Trainer.
func (s *Service) Register(ctx context.Context, username, rawPassword, rawRole string) (int64, error) {
	role, err := models.ParseRole(rawRole)
	if err != nil {
		return 0, err
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, err
	}
	user := models.User{
		UID:          uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует пару JWT (access + refresh),
// оба токена несут роль и идентификаторы пользователя.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (token, refresh string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, string(user.Role), user.UID, user.ID, jwt.KindAccess)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.jwtMaker.GenerateToken(user.Username, string(user.Role), user.UID, user.ID, jwt.KindRefresh)
	if err != nil {
		return "", "", err
	}
	return token, refresh, nil
}

// Refresh проверяет refresh-токен и выдает новый access-токен с теми же
// subject, идентификаторами и ролью. Access-токен здесь не принимается.
func (s *Service) Refresh(_ context.Context, refreshToken string) (string, error) {
	const op = "auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Kind != jwt.KindRefresh {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidTokenKind)
	}
	return s.jwtMaker.GenerateToken(claims.Subject, claims.Role, claims.UserUID, claims.UserID, jwt.KindAccess)
}

// ValidateAccessToken проверяет access-токен и возвращает его claims.
// Refresh-токен на общих эндпоинтах не принимается.
func (s *Service) ValidateAccessToken(token string) (*jwt.CustomClaims, error) {
	const op = "auth.ValidateAccessToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != jwt.KindAccess {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTokenKind)
	}
	return claims, nil
}
