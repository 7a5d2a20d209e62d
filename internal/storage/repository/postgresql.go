// Package repository реализует хранилище данных на основе PostgreSQL
// для управления клиентами, каталогом абонементов, подписками и посещениями.
// Предоставляет методы создания, чтения, обновления, мягкого удаления и
// фильтрации записей, а также работу с пользователями.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAttendance возвращается при повторной отметке посещения
	// по одной подписке в течение одного календарного дня.
	ErrDuplicateAttendance = errors.New("attendance already recorded today")
)

// SubscriptionInvalidError возвращается, когда подписка не проходит проверку
// пригодности при отметке посещения. Подписка к этому моменту уже помечена
// истёкшей (ленивое истечение материализуется при обращении).
type SubscriptionInvalidError struct {
	Reason string // "inactive", "no remaining classes" или "expired"
}

func (e *SubscriptionInvalidError) Error() string {
	return fmt.Sprintf("subscription invalid: %s", e.Reason)
}

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с доменными сущностями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL с ограничением размера пула.
func New(storageConnectionString string, maxConns int) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(maxConns)
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных: соединение живо
// и схема применена. Используется при старте приложения и в /health.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'subscriptions'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table subscriptions missing or query error: %w", err)
	}
	return nil
}
