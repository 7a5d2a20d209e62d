package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

const subscriptionColumns = `id, client_id, discipline_id, remaining_classes, expires_at, active, created_at, updated_at, deleted_at`

func scanSubscription(row interface{ Scan(...any) error }) (*models.Subscription, error) {
	var sub models.Subscription
	var deletedAt sql.NullTime
	if err := row.Scan(&sub.ID, &sub.ClientID, &sub.DisciplineID, &sub.RemainingClasses,
		&sub.ExpiresAt, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt, &deletedAt); err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		sub.DeletedAt = &deletedAt.Time
	}
	return &sub, nil
}

// FindSubscription возвращает подписку по паре (client_id, discipline_id)
// или nil, если такой подписки нет.
func (s *Storage) FindSubscription(ctx context.Context, clientID, disciplineID int64) (*models.Subscription, error) {
	const op = "storage.FindSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE client_id = $1 AND discipline_id = $2`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, clientID, disciplineID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// CreateSubscription вставляет новую подписку и возвращает её.
func (s *Storage) CreateSubscription(ctx context.Context, clientID, disciplineID int64,
	remainingClasses int, expiresAt time.Time) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (client_id, discipline_id, remaining_classes, expires_at, active)
			  VALUES ($1, $2, $3, $4, TRUE)
			  RETURNING ` + subscriptionColumns
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query,
		clientID, disciplineID, remainingClasses, expiresAt))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// RenewSubscription продлевает подписку: добавляет занятия и переустанавливает
// срок действия от текущего момента. Продление возвращает строку в активное
// состояние независимо от того, была ли она истёкшей.
func (s *Storage) RenewSubscription(ctx context.Context, id int64,
	addClasses int, expiresAt time.Time) (*models.Subscription, error) {
	const op = "storage.RenewSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET remaining_classes = remaining_classes + $1,
			      expires_at = $2,
			      active = TRUE,
			      deleted_at = NULL,
			      updated_at = NOW()
			  WHERE id = $3
			  RETURNING ` + subscriptionColumns
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, addClasses, expiresAt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ReadSubscription возвращает подписку по её ID.
func (s *Storage) ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ListSubscriptions возвращает список всех подписок с пагинацией.
func (s *Storage) ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Subscription
	for rows.Next() {
		item, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FilterSubscriptions возвращает подписки, удовлетворяющие всем заполненным
// полям фильтра. Условия объединяются по AND.
func (s *Storage) FilterSubscriptions(ctx context.Context, f models.SubscriptionFilter) ([]*models.Subscription, error) {
	const op = "storage.FilterSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conds []string
	var args []any
	add := func(expr string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}
	if f.ClientID != nil {
		add("client_id = $%d", *f.ClientID)
	}
	if f.DisciplineID != nil {
		add("discipline_id = $%d", *f.DisciplineID)
	}
	if f.Active != nil {
		add("active = $%d", *f.Active)
	}
	if f.RemainingClasses != nil {
		add("remaining_classes = $%d", *f.RemainingClasses)
	}
	if f.ExpiresAtFrom != nil {
		add("expires_at >= $%d", *f.ExpiresAtFrom)
	}
	if f.ExpiresAtTo != nil {
		add("expires_at <= $%d", *f.ExpiresAtTo)
	}
	if f.CreatedAtFrom != nil {
		add("created_at >= $%d", *f.CreatedAtFrom)
	}
	if f.CreatedAtTo != nil {
		add("created_at <= $%d", *f.CreatedAtTo)
	}
	if f.UpdatedAtFrom != nil {
		add("updated_at >= $%d", *f.UpdatedAtFrom)
	}
	if f.UpdatedAtTo != nil {
		add("updated_at <= $%d", *f.UpdatedAtTo)
	}
	if f.DeletedAtFrom != nil {
		add("deleted_at >= $%d", *f.DeletedAtFrom)
	}
	if f.DeletedAtTo != nil {
		add("deleted_at <= $%d", *f.DeletedAtTo)
	}

	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Subscription
	for rows.Next() {
		item, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RecordAttendance отмечает посещение занятия по подписке.
//
// Вся операция выполняется одной транзакцией с блокировкой строки подписки,
// закрывая гонку между конкурентными отметками: проверка пригодности, проверка
// дубликата за календарный день, вставка записи посещения и условное
// уменьшение счётчика занятий.
//
// Непригодная подписка попутно помечается истёкшей (ленивое истечение), и эта
// пометка фиксируется даже при возврате SubscriptionInvalidError.
func (s *Storage) RecordAttendance(ctx context.Context, subscriptionID int64, now time.Time) (*models.Subscription, error) {
	const op = "storage.RecordAttendance"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE id = $1
			  FOR UPDATE`
	sub, err := scanSubscription(tx.QueryRowContext(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if reason := livenessViolation(sub, now); reason != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE subscriptions
			 SET active = FALSE, remaining_classes = 0, expires_at = $1,
			     deleted_at = $1, updated_at = $1
			 WHERE id = $2`, now, subscriptionID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: %w", op, &SubscriptionInvalidError{Reason: reason})
	}

	var alreadyAttended bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM class_attendances
			WHERE subscription_id = $1 AND attended_at::DATE = $2::DATE
		)`, subscriptionID, now).Scan(&alreadyAttended); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if alreadyAttended {
		return nil, fmt.Errorf("%s: %w", op, ErrDuplicateAttendance)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO class_attendances (subscription_id, attended_at)
		 VALUES ($1, $2)`, subscriptionID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanSubscription(tx.QueryRowContext(ctx,
		`UPDATE subscriptions
		 SET remaining_classes = remaining_classes - 1, updated_at = NOW()
		 WHERE id = $1 AND remaining_classes > 0
		 RETURNING `+subscriptionColumns, subscriptionID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// livenessViolation возвращает причину непригодности подписки или пустую строку.
func livenessViolation(sub *models.Subscription, now time.Time) string {
	switch {
	case !sub.Active:
		return "inactive"
	case sub.RemainingClasses <= 0:
		return "no remaining classes"
	case sub.ExpiresAt.Before(now):
		return "expired"
	default:
		return ""
	}
}
