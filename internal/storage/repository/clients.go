package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

const clientColumns = `id, name, last_name, age, phone, active, created_at, updated_at, deleted_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	var deletedAt sql.NullTime
	if err := row.Scan(&c.ID, &c.Name, &c.LastName, &c.Age, &c.Phone, &c.Active,
		&c.CreatedAt, &c.UpdatedAt, &deletedAt); err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.Time
	}
	return &c, nil
}

// CreateClient вставляет нового клиента (active=true) и возвращает его ID.
func (s *Storage) CreateClient(ctx context.Context, req models.DummyClient) (int64, error) {
	const op = "storage.CreateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO clients (name, last_name, age, phone, active)
			  VALUES ($1, $2, $3, $4, TRUE)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		req.Name, req.LastName, req.Age, req.Phone).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadClient возвращает данные клиента по его ID.
func (s *Storage) ReadClient(ctx context.Context, id int64) (*models.Client, error) {
	const op = "storage.ReadClient"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	client, err := scanClient(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// ClientIsActive сообщает, существует ли клиент и активен ли он.
func (s *Storage) ClientIsActive(ctx context.Context, id int64) (bool, error) {
	const op = "storage.ClientIsActive"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var active bool
	query := `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND active = TRUE)`
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&active); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return active, nil
}

// ListClients возвращает список всех клиентов с пагинацией.
func (s *Storage) ListClients(ctx context.Context, limit, offset int) ([]*models.Client, error) {
	const op = "storage.ListClients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + clientColumns + `
			  FROM clients
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Client
	for rows.Next() {
		item, err := scanClient(rows)
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

// UpdateClient обновляет данные клиента по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateClient(ctx context.Context, req models.DummyClient, id int64) (int, error) {
	const op = "storage.UpdateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE clients
			  SET name = $1, last_name = $2, age = $3, phone = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query, req.Name, req.LastName, req.Age, req.Phone, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveClientWithSubscriptions мягко удаляет клиента и каскадно все его
// подписки в одной транзакции.
func (s *Storage) RemoveClientWithSubscriptions(ctx context.Context, id int64) error {
	const op = "storage.RemoveClientWithSubscriptions"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE clients
		 SET active = FALSE, deleted_at = NOW(), updated_at = NOW()
		 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE subscriptions
		 SET active = FALSE, deleted_at = NOW(), updated_at = NOW()
		 WHERE client_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ActivateClient снимает пометку удаления и возвращает клиента в активное состояние.
func (s *Storage) ActivateClient(ctx context.Context, id int64) (int, error) {
	const op = "storage.ActivateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE clients
			  SET active = TRUE, deleted_at = NULL, updated_at = NOW()
			  WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// FilterClients возвращает клиентов, удовлетворяющих всем заполненным полям
// фильтра. Условия объединяются по AND; пустой фильтр возвращает все записи.
func (s *Storage) FilterClients(ctx context.Context, f models.ClientFilter) ([]*models.Client, error) {
	const op = "storage.FilterClients"
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
	if f.Name != nil {
		add("name = $%d", *f.Name)
	}
	if f.LastName != nil {
		add("last_name = $%d", *f.LastName)
	}
	if f.Age != nil {
		add("age = $%d", *f.Age)
	}
	if f.Phone != nil {
		add("phone = $%d", *f.Phone)
	}
	if f.Active != nil {
		add("active = $%d", *f.Active)
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

	query := `SELECT ` + clientColumns + ` FROM clients`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Client
	for rows.Next() {
		item, err := scanClient(rows)
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
