package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

// CreateDiscipline вставляет новую дисциплину и возвращает её ID.
func (s *Storage) CreateDiscipline(ctx context.Context, req models.DummyDiscipline) (int64, error) {
	const op = "storage.CreateDiscipline"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO disciplines (name, description)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query, req.Name, req.Description).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveDisciplineWithMemberships мягко удаляет дисциплину и каскадно
// деактивирует все её абонементы в одной транзакции.
func (s *Storage) RemoveDisciplineWithMemberships(ctx context.Context, id int64) error {
	const op = "storage.RemoveDisciplineWithMemberships"
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
		`UPDATE disciplines
		 SET deleted_at = NOW(), updated_at = NOW()
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
		`UPDATE memberships
		 SET active = FALSE, deleted_at = NOW(), updated_at = NOW()
		 WHERE discipline_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ActivateDiscipline снимает пометку удаления с дисциплины.
func (s *Storage) ActivateDiscipline(ctx context.Context, id int64) (int, error) {
	const op = "storage.ActivateDiscipline"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE disciplines
		 SET deleted_at = NULL, updated_at = NOW()
		 WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CreateMembership вставляет новый абонемент (active=true) и возвращает его ID.
func (s *Storage) CreateMembership(ctx context.Context, req models.DummyMembership) (int64, error) {
	const op = "storage.CreateMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO memberships (name, description, price, discipline_id, total_classes, duration_days, active)
			  VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query,
		req.Name, req.Description, req.Price, req.DisciplineID,
		req.TotalClasses, req.DurationDays).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMembership возвращает абонемент по его ID.
func (s *Storage) ReadMembership(ctx context.Context, id int64) (*models.Membership, error) {
	const op = "storage.ReadMembership"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, discipline_id, total_classes,
			      duration_days, active, created_at, updated_at, deleted_at
			  FROM memberships
			  WHERE id = $1`
	var m models.Membership
	var description sql.NullString
	var deletedAt sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &description,
		&m.Price, &m.DisciplineID, &m.TotalClasses, &m.DurationDays, &m.Active,
		&m.CreatedAt, &m.UpdatedAt, &deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description.Valid {
		m.Description = &description.String
	}
	if deletedAt.Valid {
		m.DeletedAt = &deletedAt.Time
	}
	return &m, nil
}

// RemoveMembership мягко удаляет абонемент и возвращает количество изменённых строк.
func (s *Storage) RemoveMembership(ctx context.Context, id int64) (int, error) {
	const op = "storage.RemoveMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE memberships
		 SET active = FALSE, deleted_at = NOW(), updated_at = NOW()
		 WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ActivateMembership возвращает абонемент в активное состояние.
func (s *Storage) ActivateMembership(ctx context.Context, id int64) (int, error) {
	const op = "storage.ActivateMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE memberships
		 SET active = TRUE, deleted_at = NULL, updated_at = NOW()
		 WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
