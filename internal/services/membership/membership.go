// Package membership содержит бизнес-логику каталога: дисциплины и абонементы.
// Каталог — справочные данные, которые читает подписочный движок.
package membership

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

// Repository определяет методы для работы с каталогом в хранилище.
type Repository interface {
	// CreateDiscipline добавляет новую дисциплину и возвращает её ID.
	CreateDiscipline(ctx context.Context, req models.DummyDiscipline) (int64, error)
	// RemoveDisciplineWithMemberships мягко удаляет дисциплину и деактивирует её абонементы.
	RemoveDisciplineWithMemberships(ctx context.Context, id int64) error
	// ActivateDiscipline снимает пометку удаления с дисциплины.
	ActivateDiscipline(ctx context.Context, id int64) (int, error)
	// CreateMembership добавляет новый абонемент и возвращает его ID.
	CreateMembership(ctx context.Context, req models.DummyMembership) (int64, error)
	// RemoveMembership мягко удаляет абонемент.
	RemoveMembership(ctx context.Context, id int64) (int, error)
	// ActivateMembership возвращает абонемент в активное состояние.
	ActivateMembership(ctx context.Context, id int64) (int, error)
}

// Service реализует бизнес-логику каталога абонементов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateDiscipline добавляет новую дисциплину.
func (s *Service) CreateDiscipline(ctx context.Context, req models.DummyDiscipline) (int64, error) {
	id, err := s.repo.CreateDiscipline(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new discipline", slog.Int64("id", id))
	return id, nil
}

// RemoveDiscipline мягко удаляет дисциплину, каскадно деактивируя её абонементы.
func (s *Service) RemoveDiscipline(ctx context.Context, id int64) error {
	if err := s.repo.RemoveDisciplineWithMemberships(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed discipline with memberships", slog.Int64("id", id))
	return nil
}

// ActivateDiscipline снимает пометку удаления с дисциплины.
func (s *Service) ActivateDiscipline(ctx context.Context, id int64) (int, error) {
	return s.repo.ActivateDiscipline(ctx, id)
}

// CreateMembership добавляет новый абонемент.
func (s *Service) CreateMembership(ctx context.Context, req models.DummyMembership) (int64, error) {
	id, err := s.repo.CreateMembership(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new membership", slog.Int64("id", id))
	return id, nil
}

// RemoveMembership мягко удаляет абонемент.
func (s *Service) RemoveMembership(ctx context.Context, id int64) (int, error) {
	return s.repo.RemoveMembership(ctx, id)
}

// ActivateMembership возвращает абонемент в активное состояние.
func (s *Service) ActivateMembership(ctx context.Context, id int64) (int, error) {
	return s.repo.ActivateMembership(ctx, id)
}
