// Package client содержит бизнес-логику для управления клиентами зала.
package client

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/gym-helper/internal/models"
)

// Repository определяет методы для работы с клиентами в хранилище.
type Repository interface {
	// CreateClient добавляет нового клиента и возвращает его ID.
	CreateClient(ctx context.Context, req models.DummyClient) (int64, error)
	// ReadClient возвращает клиента по ID.
	ReadClient(ctx context.Context, id int64) (*models.Client, error)
	// ListClients возвращает список клиентов с пагинацией.
	ListClients(ctx context.Context, limit, offset int) ([]*models.Client, error)
	// UpdateClient обновляет данные клиента и возвращает количество изменённых строк.
	UpdateClient(ctx context.Context, req models.DummyClient, id int64) (int, error)
	// RemoveClientWithSubscriptions мягко удаляет клиента и его подписки.
	RemoveClientWithSubscriptions(ctx context.Context, id int64) error
	// ActivateClient возвращает клиента в активное состояние.
	ActivateClient(ctx context.Context, id int64) (int, error)
	// FilterClients возвращает клиентов по фильтру.
	FilterClients(ctx context.Context, f models.ClientFilter) ([]*models.Client, error)
}

// Service реализует бизнес-логику работы с клиентами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create регистрирует нового клиента и возвращает его ID.
func (s *Service) Create(ctx context.Context, req models.DummyClient) (int64, error) {
	id, err := s.repo.CreateClient(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new client", slog.Int64("id", id))
	return id, nil
}

// Read возвращает клиента по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.Client, error) {
	return s.repo.ReadClient(ctx, id)
}

// List возвращает список клиентов с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Client, error) {
	return s.repo.ListClients(ctx, limit, offset)
}

// Update обновляет данные клиента и возвращает количество изменённых строк.
func (s *Service) Update(ctx context.Context, req models.DummyClient, id int64) (int, error) {
	count, err := s.repo.UpdateClient(ctx, req, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated client", slog.Int64("id", id))
	return count, nil
}

// Remove мягко удаляет клиента и каскадно все его подписки.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.RemoveClientWithSubscriptions(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed client with subscriptions", slog.Int64("id", id))
	return nil
}

// Activate возвращает клиента в активное состояние.
func (s *Service) Activate(ctx context.Context, id int64) (int, error) {
	count, err := s.repo.ActivateClient(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("activated client", slog.Int64("id", id))
	return count, nil
}

// Filter возвращает клиентов, удовлетворяющих всем заполненным полям фильтра.
func (s *Service) Filter(ctx context.Context, f models.ClientFilter) ([]*models.Client, error) {
	return s.repo.FilterClients(ctx, f)
}
