// Package subscription реализует подписочный движок: оформление и продление
// абонементов, списание занятий и учёт посещений.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-helper/internal/lib/sl"
	"github.com/magabrotheeeer/gym-helper/internal/models"
	"github.com/magabrotheeeer/gym-helper/internal/rabbitmq"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

// ErrInvalidReference возвращается, когда подписка ссылается на удалённого
// клиента или неактивный абонемент.
var ErrInvalidReference = errors.New("invalid reference")

const cacheTTL = 5 * time.Minute

// Repository определяет методы хранилища, нужные подписочному движку.
type Repository interface {
	// ClientIsActive сообщает, существует ли активный клиент с данным ID.
	ClientIsActive(ctx context.Context, id int64) (bool, error)
	// ReadMembership возвращает абонемент каталога по ID.
	ReadMembership(ctx context.Context, id int64) (*models.Membership, error)
	// FindSubscription ищет подписку клиента на дисциплину, nil без ошибки — не найдена.
	FindSubscription(ctx context.Context, clientID, disciplineID int64) (*models.Subscription, error)
	// CreateSubscription вставляет новую подписку и возвращает её.
	CreateSubscription(ctx context.Context, clientID, disciplineID int64,
		remainingClasses int, expiresAt time.Time) (*models.Subscription, error)
	// RenewSubscription добавляет занятия и переустанавливает срок действия.
	RenewSubscription(ctx context.Context, id int64,
		addClasses int, expiresAt time.Time) (*models.Subscription, error)
	// ReadSubscription возвращает подписку по ID.
	ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	// ListSubscriptions возвращает список подписок с пагинацией.
	ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
	// FilterSubscriptions возвращает подписки по фильтру.
	FilterSubscriptions(ctx context.Context, f models.SubscriptionFilter) ([]*models.Subscription, error)
	// RecordAttendance атомарно регистрирует посещение и списывает занятие.
	RecordAttendance(ctx context.Context, subscriptionID int64, now time.Time) (*models.Subscription, error)
}

// Cache определяет методы кеша для подписок.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// EventPublisher публикует события жизненного цикла подписок.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Service реализует бизнес-логику подписочного движка.
type Service struct {
	repo      Repository
	cache     Cache
	publisher EventPublisher
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, publisher EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

func subscriptionCacheKey(id int64) string {
	return fmt.Sprintf("subscription:%d", id)
}

// Subscribe оформляет абонемент клиенту: если подписки на дисциплину абонемента
// ещё нет — создаёт новую, иначе продлевает существующую, прибавляя занятия
// и переустанавливая срок действия от текущего момента. Возвращает подписку
// и признак того, была ли она создана (false — продлена).
func (s *Service) Subscribe(ctx context.Context, req models.DummySubscription) (*models.Subscription, bool, error) {
	const op = "subscription.Subscribe"

	active, err := s.repo.ClientIsActive(ctx, req.ClientID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !active {
		return nil, false, fmt.Errorf("%s: client %d: %w", op, req.ClientID, ErrInvalidReference)
	}

	membership, err := s.repo.ReadMembership(ctx, req.MembershipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, fmt.Errorf("%s: membership %d: %w", op, req.MembershipID, ErrInvalidReference)
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !membership.Active {
		return nil, false, fmt.Errorf("%s: membership %d: %w", op, req.MembershipID, ErrInvalidReference)
	}

	expiresAt := time.Now().AddDate(0, 0, membership.DurationDays)

	existing, err := s.repo.FindSubscription(ctx, req.ClientID, membership.DisciplineID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if existing == nil {
		sub, err := s.repo.CreateSubscription(ctx, req.ClientID, membership.DisciplineID,
			membership.TotalClasses, expiresAt)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("created new subscription",
			slog.Int64("id", sub.ID),
			slog.Int64("client_id", sub.ClientID))
		s.publishEvent(rabbitmq.KeySubscriptionCreated, sub)
		return sub, true, nil
	}

	sub, err := s.repo.RenewSubscription(ctx, existing.ID, membership.TotalClasses, expiresAt)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("renewed subscription",
		slog.Int64("id", sub.ID),
		slog.Int64("client_id", sub.ClientID))
	s.invalidateCache(sub.ID)
	s.publishEvent(rabbitmq.KeySubscriptionRenewed, sub)
	return sub, false, nil
}

// RecordAttendance регистрирует посещение занятия по подписке. Повторное
// посещение в тот же календарный день отклоняется, у недействительной
// подписки сначала материализуется истечение.
func (s *Service) RecordAttendance(ctx context.Context, subscriptionID int64) (*models.Subscription, error) {
	const op = "subscription.RecordAttendance"

	sub, err := s.repo.RecordAttendance(ctx, subscriptionID, time.Now())
	if err != nil {
		var invalidErr *repository.SubscriptionInvalidError
		if errors.As(err, &invalidErr) {
			s.invalidateCache(subscriptionID)
			s.publishEvent(rabbitmq.KeySubscriptionExpired, map[string]any{
				"subscription_id": subscriptionID,
				"reason":          invalidErr.Reason,
			})
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("recorded attendance",
		slog.Int64("subscription_id", sub.ID),
		slog.Int("remaining_classes", sub.RemainingClasses))
	s.invalidateCache(sub.ID)
	s.publishEvent(rabbitmq.KeyAttendanceRecorded, sub)
	return sub, nil
}

// Read возвращает подписку по ID, используя кеш.
func (s *Service) Read(ctx context.Context, id int64) (*models.Subscription, error) {
	key := subscriptionCacheKey(id)

	var cached models.Subscription
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	sub, err := s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, sub, cacheTTL); err != nil {
		s.log.Warn("failed to save subscription to cache", sl.Err(err))
	}
	return sub, nil
}

// List возвращает список подписок с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, limit, offset)
}

// Filter возвращает подписки, удовлетворяющие всем заполненным полям фильтра.
func (s *Service) Filter(ctx context.Context, f models.SubscriptionFilter) ([]*models.Subscription, error) {
	return s.repo.FilterSubscriptions(ctx, f)
}

func (s *Service) invalidateCache(id int64) {
	if err := s.cache.Invalidate(subscriptionCacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate subscription cache", sl.Err(err))
	}
}

// publishEvent отправляет событие в брокер. Ошибка публикации не прерывает
// операцию, уже зафиксированную в базе.
func (s *Service) publishEvent(routingKey string, message any) {
	if err := s.publisher.Publish(routingKey, message); err != nil {
		s.log.Error("failed to publish event",
			slog.String("routing_key", routingKey), sl.Err(err))
	}
}
