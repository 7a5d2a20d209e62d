package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-helper/internal/models"
	"github.com/magabrotheeeer/gym-helper/internal/rabbitmq"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ClientIsActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ReadMembership(ctx context.Context, id int64) (*models.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}
func (m *RepoMock) FindSubscription(ctx context.Context, clientID, disciplineID int64) (*models.Subscription, error) {
	args := m.Called(ctx, clientID, disciplineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) CreateSubscription(ctx context.Context, clientID, disciplineID int64,
	remainingClasses int, expiresAt time.Time) (*models.Subscription, error) {
	args := m.Called(ctx, clientID, disciplineID, remainingClasses, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) RenewSubscription(ctx context.Context, id int64,
	addClasses int, expiresAt time.Time) (*models.Subscription, error) {
	args := m.Called(ctx, id, addClasses, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}
func (m *RepoMock) FilterSubscriptions(ctx context.Context, f models.SubscriptionFilter) ([]*models.Subscription, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}
func (m *RepoMock) RecordAttendance(ctx context.Context, subscriptionID int64, now time.Time) (*models.Subscription, error) {
	args := m.Called(ctx, subscriptionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(routingKey string, message any) error {
	return m.Called(routingKey, message).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func activeMembership() *models.Membership {
	return &models.Membership{
		ID:           10,
		Name:         "CrossFit 12",
		Price:        5000,
		DisciplineID: 3,
		TotalClasses: 12,
		DurationDays: 30,
		Active:       true,
	}
}

func TestService_Subscribe_CreatesNew(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	publisher := new(PublisherMock)
	service := New(repo, cache, publisher, newNoopLogger())

	created := &models.Subscription{ID: 1, ClientID: 5, DisciplineID: 3, RemainingClasses: 12, Active: true}

	repo.On("ClientIsActive", mock.Anything, int64(5)).Return(true, nil).Once()
	repo.On("ReadMembership", mock.Anything, int64(10)).Return(activeMembership(), nil).Once()
	repo.On("FindSubscription", mock.Anything, int64(5), int64(3)).Return(nil, nil).Once()
	repo.On("CreateSubscription", mock.Anything, int64(5), int64(3), 12, mock.AnythingOfType("time.Time")).
		Return(created, nil).Once()
	publisher.On("Publish", rabbitmq.KeySubscriptionCreated, created).Return(nil).Once()

	sub, isNew, err := service.Subscribe(context.Background(), models.DummySubscription{ClientID: 5, MembershipID: 10})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, created, sub)

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_Subscribe_RenewsExisting(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	publisher := new(PublisherMock)
	service := New(repo, cache, publisher, newNoopLogger())

	existing := &models.Subscription{ID: 2, ClientID: 5, DisciplineID: 3, RemainingClasses: 1, Active: true}
	renewed := &models.Subscription{ID: 2, ClientID: 5, DisciplineID: 3, RemainingClasses: 13, Active: true}

	repo.On("ClientIsActive", mock.Anything, int64(5)).Return(true, nil).Once()
	repo.On("ReadMembership", mock.Anything, int64(10)).Return(activeMembership(), nil).Once()
	repo.On("FindSubscription", mock.Anything, int64(5), int64(3)).Return(existing, nil).Once()
	repo.On("RenewSubscription", mock.Anything, int64(2), 12, mock.AnythingOfType("time.Time")).
		Return(renewed, nil).Once()
	cache.On("Invalidate", "subscription:2").Return(nil).Once()
	publisher.On("Publish", rabbitmq.KeySubscriptionRenewed, renewed).Return(nil).Once()

	sub, isNew, err := service.Subscribe(context.Background(), models.DummySubscription{ClientID: 5, MembershipID: 10})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, 13, sub.RemainingClasses)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_Subscribe_InvalidReferences(t *testing.T) {
	inactive := activeMembership()
	inactive.Active = false

	tests := []struct {
		name       string
		setupMocks func(repo *RepoMock)
	}{
		{
			name: "inactive client",
			setupMocks: func(repo *RepoMock) {
				repo.On("ClientIsActive", mock.Anything, int64(5)).Return(false, nil).Once()
			},
		},
		{
			name: "missing membership",
			setupMocks: func(repo *RepoMock) {
				repo.On("ClientIsActive", mock.Anything, int64(5)).Return(true, nil).Once()
				repo.On("ReadMembership", mock.Anything, int64(10)).Return(nil, repository.ErrNotFound).Once()
			},
		},
		{
			name: "inactive membership",
			setupMocks: func(repo *RepoMock) {
				repo.On("ClientIsActive", mock.Anything, int64(5)).Return(true, nil).Once()
				repo.On("ReadMembership", mock.Anything, int64(10)).Return(inactive, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			service := New(repo, new(CacheMock), new(PublisherMock), newNoopLogger())
			tt.setupMocks(repo)

			_, _, err := service.Subscribe(context.Background(), models.DummySubscription{ClientID: 5, MembershipID: 10})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReference)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_RecordAttendance(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	publisher := new(PublisherMock)
	service := New(repo, cache, publisher, newNoopLogger())

	updated := &models.Subscription{ID: 3, ClientID: 5, DisciplineID: 3, RemainingClasses: 11, Active: true}

	repo.On("RecordAttendance", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).
		Return(updated, nil).Once()
	cache.On("Invalidate", "subscription:3").Return(nil).Once()
	publisher.On("Publish", rabbitmq.KeyAttendanceRecorded, updated).Return(nil).Once()

	sub, err := service.RecordAttendance(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 11, sub.RemainingClasses)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_RecordAttendance_InvalidSubscription(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	publisher := new(PublisherMock)
	service := New(repo, cache, publisher, newNoopLogger())

	invalidErr := &repository.SubscriptionInvalidError{Reason: "expired"}
	repo.On("RecordAttendance", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).
		Return(nil, invalidErr).Once()
	cache.On("Invalidate", "subscription:3").Return(nil).Once()
	publisher.On("Publish", rabbitmq.KeySubscriptionExpired, mock.Anything).Return(nil).Once()

	_, err := service.RecordAttendance(context.Background(), 3)
	require.Error(t, err)

	var target *repository.SubscriptionInvalidError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "expired", target.Reason)

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_RecordAttendance_Duplicate(t *testing.T) {
	repo := new(RepoMock)
	service := New(repo, new(CacheMock), new(PublisherMock), newNoopLogger())

	repo.On("RecordAttendance", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrDuplicateAttendance).Once()

	_, err := service.RecordAttendance(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateAttendance)
}

func TestService_Read_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	service := New(repo, cache, new(PublisherMock), newNoopLogger())

	cache.On("Get", "subscription:4", mock.Anything).
		Run(func(args mock.Arguments) {
			sub := args.Get(1).(*models.Subscription)
			sub.ID = 4
			sub.RemainingClasses = 8
		}).
		Return(true, nil).Once()

	sub, err := service.Read(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sub.ID)
	assert.Equal(t, 8, sub.RemainingClasses)

	repo.AssertNotCalled(t, "ReadSubscription")
	cache.AssertExpectations(t)
}

func TestService_Read_CacheMiss(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	service := New(repo, cache, new(PublisherMock), newNoopLogger())

	stored := &models.Subscription{ID: 4, RemainingClasses: 8}

	cache.On("Get", "subscription:4", mock.Anything).Return(false, nil).Once()
	repo.On("ReadSubscription", mock.Anything, int64(4)).Return(stored, nil).Once()
	cache.On("Set", "subscription:4", stored, cacheTTL).Return(nil).Once()

	sub, err := service.Read(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, stored, sub)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
