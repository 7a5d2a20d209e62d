package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/gym-helper/internal/migrations"
	"github.com/magabrotheeeer/gym-helper/internal/models"
)

func setupTestDb(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(connStr, 10)
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			storage.DB.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}

func createTestClient(t *testing.T, s *Storage) int64 {
	t.Helper()
	id, err := s.CreateClient(context.Background(), models.DummyClient{
		Name:     "Ivan",
		LastName: "Petrov",
		Age:      30,
		Phone:    "+79001234567",
	})
	require.NoError(t, err)
	return id
}

func createTestCatalog(t *testing.T, s *Storage) (disciplineID, membershipID int64) {
	t.Helper()
	ctx := context.Background()

	disciplineID, err := s.CreateDiscipline(ctx, models.DummyDiscipline{Name: "CrossFit"})
	require.NoError(t, err)

	membershipID, err = s.CreateMembership(ctx, models.DummyMembership{
		Name:         "CrossFit 12",
		Price:        5000,
		DisciplineID: disciplineID,
		TotalClasses: 12,
		DurationDays: 30,
	})
	require.NoError(t, err)
	return disciplineID, membershipID
}

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	uid := uuid.NewString()
	id, err := storage.RegisterUser(ctx, models.User{
		UID:          uid,
		Username:     "admin1",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	user, err := storage.GetUserByUsername(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, uid, user.UID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = storage.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_CheckDatabaseReady(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()

	require.NoError(t, storage.CheckDatabaseReady(context.Background()))
}

func TestStorage_ClientLifecycle(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	id := createTestClient(t, storage)

	client, err := storage.ReadClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", client.Name)
	assert.True(t, client.Active)
	assert.Nil(t, client.DeletedAt)

	active, err := storage.ClientIsActive(ctx, id)
	require.NoError(t, err)
	assert.True(t, active)

	count, err := storage.UpdateClient(ctx, models.DummyClient{
		Name:     "Ivan",
		LastName: "Sidorov",
		Age:      31,
		Phone:    "+79001234567",
	}, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, storage.RemoveClientWithSubscriptions(ctx, id))

	client, err = storage.ReadClient(ctx, id)
	require.NoError(t, err)
	assert.False(t, client.Active)
	assert.NotNil(t, client.DeletedAt)

	active, err = storage.ClientIsActive(ctx, id)
	require.NoError(t, err)
	assert.False(t, active)

	count, err = storage.ActivateClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	active, err = storage.ClientIsActive(ctx, id)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestStorage_RemoveClientCascadesToSubscriptions(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	clientID := createTestClient(t, storage)
	disciplineID, _ := createTestCatalog(t, storage)

	sub, err := storage.CreateSubscription(ctx, clientID, disciplineID, 12, time.Now().AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.True(t, sub.Active)

	require.NoError(t, storage.RemoveClientWithSubscriptions(ctx, clientID))

	got, err := storage.ReadSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.NotNil(t, got.DeletedAt)
}

func TestStorage_RemoveMissingClient(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()

	err := storage.RemoveClientWithSubscriptions(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_DisciplineRemoveCascadesToMemberships(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	disciplineID, membershipID := createTestCatalog(t, storage)

	require.NoError(t, storage.RemoveDisciplineWithMemberships(ctx, disciplineID))

	membership, err := storage.ReadMembership(ctx, membershipID)
	require.NoError(t, err)
	assert.False(t, membership.Active)

	count, err := storage.ActivateDiscipline(ctx, disciplineID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_SubscriptionCreateAndRenew(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	clientID := createTestClient(t, storage)
	disciplineID, _ := createTestCatalog(t, storage)

	found, err := storage.FindSubscription(ctx, clientID, disciplineID)
	require.NoError(t, err)
	assert.Nil(t, found)

	expires := time.Now().AddDate(0, 0, 30)
	sub, err := storage.CreateSubscription(ctx, clientID, disciplineID, 12, expires)
	require.NoError(t, err)
	assert.Equal(t, 12, sub.RemainingClasses)

	found, err = storage.FindSubscription(ctx, clientID, disciplineID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, sub.ID, found.ID)

	newExpires := time.Now().AddDate(0, 0, 60)
	renewed, err := storage.RenewSubscription(ctx, sub.ID, 12, newExpires)
	require.NoError(t, err)
	assert.Equal(t, 24, renewed.RemainingClasses)
	assert.True(t, renewed.Active)
	assert.True(t, renewed.ExpiresAt.After(sub.ExpiresAt))
}

func TestStorage_RecordAttendance(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	clientID := createTestClient(t, storage)
	disciplineID, _ := createTestCatalog(t, storage)

	sub, err := storage.CreateSubscription(ctx, clientID, disciplineID, 2, time.Now().AddDate(0, 0, 30))
	require.NoError(t, err)

	now := time.Now()
	updated, err := storage.RecordAttendance(ctx, sub.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.RemainingClasses)

	// Повторная отметка в тот же день
	_, err = storage.RecordAttendance(ctx, sub.ID, now)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	// Следующий день списывает последнее занятие
	updated, err = storage.RecordAttendance(ctx, sub.ID, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, updated.RemainingClasses)

	// Занятий не осталось: подписка материализуется как истёкшая
	_, err = storage.RecordAttendance(ctx, sub.ID, now.AddDate(0, 0, 2))
	var invalidErr *SubscriptionInvalidError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, "no remaining classes", invalidErr.Reason)

	got, err := storage.ReadSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestStorage_RecordAttendance_ExpiredSubscription(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	clientID := createTestClient(t, storage)
	disciplineID, _ := createTestCatalog(t, storage)

	sub, err := storage.CreateSubscription(ctx, clientID, disciplineID, 5, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)

	_, err = storage.RecordAttendance(ctx, sub.ID, time.Now())
	var invalidErr *SubscriptionInvalidError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, "expired", invalidErr.Reason)

	got, err := storage.ReadSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, 0, got.RemainingClasses)
}

func TestStorage_RecordAttendance_MissingSubscription(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()

	_, err := storage.RecordAttendance(context.Background(), 9999, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_FilterClients(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.CreateClient(ctx, models.DummyClient{Name: "Anna", LastName: "Ivanova", Age: 25, Phone: "+79000000001"})
	require.NoError(t, err)
	_, err = storage.CreateClient(ctx, models.DummyClient{Name: "Boris", LastName: "Ivanov", Age: 40, Phone: "+79000000002"})
	require.NoError(t, err)

	name := "Anna"
	clients, err := storage.FilterClients(ctx, models.ClientFilter{Name: &name})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Anna", clients[0].Name)

	age := 40
	active := true
	clients, err = storage.FilterClients(ctx, models.ClientFilter{Age: &age, Active: &active})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Boris", clients[0].Name)

	// Пустой фильтр возвращает всех
	clients, err = storage.FilterClients(ctx, models.ClientFilter{})
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestStorage_FilterSubscriptions(t *testing.T) {
	storage, cleanup := setupTestDb(t)
	defer cleanup()
	ctx := context.Background()

	clientID := createTestClient(t, storage)
	disciplineID, _ := createTestCatalog(t, storage)

	sub, err := storage.CreateSubscription(ctx, clientID, disciplineID, 12, time.Now().AddDate(0, 0, 30))
	require.NoError(t, err)

	subs, err := storage.FilterSubscriptions(ctx, models.SubscriptionFilter{ClientID: &clientID})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)

	otherClient := clientID + 100
	subs, err = storage.FilterSubscriptions(ctx, models.SubscriptionFilter{ClientID: &otherClient})
	require.NoError(t, err)
	assert.Empty(t, subs)
}
