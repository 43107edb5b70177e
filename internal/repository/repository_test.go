package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/shenikar/disaster_response_system/internal/workflow"
	"github.com/shenikar/disaster_response_system/pkg/postgres"
)

// newTestPool подключается к PostgreSQL из TEST_DATABASE_URL и применяет миграции.
// Без переменной тесты пропускаются.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	m, err := migrate.New("file://../../migrations", strings.Replace(databaseURL, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	pool, err := postgres.NewPostgresDB(context.Background(), databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func createTestUser(t *testing.T, repo service.UserRepository, role models.Role) *models.User {
	t.Helper()
	name := "user-" + uuid.NewString()[:8]
	user := &models.User{
		Username:          name,
		Email:             name + "@example.com",
		PasswordHash:      "hash",
		Role:              role,
		EmergencyContacts: []string{},
		Skills:            []string{"first aid"},
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	user := createTestUser(t, repo, models.RoleVolunteer)
	assert.NotEqual(t, uuid.Nil, user.ID)

	got, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, []string{"first aid"}, got.Skills)

	duplicate := *user
	err = repo.Create(ctx, &duplicate)
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)

	volunteers, err := repo.ListByRole(ctx, models.RoleVolunteer)
	require.NoError(t, err)
	assert.NotEmpty(t, volunteers)
}

func TestDistressSignalRepository(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	owner := createTestUser(t, NewUserRepository(pool), models.RolePublic)
	repo := NewDistressSignalRepository(pool)

	signal := &models.DistressSignal{
		UserID:   owner.ID,
		Message:  "need help",
		Location: models.Location{Latitude: 12.5, Longitude: 77.1},
		Status:   workflow.SignalActive,
	}
	require.NoError(t, repo.Create(ctx, signal))

	updated, err := repo.UpdateStatus(ctx, signal.ID, workflow.SignalResolved)
	require.NoError(t, err)
	assert.Equal(t, workflow.SignalResolved, updated.Status)
	assert.Equal(t, owner.Username, updated.User.Username)

	open, err := repo.List(ctx, models.SignalFilter{})
	require.NoError(t, err)
	for _, s := range open {
		assert.NotEqual(t, workflow.SignalResolved, s.Status)
	}

	_, err = repo.UpdateStatus(ctx, uuid.New(), workflow.SignalActive)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResourceRequestRepository_NewestFirst(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	owner := createTestUser(t, NewUserRepository(pool), models.RolePublic)
	repo := NewResourceRequestRepository(pool)

	first := &models.ResourceRequest{UserID: owner.ID, ResourceType: "water", Quantity: 10, Status: workflow.RequestPending}
	second := &models.ResourceRequest{UserID: owner.ID, ResourceType: "food", Quantity: 3, Status: workflow.RequestPending}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	updated, err := repo.UpdateStatus(ctx, first.ID, workflow.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, workflow.RequestApproved, updated.Status)

	requests, err := repo.List(ctx, models.RequestFilter{})
	require.NoError(t, err)
	for i := 1; i < len(requests); i++ {
		assert.False(t, requests[i].CreatedAt.After(requests[i-1].CreatedAt))
	}

	_, err = repo.UpdateStatus(ctx, first.ID, "Shipped")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestVolunteerTaskRepository_UpdateScopedToVolunteer(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	volunteer := createTestUser(t, users, models.RoleVolunteer)
	other := createTestUser(t, users, models.RoleVolunteer)
	assigner := createTestUser(t, users, models.RoleNGO)
	repo := NewVolunteerTaskRepository(pool)

	task := &models.VolunteerTask{
		VolunteerID: volunteer.ID,
		Description: "sort donations",
		AssignedBy:  assigner.ID,
		Status:      workflow.TaskAssigned,
	}
	require.NoError(t, repo.Create(ctx, task))

	_, err := repo.UpdateStatus(ctx, task.ID, other.ID, workflow.TaskCompleted)
	assert.ErrorIs(t, err, service.ErrNotFound)

	updated, err := repo.UpdateStatus(ctx, task.ID, volunteer.ID, workflow.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, assigner.Username, updated.Assigner.Username)

	tasks, err := repo.ListByVolunteer(ctx, volunteer.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, workflow.TaskCompleted, tasks[0].Status)
}

func TestResourceRepository(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewResourceRepository(pool)

	resource := &models.Resource{Name: "Water", Quantity: 100, Unit: "l"}
	require.NoError(t, repo.Create(ctx, resource))

	resource.Quantity = 0
	require.NoError(t, repo.Update(ctx, resource))

	require.NoError(t, repo.Delete(ctx, resource.ID))
	assert.ErrorIs(t, repo.Delete(ctx, resource.ID), service.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, resource), service.ErrNotFound)
}

func TestIncidentRepository_ListFilters(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	reporter := createTestUser(t, NewUserRepository(pool), models.RoleGovernment)
	repo := NewIncidentRepository(pool)

	incident := &models.Incident{
		Category:    "Storm",
		Severity:    "Medium",
		Description: "Roof damage across the district",
		AssignTo:    []string{"Public Works"},
		Attachments: []string{"/uploads/x.jpg"},
		ReportedBy:  reporter.ID,
		Status:      workflow.IncidentReported,
	}
	require.NoError(t, repo.Create(ctx, incident))

	incidents, err := repo.List(ctx, models.IncidentFilter{Category: "Storm", Severity: "Medium"})
	require.NoError(t, err)
	found := false
	for _, i := range incidents {
		assert.Equal(t, "Storm", i.Category)
		if i.ID == incident.ID {
			found = true
			assert.Equal(t, []string{"Public Works"}, i.AssignTo)
			assert.Equal(t, reporter.Username, i.Reporter.Username)
		}
	}
	assert.True(t, found)
}
