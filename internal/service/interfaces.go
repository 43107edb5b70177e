package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// UserRepository определяет контракт хранилища учетных записей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
}

type DistressSignalRepository interface {
	Create(ctx context.Context, signal *models.DistressSignal) error
	List(ctx context.Context, filter models.SignalFilter) ([]*models.DistressSignal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.DistressSignal, error)
}

type ResourceRequestRepository interface {
	Create(ctx context.Context, request *models.ResourceRequest) error
	List(ctx context.Context, filter models.RequestFilter) ([]*models.ResourceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ResourceRequest, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	List(ctx context.Context) ([]*models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VolunteerTaskRepository interface {
	Create(ctx context.Context, task *models.VolunteerTask) error
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.VolunteerTask, error)
	UpdateStatus(ctx context.Context, id, volunteerID uuid.UUID, status string) (*models.VolunteerTask, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error)
}

// UpstreamCache - кэш ответов внешних сервисов. Промах возвращает (nil, nil).
type UpstreamCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// WeatherClient и NewsClient - внешние сервисы погоды и новостей
type WeatherClient interface {
	Current(ctx context.Context, latitude, longitude string) ([]byte, error)
}

type NewsClient interface {
	Articles(ctx context.Context, locality string) ([]byte, error)
}

// EventPublisher рассылает события о новых записях. Доставка не гарантируется.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}
