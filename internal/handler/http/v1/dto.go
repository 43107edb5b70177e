package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// SignupRequest DTO для регистрации
// @Description DTO для регистрации
type SignupRequest struct {
	Username          string   `json:"username" validate:"required,min=3,max=64"`
	Password          string   `json:"password" validate:"required,max=72"`
	Email             string   `json:"email" validate:"required,email"`
	Role              string   `json:"role" validate:"omitempty,oneof=public volunteer government ngo"`
	Phone             string   `json:"phone" validate:"omitempty,max=32"`
	EmergencyContacts []string `json:"emergencyContacts" validate:"omitempty,dive,max=64"`
	Locality          string   `json:"locality" validate:"omitempty,max=128"`
	Skills            []string `json:"skills" validate:"omitempty,dive,max=64"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с токеном сессии
// @Description DTO с токеном сессии
type LoginResponse struct {
	Token     string      `json:"token"`
	Role      models.Role `json:"role"`
	Username  string      `json:"username"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// UserResponse DTO учетной записи (без хэша пароля)
// @Description DTO учетной записи
type UserResponse struct {
	ID                uuid.UUID   `json:"id"`
	Username          string      `json:"username"`
	Email             string      `json:"email"`
	Role              models.Role `json:"role"`
	Phone             string      `json:"phone"`
	EmergencyContacts []string    `json:"emergencyContacts"`
	Locality          string      `json:"locality"`
	Skills            []string    `json:"skills"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// VolunteerResponse - проекция волонтера для справочника
// @Description Проекция волонтера
type VolunteerResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Phone    string    `json:"phone"`
	Locality string    `json:"locality"`
	Skills   []string  `json:"skills"`
}

// LocationDTO - координаты без проверки диапазонов.
// Указатели отличают отсутствующее значение от нуля.
type LocationDTO struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// CreateDistressSignalRequest DTO для сигнала SOS
// @Description DTO для сигнала SOS
type CreateDistressSignalRequest struct {
	Message  string       `json:"message" validate:"max=1000"`
	Location *LocationDTO `json:"location" validate:"required"`
}

// CreateResourceRequestRequest DTO для запроса ресурсов
// @Description DTO для запроса ресурсов
type CreateResourceRequestRequest struct {
	ResourceType string       `json:"resourceType" validate:"required,max=128"`
	Quantity     int          `json:"quantity" validate:"required,gt=0"`
	Location     *LocationDTO `json:"location" validate:"required"`
}

// ResourceRequest DTO для создания и замены ресурса на складе
// @Description DTO ресурса
type ResourceRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Unit     string `json:"unit" validate:"max=32"`
}

// AssignTaskRequest DTO для назначения задачи волонтеру
// @Description DTO задачи волонтера
type AssignTaskRequest struct {
	VolunteerID string `json:"volunteerId" validate:"required,uuid"`
	Description string `json:"description" validate:"required,max=2000"`
}

// UpdateStatusRequest DTO для смены статуса любой записи
// @Description DTO смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateIncidentRequest - поля multipart-формы отчета об инциденте
// @Description Поля формы отчета об инциденте
type CreateIncidentRequest struct {
	Category    string   `form:"category" validate:"required,oneof=Flood Earthquake Fire Storm Other"`
	Severity    string   `form:"severity" validate:"required,oneof=Low Medium High"`
	Description string   `form:"description" validate:"required,min=10"`
	AssignTo    []string `form:"assignTo" validate:"required,min=1,dive,department"`
	Latitude    *float64 `form:"location.latitude" validate:"required"`
	Longitude   *float64 `form:"location.longitude" validate:"required"`
}
