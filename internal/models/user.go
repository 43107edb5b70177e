package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              Role      `json:"role"`
	Phone             string    `json:"phone,omitempty"`
	EmergencyContacts []string  `json:"emergencyContacts"`
	Locality          string    `json:"locality,omitempty"`
	Skills            []string  `json:"skills"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserRef - денормализованная ссылка на пользователя в списках
type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Session - результат успешного входа
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}
