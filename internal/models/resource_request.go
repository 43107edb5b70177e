package models

import (
	"time"

	"github.com/google/uuid"
)

type ResourceRequest struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	User         *UserRef  `json:"user,omitempty"`
	ResourceType string    `json:"resourceType"`
	Quantity     int       `json:"quantity"`
	Location     Location  `json:"location"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RequestFilter struct {
	Status string
}
