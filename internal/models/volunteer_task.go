package models

import (
	"time"

	"github.com/google/uuid"
)

type VolunteerTask struct {
	ID          uuid.UUID `json:"id"`
	VolunteerID uuid.UUID `json:"volunteerId"`
	Description string    `json:"description"`
	AssignedBy  uuid.UUID `json:"assignedBy"`
	Assigner    *UserRef  `json:"assigner,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
