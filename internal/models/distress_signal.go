package models

import (
	"time"

	"github.com/google/uuid"
)

// DistressSignal - сигнал SOS, созданный пользователем с ролью public
type DistressSignal struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	User      *UserRef  `json:"user,omitempty"`
	Message   string    `json:"message"`
	Location  Location  `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignalFilter - фильтр списка сигналов. Без статуса возвращаются все нерешенные сигналы.
type SignalFilter struct {
	Status string
}
