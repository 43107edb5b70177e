package models

import "time"

// Названия событий канала реального времени
const (
	EventNewSOS             = "newSOS"
	EventNewResourceRequest = "newResourceRequest"
)

// Events - все события, на которые может подписаться клиент
var Events = []string{EventNewSOS, EventNewResourceRequest}

// Event - событие о создании записи, рассылаемое подписчикам
type Event struct {
	Name      string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}
