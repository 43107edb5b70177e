package models

// Location - пара координат, принимаемая как есть, без проверки диапазонов
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
