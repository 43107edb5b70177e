package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentDescriptionMinLength - минимальная длина описания инцидента
const IncidentDescriptionMinLength = 10

var (
	IncidentCategories = []string{"Flood", "Earthquake", "Fire", "Storm", "Other"}
	IncidentSeverities = []string{"Low", "Medium", "High"}
	Departments        = []string{
		"Emergency Services",
		"Public Works",
		"Environmental Agency",
		"Health Department",
		"Law Enforcement",
	}
)

// Incident - отчет об инциденте, создаваемый ролями government/ngo
type Incident struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	AssignTo    []string  `json:"assignTo"`
	Location    Location  `json:"location"`
	Attachments []string  `json:"attachments"`
	ReportedBy  uuid.UUID `json:"reportedBy"`
	Reporter    *UserRef  `json:"reporter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type IncidentFilter struct {
	Category string
	Severity string
	Status   string
}

// IsDepartment проверяет, что отдел входит в фиксированный список
func IsDepartment(name string) bool {
	return contains(Departments, name)
}

func IsIncidentCategory(name string) bool {
	return contains(IncidentCategories, name)
}

func IsIncidentSeverity(name string) bool {
	return contains(IncidentSeverities, name)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
