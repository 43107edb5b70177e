package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

// IncidentService определяет контракт работы с отчетами об инцидентах
type IncidentService interface {
	Report(ctx context.Context, caller models.Identity, incident *models.Incident) error
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error)
}

type incidentService struct {
	repo           IncidentRepository
	logger         *logrus.Logger
	workflow       workflow.Workflow
	maxAttachments int
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, maxAttachments int) IncidentService {
	return &incidentService{
		repo:           repo,
		logger:         logger,
		workflow:       workflow.For(workflow.KindIncident),
		maxAttachments: maxAttachments,
	}
}

// Report сохраняет отчет. Вложения к этому моменту уже записаны на диск.
func (s *incidentService) Report(ctx context.Context, caller models.Identity, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "Report",
		"category": incident.Category,
		"severity": incident.Severity,
	})
	log.Info("Attempting to report an incident")

	reporterID, err := callerID(caller)
	if err != nil {
		return err
	}
	if err := s.validate(incident); err != nil {
		return err
	}
	incident.ReportedBy = reporterID
	incident.Status = s.workflow.Default()

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

func (s *incidentService) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Category != "" && !models.IsIncidentCategory(filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, filter.Category)
	}
	if filter.Severity != "" && !models.IsIncidentSeverity(filter.Severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrValidation, filter.Severity)
	}
	if filter.Status != "" {
		if err := s.workflow.Validate(filter.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "List").Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

func (s *incidentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})

	if err := s.workflow.Validate(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	incident, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident status updated")
	return incident, nil
}

func (s *incidentService) validate(incident *models.Incident) error {
	if !models.IsIncidentCategory(incident.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, incident.Category)
	}
	if !models.IsIncidentSeverity(incident.Severity) {
		return fmt.Errorf("%w: unknown severity %q", ErrValidation, incident.Severity)
	}
	incident.Description = strings.TrimSpace(incident.Description)
	if utf8.RuneCountInString(incident.Description) < models.IncidentDescriptionMinLength {
		return fmt.Errorf("%w: description must be at least %d characters", ErrValidation, models.IncidentDescriptionMinLength)
	}
	if len(incident.AssignTo) == 0 {
		return fmt.Errorf("%w: at least one department is required", ErrValidation)
	}
	for _, department := range incident.AssignTo {
		if !models.IsDepartment(department) {
			return fmt.Errorf("%w: unknown department %q", ErrValidation, department)
		}
	}
	if len(incident.Attachments) == 0 {
		return fmt.Errorf("%w: at least one attachment is required", ErrValidation)
	}
	if s.maxAttachments > 0 && len(incident.Attachments) > s.maxAttachments {
		return fmt.Errorf("%w: at most %d attachments are allowed", ErrValidation, s.maxAttachments)
	}
	return nil
}
