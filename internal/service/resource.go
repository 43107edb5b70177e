package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// ResourceService - складской учет ресурсов
type ResourceService interface {
	Create(ctx context.Context, resource *models.Resource) error
	List(ctx context.Context) ([]*models.Resource, error)
	Replace(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceService struct {
	repo   ResourceRepository
	logger *logrus.Logger
}

func NewResourceService(repo ResourceRepository, logger *logrus.Logger) ResourceService {
	return &resourceService{
		repo:   repo,
		logger: logger,
	}
}

func (s *resourceService) Create(ctx context.Context, resource *models.Resource) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "Create",
		"name":    resource.Name,
	})

	if err := validateResource(resource); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		log.WithError(err).Error("Failed to create resource in repository")
		return fmt.Errorf("service: could not create resource: %w", err)
	}

	log.WithField("resource_id", resource.ID).Info("Resource created successfully")
	return nil
}

func (s *resourceService) List(ctx context.Context) ([]*models.Resource, error) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "List").Error("Failed to list resources from repository")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}
	return resources, nil
}

// Replace заменяет все поля ресурса
func (s *resourceService) Replace(ctx context.Context, resource *models.Resource) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "Replace",
		"resource_id": resource.ID,
	})

	if err := validateResource(resource); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, resource); err != nil {
		log.WithError(err).Warn("Failed to update resource in repository")
		return fmt.Errorf("service: could not update resource: %w", err)
	}

	log.Info("Resource updated successfully")
	return nil
}

func (s *resourceService) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "Delete",
		"resource_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete resource in repository")
		return fmt.Errorf("service: could not delete resource: %w", err)
	}

	log.Info("Resource deleted successfully")
	return nil
}

func validateResource(resource *models.Resource) error {
	resource.Name = strings.TrimSpace(resource.Name)
	if resource.Name == "" {
		return fmt.Errorf("%w: resource name is required", ErrValidation)
	}
	if resource.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	return nil
}
