package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

type ResourceRequestService interface {
	Create(ctx context.Context, caller models.Identity, request *models.ResourceRequest) error
	List(ctx context.Context, filter models.RequestFilter) ([]*models.ResourceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ResourceRequest, error)
}

type resourceRequestService struct {
	repo      ResourceRequestRepository
	publisher EventPublisher
	logger    *logrus.Logger
	workflow  workflow.Workflow
}

func NewResourceRequestService(repo ResourceRequestRepository, publisher EventPublisher, logger *logrus.Logger) ResourceRequestService {
	return &resourceRequestService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		workflow:  workflow.For(workflow.KindResourceRequest),
	}
}

// Create сохраняет запрос со статусом Pending и рассылает событие newResourceRequest
func (s *resourceRequestService) Create(ctx context.Context, caller models.Identity, request *models.ResourceRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "resource_request",
		"method":        "Create",
		"user_id":       caller.UserID,
		"resource_type": request.ResourceType,
	})
	log.Info("Attempting to create a resource request")

	userID, err := callerID(caller)
	if err != nil {
		return err
	}
	if request.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	request.UserID = userID
	request.Status = s.workflow.Default()

	if err := s.repo.Create(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create resource request in repository")
		return fmt.Errorf("service: could not create resource request: %w", err)
	}
	log.WithField("request_id", request.ID).Info("Resource request created successfully")

	publish(ctx, s.publisher, log, models.EventNewResourceRequest, request)
	return nil
}

// List возвращает запросы, новые первыми
func (s *resourceRequestService) List(ctx context.Context, filter models.RequestFilter) ([]*models.ResourceRequest, error) {
	if filter.Status != "" {
		if err := s.workflow.Validate(filter.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "List").Error("Failed to list resource requests from repository")
		return nil, fmt.Errorf("service: could not list resource requests: %w", err)
	}
	return requests, nil
}

func (s *resourceRequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ResourceRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "resource_request",
		"method":     "UpdateStatus",
		"request_id": id,
		"status":     status,
	})

	if err := s.workflow.Validate(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	request, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update resource request status")
		return nil, fmt.Errorf("service: could not update resource request: %w", err)
	}

	log.Info("Resource request status updated")
	return request, nil
}
