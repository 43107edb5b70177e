package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

// DistressSignalService определяет контракт работы с сигналами SOS
type DistressSignalService interface {
	Create(ctx context.Context, caller models.Identity, signal *models.DistressSignal) error
	List(ctx context.Context, filter models.SignalFilter) ([]*models.DistressSignal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.DistressSignal, error)
}

type distressSignalService struct {
	repo      DistressSignalRepository
	publisher EventPublisher
	logger    *logrus.Logger
	workflow  workflow.Workflow
}

func NewDistressSignalService(repo DistressSignalRepository, publisher EventPublisher, logger *logrus.Logger) DistressSignalService {
	return &distressSignalService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		workflow:  workflow.For(workflow.KindDistressSignal),
	}
}

// Create сохраняет сигнал со статусом по умолчанию и рассылает событие newSOS
func (s *distressSignalService) Create(ctx context.Context, caller models.Identity, signal *models.DistressSignal) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "distress_signal",
		"method":  "Create",
		"user_id": caller.UserID,
	})
	log.Info("Attempting to create a distress signal")

	userID, err := callerID(caller)
	if err != nil {
		return err
	}
	signal.UserID = userID
	signal.Status = s.workflow.Default()

	if err := s.repo.Create(ctx, signal); err != nil {
		log.WithError(err).Error("Failed to create distress signal in repository")
		return fmt.Errorf("service: could not create distress signal: %w", err)
	}
	log.WithField("signal_id", signal.ID).Info("Distress signal created successfully")

	publish(ctx, s.publisher, log, models.EventNewSOS, signal)
	return nil
}

// List возвращает сигналы. Без фильтра - все, кроме Resolved.
func (s *distressSignalService) List(ctx context.Context, filter models.SignalFilter) ([]*models.DistressSignal, error) {
	if filter.Status != "" {
		if err := s.workflow.Validate(filter.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	signals, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "List").Error("Failed to list distress signals from repository")
		return nil, fmt.Errorf("service: could not list distress signals: %w", err)
	}
	return signals, nil
}

// UpdateStatus заменяет статус сигнала целиком (последняя запись побеждает)
func (s *distressSignalService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.DistressSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "distress_signal",
		"method":    "UpdateStatus",
		"signal_id": id,
		"status":    status,
	})

	if err := s.workflow.Validate(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	signal, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update distress signal status")
		return nil, fmt.Errorf("service: could not update distress signal: %w", err)
	}

	log.Info("Distress signal status updated")
	return signal, nil
}

// publish рассылает событие. Ошибка доставки не отменяет уже сохраненную запись.
func publish(ctx context.Context, publisher EventPublisher, log *logrus.Entry, name string, data any) {
	if publisher == nil {
		return
	}
	event := models.Event{Name: name, Data: data, Timestamp: time.Now().UTC()}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event", name).Warn("Failed to publish event")
	}
}
