package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

// VolunteerService - справочник волонтеров и их задачи
type VolunteerService interface {
	ListVolunteers(ctx context.Context) ([]*models.User, error)
	AssignTask(ctx context.Context, caller models.Identity, task *models.VolunteerTask) error
	ListTasks(ctx context.Context, caller models.Identity) ([]*models.VolunteerTask, error)
	UpdateTaskStatus(ctx context.Context, caller models.Identity, id uuid.UUID, status string) (*models.VolunteerTask, error)
}

type volunteerService struct {
	users    UserRepository
	tasks    VolunteerTaskRepository
	logger   *logrus.Logger
	workflow workflow.Workflow
}

func NewVolunteerService(users UserRepository, tasks VolunteerTaskRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		users:    users,
		tasks:    tasks,
		logger:   logger,
		workflow: workflow.For(workflow.KindVolunteerTask),
	}
}

func (s *volunteerService) ListVolunteers(ctx context.Context) ([]*models.User, error) {
	volunteers, err := s.users.ListByRole(ctx, models.RoleVolunteer)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListVolunteers").Error("Failed to list volunteers from repository")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}

// AssignTask создает задачу для существующего волонтера
func (s *volunteerService) AssignTask(ctx context.Context, caller models.Identity, task *models.VolunteerTask) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "AssignTask",
		"volunteer_id": task.VolunteerID,
		"assigned_by":  caller.UserID,
	})
	log.Info("Attempting to assign a volunteer task")

	assignerID, err := callerID(caller)
	if err != nil {
		return err
	}
	task.Description = strings.TrimSpace(task.Description)
	if task.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	volunteer, err := s.users.GetByID(ctx, task.VolunteerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: volunteer %s does not exist", ErrValidation, task.VolunteerID)
		}
		log.WithError(err).Error("Failed to get volunteer from repository")
		return fmt.Errorf("service: could not get volunteer: %w", err)
	}
	if volunteer.Role != models.RoleVolunteer {
		return fmt.Errorf("%w: user %s is not a volunteer", ErrValidation, task.VolunteerID)
	}

	task.AssignedBy = assignerID
	task.Status = s.workflow.Default()

	if err := s.tasks.Create(ctx, task); err != nil {
		log.WithError(err).Error("Failed to create volunteer task in repository")
		return fmt.Errorf("service: could not create volunteer task: %w", err)
	}

	log.WithField("task_id", task.ID).Info("Volunteer task assigned successfully")
	return nil
}

// ListTasks возвращает только задачи вызывающего волонтера
func (s *volunteerService) ListTasks(ctx context.Context, caller models.Identity) ([]*models.VolunteerTask, error) {
	volunteerID, err := callerID(caller)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListTasks").Error("Failed to list volunteer tasks from repository")
		return nil, fmt.Errorf("service: could not list volunteer tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus меняет статус задачи. Чужая задача неотличима от несуществующей.
func (s *volunteerService) UpdateTaskStatus(ctx context.Context, caller models.Identity, id uuid.UUID, status string) (*models.VolunteerTask, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "UpdateTaskStatus",
		"task_id": id,
		"status":  status,
	})

	volunteerID, err := callerID(caller)
	if err != nil {
		return nil, err
	}
	if err := s.workflow.Validate(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	task, err := s.tasks.UpdateStatus(ctx, id, volunteerID, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update volunteer task status")
		return nil, fmt.Errorf("service: could not update volunteer task: %w", err)
	}

	log.Info("Volunteer task status updated")
	return task, nil
}
