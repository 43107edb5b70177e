package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

const taskSelect = `
	SELECT t.id, t.volunteer_id, t.description, t.assigned_by, u.username, t.status, t.created_at, t.updated_at
	FROM %s t
	JOIN users u ON u.id = t.assigned_by
`

type VolunteerTaskRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerTaskRepository(db *pgxpool.Pool) service.VolunteerTaskRepository {
	return &VolunteerTaskRepository{db: db}
}

func (r *VolunteerTaskRepository) Create(ctx context.Context, task *models.VolunteerTask) error {
	query := `
		INSERT INTO volunteer_tasks (volunteer_id, description, assigned_by, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		task.VolunteerID,
		task.Description,
		task.AssignedBy,
		task.Status,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return translateError(err, "create volunteer task")
	}
	return nil
}

// ListByVolunteer возвращает задачи волонтера, новые первыми
func (r *VolunteerTaskRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.VolunteerTask, error) {
	query := fmt.Sprintf(taskSelect, "volunteer_tasks") + ` WHERE t.volunteer_id = $1 ORDER BY t.created_at DESC;`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.VolunteerTask, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return tasks, nil
}

// UpdateStatus обновляет только задачу, назначенную данному волонтеру
func (r *VolunteerTaskRepository) UpdateStatus(ctx context.Context, id, volunteerID uuid.UUID, status string) (*models.VolunteerTask, error) {
	query := `
		WITH updated AS (
			UPDATE volunteer_tasks SET status = $1, updated_at = NOW()
			WHERE id = $2 AND volunteer_id = $3
			RETURNING *
		)` + fmt.Sprintf(taskSelect, "updated") + `;`

	task, err := scanTask(r.db.QueryRow(ctx, query, status, id, volunteerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer task with id %s: %w", id, service.ErrNotFound)
		}
		return nil, translateError(err, "update volunteer task status")
	}
	return task, nil
}

func scanTask(row rowScanner) (*models.VolunteerTask, error) {
	task := &models.VolunteerTask{Assigner: &models.UserRef{}}
	err := row.Scan(
		&task.ID,
		&task.VolunteerID,
		&task.Description,
		&task.AssignedBy,
		&task.Assigner.Username,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Assigner.ID = task.AssignedBy
	return task, nil
}
