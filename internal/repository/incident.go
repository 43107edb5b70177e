package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

const incidentSelect = `
	SELECT
		i.id,
		i.category,
		i.severity,
		i.description,
		i.assign_to,
		i.latitude,
		i.longitude,
		i.attachments,
		i.reported_by,
		u.username,
		i.status,
		i.created_at,
		i.updated_at
	FROM %s i
	JOIN users u ON u.id = i.reported_by
`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (category, severity, description, assign_to, latitude, longitude, attachments, reported_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Category,
		incident.Severity,
		incident.Description,
		incident.AssignTo,
		incident.Location.Latitude,
		incident.Location.Longitude,
		incident.Attachments,
		incident.ReportedBy,
		incident.Status,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return translateError(err, "create incident")
	}
	return nil
}

// List возвращает инциденты, новые первыми, с необязательными фильтрами
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("i.%s = $%d", column, len(args)))
	}
	addCondition("category", filter.Category)
	addCondition("severity", filter.Severity)
	addCondition("status", filter.Status)

	query := fmt.Sprintf(incidentSelect, "incidents")
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error) {
	query := `
		WITH updated AS (
			UPDATE incidents SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING *
		)` + fmt.Sprintf(incidentSelect, "updated") + `;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, translateError(err, "update incident status")
	}
	return incident, nil
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{Reporter: &models.UserRef{}}
	err := row.Scan(
		&incident.ID,
		&incident.Category,
		&incident.Severity,
		&incident.Description,
		&incident.AssignTo,
		&incident.Location.Latitude,
		&incident.Location.Longitude,
		&incident.Attachments,
		&incident.ReportedBy,
		&incident.Reporter.Username,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	incident.Reporter.ID = incident.ReportedBy
	return incident, nil
}
