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

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (name, quantity, unit)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, resource.Name, resource.Quantity, resource.Unit).
		Scan(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)
	if err != nil {
		return translateError(err, "create resource")
	}
	return nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	query := `
		SELECT id, name, quantity, unit, created_at, updated_at
		FROM resources
		ORDER BY name, created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		if err := rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.Quantity,
			&resource.Unit,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return resources, nil
}

// Update полностью заменяет поля ресурса
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources SET
			name = $1,
			quantity = $2,
			unit = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, resource.Name, resource.Quantity, resource.Unit, resource.ID).
		Scan(&resource.CreatedAt, &resource.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("resource with id %s: %w", resource.ID, service.ErrNotFound)
		}
		return translateError(err, "update resource")
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	// RowsAffected() == 0 - ресурса с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("resource with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}
