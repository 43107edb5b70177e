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

const requestSelect = `
	SELECT q.id, q.user_id, u.username, q.resource_type, q.quantity, q.latitude, q.longitude, q.status, q.created_at, q.updated_at
	FROM %s q
	JOIN users u ON u.id = q.user_id
`

type ResourceRequestRepository struct {
	db *pgxpool.Pool
}

func NewResourceRequestRepository(db *pgxpool.Pool) service.ResourceRequestRepository {
	return &ResourceRequestRepository{db: db}
}

func (r *ResourceRequestRepository) Create(ctx context.Context, request *models.ResourceRequest) error {
	query := `
		INSERT INTO resource_requests (user_id, resource_type, quantity, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.UserID,
		request.ResourceType,
		request.Quantity,
		request.Location.Latitude,
		request.Location.Longitude,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return translateError(err, "create resource request")
	}
	return nil
}

// List возвращает запросы, новые первыми
func (r *ResourceRequestRepository) List(ctx context.Context, filter models.RequestFilter) ([]*models.ResourceRequest, error) {
	query := fmt.Sprintf(requestSelect, "resource_requests")
	var args []any
	if filter.Status != "" {
		query += ` WHERE q.status = $1`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY q.created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.ResourceRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}

func (r *ResourceRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ResourceRequest, error) {
	query := `
		WITH updated AS (
			UPDATE resource_requests SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING *
		)` + fmt.Sprintf(requestSelect, "updated") + `;`

	request, err := scanRequest(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("resource request with id %s: %w", id, service.ErrNotFound)
		}
		return nil, translateError(err, "update resource request status")
	}
	return request, nil
}

func scanRequest(row rowScanner) (*models.ResourceRequest, error) {
	request := &models.ResourceRequest{User: &models.UserRef{}}
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.User.Username,
		&request.ResourceType,
		&request.Quantity,
		&request.Location.Latitude,
		&request.Location.Longitude,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	request.User.ID = request.UserID
	return request, nil
}
