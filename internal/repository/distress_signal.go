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
	"github.com/shenikar/disaster_response_system/internal/workflow"
)

const signalSelect = `
	SELECT s.id, s.user_id, u.username, s.message, s.latitude, s.longitude, s.status, s.created_at, s.updated_at
	FROM %s s
	JOIN users u ON u.id = s.user_id
`

type DistressSignalRepository struct {
	db *pgxpool.Pool
}

func NewDistressSignalRepository(db *pgxpool.Pool) service.DistressSignalRepository {
	return &DistressSignalRepository{db: db}
}

// Create создает новый сигнал SOS в бд
func (r *DistressSignalRepository) Create(ctx context.Context, signal *models.DistressSignal) error {
	query := `
		INSERT INTO distress_signals (user_id, message, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		signal.UserID,
		signal.Message,
		signal.Location.Latitude,
		signal.Location.Longitude,
		signal.Status,
	).Scan(&signal.ID, &signal.CreatedAt, &signal.UpdatedAt)
	if err != nil {
		return translateError(err, "create distress signal")
	}
	return nil
}

// List возвращает сигналы, новые первыми. Пустой фильтр исключает Resolved.
func (r *DistressSignalRepository) List(ctx context.Context, filter models.SignalFilter) ([]*models.DistressSignal, error) {
	query := fmt.Sprintf(signalSelect, "distress_signals")
	var args []any
	if filter.Status != "" {
		query += ` WHERE s.status = $1`
		args = append(args, filter.Status)
	} else {
		query += ` WHERE s.status <> $1`
		args = append(args, workflow.SignalResolved)
	}
	query += ` ORDER BY s.created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list distress signals: %w", err)
	}
	defer rows.Close()

	signals := make([]*models.DistressSignal, 0)
	for rows.Next() {
		signal, err := scanSignal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distress signal row: %w", err)
		}
		signals = append(signals, signal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return signals, nil
}

// UpdateStatus заменяет статус и возвращает обновленную запись
func (r *DistressSignalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.DistressSignal, error) {
	query := `
		WITH updated AS (
			UPDATE distress_signals SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING *
		)` + fmt.Sprintf(signalSelect, "updated") + `;`

	signal, err := scanSignal(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("distress signal with id %s: %w", id, service.ErrNotFound)
		}
		return nil, translateError(err, "update distress signal status")
	}
	return signal, nil
}

func scanSignal(row rowScanner) (*models.DistressSignal, error) {
	signal := &models.DistressSignal{User: &models.UserRef{}}
	err := row.Scan(
		&signal.ID,
		&signal.UserID,
		&signal.User.Username,
		&signal.Message,
		&signal.Location.Latitude,
		&signal.Location.Longitude,
		&signal.Status,
		&signal.CreatedAt,
		&signal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	signal.User.ID = signal.UserID
	return signal, nil
}
