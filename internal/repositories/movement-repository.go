package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	apperrors "asset-system/pkg/errors"
)

const movementColumns = "id, equipment_id, movement_type, from_location, to_location, from_user_id, to_user_id, reason, created_by, created_at"

type MovementRepositoryInterface interface {
	GetMovements(ctx context.Context, equipmentID *uuid.UUID) ([]entities.Movement, error)
	CreateMovement(ctx context.Context, createdBy uuid.UUID, payload dto.CreateMovementDTO) (*entities.Movement, error)
}

type MovementRepository struct {
	storage *pgxpool.Pool
}

func NewMovementRepository(storage *pgxpool.Pool) MovementRepositoryInterface {
	return &MovementRepository{storage: storage}
}

func (r *MovementRepository) GetMovements(ctx context.Context, equipmentID *uuid.UUID) ([]entities.Movement, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(movementColumns).
		From("movements").
		OrderBy("created_at DESC")
	if equipmentID != nil {
		builder = builder.Where(sq.Eq{"equipment_id": *equipmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]entities.Movement, 0)
	for rows.Next() {
		var m entities.Movement
		if err := rows.Scan(
			&m.ID, &m.EquipmentID, &m.MovementType,
			&m.FromLocation, &m.ToLocation, &m.FromUserID, &m.ToUserID,
			&m.Reason, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *MovementRepository) CreateMovement(ctx context.Context, createdBy uuid.UUID, payload dto.CreateMovementDTO) (*entities.Movement, error) {
	row := r.storage.QueryRow(ctx, `
		INSERT INTO movements (id, equipment_id, movement_type, from_location, to_location, from_user_id, to_user_id, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+movementColumns,
		uuid.New(), payload.EquipmentID, payload.MovementType,
		payload.FromLocation.Ptr(), payload.ToLocation.Ptr(),
		payload.FromUserID, payload.ToUserID, payload.Reason.Ptr(), createdBy,
	)

	var m entities.Movement
	err := row.Scan(
		&m.ID, &m.EquipmentID, &m.MovementType,
		&m.FromLocation, &m.ToLocation, &m.FromUserID, &m.ToUserID,
		&m.Reason, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
