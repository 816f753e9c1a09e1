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

const equipmentColumns = "id, name, brand, model, serial_number, type, status, location, user_id, created_by, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Brand, &e.Model, &e.SerialNumber,
		&e.Type, &e.Status, &e.Location, &e.UserID, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentColumns).
		From("equipments").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Brand, &e.Model, &e.SerialNumber,
			&e.Type, &e.Status, &e.Location, &e.UserID, &e.CreatedBy,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		equipments = append(equipments, e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+equipmentColumns+" FROM equipments WHERE id = $1", id)
	return scanEquipment(row)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, createdBy uuid.UUID, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	status := payload.Status
	if status == "" {
		status = entities.EquipmentStatusActive
	}

	row := r.storage.QueryRow(ctx, `
		INSERT INTO equipments (id, name, brand, model, serial_number, type, status, location, user_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+equipmentColumns,
		uuid.New(), payload.Name, payload.Brand.Ptr(), payload.Model.Ptr(), payload.SerialNumber.Ptr(),
		payload.Type, status, payload.Location.Ptr(), payload.UserID, createdBy,
	)
	return scanEquipment(row)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("equipments").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Brand.Valid {
		builder = builder.Set("brand", payload.Brand.String)
	}
	if payload.Model.Valid {
		builder = builder.Set("model", payload.Model.String)
	}
	if payload.SerialNumber.Valid {
		builder = builder.Set("serial_number", payload.SerialNumber.String)
	}
	if payload.Type != nil {
		builder = builder.Set("type", *payload.Type)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Location.Valid {
		builder = builder.Set("location", payload.Location.String)
	}
	if payload.UserID != nil {
		builder = builder.Set("user_id", *payload.UserID)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
