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

const maintenanceColumns = "id, title, description, type, status, priority, equipment_id, requested_by, technician_id, scheduled_date, started_at, completed_at, cost, notes, created_at, updated_at"

type MaintenanceRepositoryInterface interface {
	GetMaintenances(ctx context.Context) ([]entities.Maintenance, error)
	FindMaintenance(ctx context.Context, q Querier, id uuid.UUID) (*entities.Maintenance, error)
	CreateMaintenance(ctx context.Context, requestedBy uuid.UUID, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error)
	UpdateMaintenance(ctx context.Context, q Querier, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Type, &m.Status, &m.Priority,
		&m.EquipmentID, &m.RequestedBy, &m.TechnicianID,
		&m.ScheduledDate, &m.StartedAt, &m.CompletedAt,
		&m.Cost, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context) ([]entities.Maintenance, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(maintenanceColumns).
		From("maintenances").
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

	maintenances := make([]entities.Maintenance, 0)
	for rows.Next() {
		var m entities.Maintenance
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.Type, &m.Status, &m.Priority,
			&m.EquipmentID, &m.RequestedBy, &m.TechnicianID,
			&m.ScheduledDate, &m.StartedAt, &m.CompletedAt,
			&m.Cost, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		maintenances = append(maintenances, m)
	}
	return maintenances, rows.Err()
}

func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, q Querier, id uuid.UUID) (*entities.Maintenance, error) {
	if q == nil {
		q = r.storage
	}
	row := q.QueryRow(ctx, "SELECT "+maintenanceColumns+" FROM maintenances WHERE id = $1", id)
	return scanMaintenance(row)
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, requestedBy uuid.UUID, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	status := payload.Status
	if status == "" {
		status = entities.MaintenanceStatusPending
	}
	priority := payload.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	row := r.storage.QueryRow(ctx, `
		INSERT INTO maintenances (id, title, description, type, status, priority, equipment_id, requested_by, technician_id, scheduled_date, cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+maintenanceColumns,
		uuid.New(), payload.Title, payload.Description.Ptr(), payload.Type, status, priority,
		payload.EquipmentID, requestedBy, payload.TechnicianID,
		payload.ScheduledDate.Ptr(), payload.Cost.Ptr(), payload.Notes.Ptr(),
	)
	return scanMaintenance(row)
}

func (r *MaintenanceRepository) UpdateMaintenance(ctx context.Context, q Querier, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	if q == nil {
		q = r.storage
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("maintenances").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Title != nil {
		builder = builder.Set("title", *payload.Title)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description.String)
	}
	if payload.Type != nil {
		builder = builder.Set("type", *payload.Type)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		if *payload.Status == entities.MaintenanceStatusCompleted {
			builder = builder.Set("completed_at", sq.Expr("CURRENT_TIMESTAMP"))
		}
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.EquipmentID != nil {
		builder = builder.Set("equipment_id", *payload.EquipmentID)
	}
	if payload.TechnicianID != nil {
		builder = builder.Set("technician_id", *payload.TechnicianID)
	}
	if payload.ScheduledDate.Valid {
		builder = builder.Set("scheduled_date", payload.ScheduledDate.Time)
	}
	if payload.StartedAt.Valid {
		builder = builder.Set("started_at", payload.StartedAt.Time)
	}
	if payload.CompletedAt.Valid {
		builder = builder.Set("completed_at", payload.CompletedAt.Time)
	}
	if payload.Cost.Valid {
		builder = builder.Set("cost", payload.Cost.Float64)
	}
	if payload.Notes.Valid {
		builder = builder.Set("notes", payload.Notes.String)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + maintenanceColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanMaintenance(q.QueryRow(ctx, query, args...))
}
