package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/entities"
)

type ChangeLogRepositoryInterface interface {
	CreateTicketLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error
	CreateMaintenanceLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entities.ChangeLogEntry, error)
	FindByMaintenanceID(ctx context.Context, maintenanceID uuid.UUID) ([]entities.ChangeLogEntry, error)
}

type ChangeLogRepository struct {
	storage *pgxpool.Pool
}

func NewChangeLogRepository(storage *pgxpool.Pool) ChangeLogRepositoryInterface {
	return &ChangeLogRepository{storage: storage}
}

func (r *ChangeLogRepository) CreateTicketLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO support_ticket_logs (id, ticket_id, field_changed, old_value, new_value, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), entry.ParentID, entry.FieldChanged, entry.OldValue, entry.NewValue, entry.ChangedBy,
	)
	return err
}

func (r *ChangeLogRepository) CreateMaintenanceLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO maintenance_logs (id, maintenance_id, field_changed, old_value, new_value, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), entry.ParentID, entry.FieldChanged, entry.OldValue, entry.NewValue, entry.ChangedBy,
	)
	return err
}

func (r *ChangeLogRepository) FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entities.ChangeLogEntry, error) {
	return r.findLogs(ctx, `
		SELECT l.id, l.ticket_id, l.field_changed, l.old_value, l.new_value, l.changed_by, p.full_name, l.created_at
		FROM support_ticket_logs l
		LEFT JOIN profiles p ON p.id = l.changed_by
		WHERE l.ticket_id = $1
		ORDER BY l.created_at DESC, l.id DESC`, ticketID)
}

func (r *ChangeLogRepository) FindByMaintenanceID(ctx context.Context, maintenanceID uuid.UUID) ([]entities.ChangeLogEntry, error) {
	return r.findLogs(ctx, `
		SELECT l.id, l.maintenance_id, l.field_changed, l.old_value, l.new_value, l.changed_by, p.full_name, l.created_at
		FROM maintenance_logs l
		LEFT JOIN profiles p ON p.id = l.changed_by
		WHERE l.maintenance_id = $1
		ORDER BY l.created_at DESC, l.id DESC`, maintenanceID)
}

func (r *ChangeLogRepository) findLogs(ctx context.Context, query string, parentID uuid.UUID) ([]entities.ChangeLogEntry, error) {
	rows, err := r.storage.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entities.ChangeLogEntry, 0)
	for rows.Next() {
		var e entities.ChangeLogEntry
		if err := rows.Scan(
			&e.ID, &e.ParentID, &e.FieldChanged, &e.OldValue, &e.NewValue,
			&e.ChangedBy, &e.ActorName, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
