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

const ticketColumns = "id, title, description, status, priority, category, equipment_id, created_by, assigned_to, completed_at, created_at, updated_at"

type SupportTicketRepositoryInterface interface {
	GetSupportTickets(ctx context.Context) ([]entities.SupportTicket, error)
	FindSupportTicket(ctx context.Context, q Querier, id uuid.UUID) (*entities.SupportTicket, error)
	CreateSupportTicket(ctx context.Context, createdBy uuid.UUID, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error)
	UpdateSupportTicket(ctx context.Context, q Querier, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error)
}

type SupportTicketRepository struct {
	storage *pgxpool.Pool
}

func NewSupportTicketRepository(storage *pgxpool.Pool) SupportTicketRepositoryInterface {
	return &SupportTicketRepository{storage: storage}
}

func scanSupportTicket(row pgx.Row) (*entities.SupportTicket, error) {
	var t entities.SupportTicket
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.Category,
		&t.EquipmentID, &t.CreatedBy, &t.AssignedTo, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *SupportTicketRepository) GetSupportTickets(ctx context.Context) ([]entities.SupportTicket, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(ticketColumns).
		From("support_tickets").
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

	tickets := make([]entities.SupportTicket, 0)
	for rows.Next() {
		var t entities.SupportTicket
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.Category,
			&t.EquipmentID, &t.CreatedBy, &t.AssignedTo, &t.CompletedAt,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *SupportTicketRepository) FindSupportTicket(ctx context.Context, q Querier, id uuid.UUID) (*entities.SupportTicket, error) {
	if q == nil {
		q = r.storage
	}
	row := q.QueryRow(ctx, "SELECT "+ticketColumns+" FROM support_tickets WHERE id = $1", id)
	return scanSupportTicket(row)
}

func (r *SupportTicketRepository) CreateSupportTicket(ctx context.Context, createdBy uuid.UUID, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error) {
	status := payload.Status
	if status == "" {
		status = entities.TicketStatusPending
	}
	priority := payload.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	row := r.storage.QueryRow(ctx, `
		INSERT INTO support_tickets (id, title, description, status, priority, category, equipment_id, created_by, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+ticketColumns,
		uuid.New(), payload.Title, payload.Description.Ptr(), status, priority,
		payload.Category, payload.EquipmentID, createdBy, payload.AssignedTo,
	)
	return scanSupportTicket(row)
}

func (r *SupportTicketRepository) UpdateSupportTicket(ctx context.Context, q Querier, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error) {
	if q == nil {
		q = r.storage
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("support_tickets").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Title != nil {
		builder = builder.Set("title", *payload.Title)
	}
	if payload.Description.Valid {
		builder = builder.Set("description", payload.Description.String)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		if *payload.Status == entities.TicketStatusFinalized {
			builder = builder.Set("completed_at", sq.Expr("CURRENT_TIMESTAMP"))
		}
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.Category != nil {
		builder = builder.Set("category", *payload.Category)
	}
	if payload.EquipmentID != nil {
		builder = builder.Set("equipment_id", *payload.EquipmentID)
	}
	if payload.AssignedTo != nil {
		builder = builder.Set("assigned_to", *payload.AssignedTo)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + ticketColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanSupportTicket(q.QueryRow(ctx, query, args...))
}
