package repositories

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
)

type ReportRepositoryInterface interface {
	GetTicketReport(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportItemDTO, uint64, error)
	GetEquipmentReport(ctx context.Context, filter dto.EquipmentReportFilter) ([]dto.EquipmentReportItemDTO, uint64, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetTicketReport(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportItemDTO, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("support_tickets t").
		LeftJoin("profiles creator ON t.created_by = creator.id").
		LeftJoin("profiles assignee ON t.assigned_to = assignee.id").
		LeftJoin("equipments e ON t.equipment_id = e.id")

	if filter.DateFrom != nil {
		base = base.Where(sq.GtOrEq{"t.created_at": filter.DateFrom})
	}
	if filter.DateTo != nil {
		base = base.Where(sq.LtOrEq{"t.created_at": filter.DateTo})
	}
	if len(filter.Statuses) > 0 {
		base = base.Where(sq.Eq{"t.status": filter.Statuses})
	}
	if len(filter.Priorities) > 0 {
		base = base.Where(sq.Eq{"t.priority": filter.Priorities})
	}
	if len(filter.Categories) > 0 {
		base = base.Where(sq.Eq{"t.category": filter.Categories})
	}

	countQuery, countArgs, err := base.Columns("COUNT(t.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total uint64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataQuery, dataArgs, err := base.Columns(
		"t.id", "t.title", "t.category", "t.priority", "t.status",
		"creator.full_name", "assignee.full_name", "e.name",
		"t.created_at", "t.completed_at",
	).OrderBy("t.created_at DESC").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build report query: %w", err)
	}

	rows, err := r.db.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]dto.ReportItemDTO, 0)
	for rows.Next() {
		var item dto.ReportItemDTO
		var creatorName, assigneeName, equipmentName sql.NullString
		if err := rows.Scan(
			&item.TicketID, &item.Title, &item.Category, &item.Priority, &item.Status,
			&creatorName, &assigneeName, &equipmentName,
			&item.CreatedAt, &item.CompletedAt,
		); err != nil {
			return nil, 0, err
		}
		item.CreatorName = creatorName.String
		item.AssigneeName = assigneeName.String
		item.EquipmentName = equipmentName.String
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *reportRepository) GetEquipmentReport(ctx context.Context, filter dto.EquipmentReportFilter) ([]dto.EquipmentReportItemDTO, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("equipments e").
		LeftJoin("profiles u ON e.user_id = u.id")

	if filter.DateFrom != nil {
		base = base.Where(sq.GtOrEq{"e.created_at": filter.DateFrom})
	}
	if filter.DateTo != nil {
		base = base.Where(sq.LtOrEq{"e.created_at": filter.DateTo})
	}
	if len(filter.Statuses) > 0 {
		base = base.Where(sq.Eq{"e.status": filter.Statuses})
	}
	if len(filter.Types) > 0 {
		base = base.Where(sq.Eq{"e.type": filter.Types})
	}

	countQuery, countArgs, err := base.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total uint64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataQuery, dataArgs, err := base.Columns(
		"e.id", "e.name", "e.brand", "e.model", "e.serial_number",
		"e.type", "e.status", "e.location", "u.full_name", "e.created_at",
	).OrderBy("e.created_at DESC").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build report query: %w", err)
	}

	rows, err := r.db.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]dto.EquipmentReportItemDTO, 0)
	for rows.Next() {
		var item dto.EquipmentReportItemDTO
		var brand, model, serial, location, userName sql.NullString
		if err := rows.Scan(
			&item.EquipmentID, &item.Name, &brand, &model, &serial,
			&item.Type, &item.Status, &location, &userName, &item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		item.Brand = brand.String
		item.Model = model.String
		item.SerialNumber = serial.String
		item.Location = location.String
		item.UserName = userName.String
		items = append(items, item)
	}
	return items, total, rows.Err()
}
