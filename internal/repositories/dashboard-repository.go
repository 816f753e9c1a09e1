package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{
		EquipmentByStatus:  make(map[string]uint64),
		TicketsByStatus:    make(map[string]uint64),
		TicketsByPriority:  make(map[string]uint64),
		MaintenancesByType: make(map[string]uint64),
	}

	var err error
	if stats.EquipmentByStatus, stats.EquipmentTotal, err = r.countBy(ctx, "equipments", "status"); err != nil {
		return nil, err
	}
	if stats.TicketsByStatus, stats.TicketsTotal, err = r.countBy(ctx, "support_tickets", "status"); err != nil {
		return nil, err
	}
	if stats.TicketsByPriority, _, err = r.countBy(ctx, "support_tickets", "priority"); err != nil {
		return nil, err
	}
	if stats.MaintenancesByType, stats.MaintenancesTotal, err = r.countBy(ctx, "maintenances", "type"); err != nil {
		return nil, err
	}

	byStatus, _, err := r.countBy(ctx, "maintenances", "status")
	if err != nil {
		return nil, err
	}
	stats.MaintenancesPending = byStatus[entities.MaintenanceStatusPending]

	return stats, nil
}

func (r *DashboardRepository) countBy(ctx context.Context, table, column string) (map[string]uint64, uint64, error) {
	rows, err := r.storage.Query(ctx, "SELECT "+column+", COUNT(*) FROM "+table+" GROUP BY "+column)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := make(map[string]uint64)
	var total uint64
	for rows.Next() {
		var key string
		var count uint64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, 0, err
		}
		counts[key] = count
		total += count
	}
	return counts, total, rows.Err()
}
