package dto

// DashboardStatsDTO aggregates the counters shown on the dashboard landing
// page.
type DashboardStatsDTO struct {
	EquipmentTotal      uint64            `json:"equipment_total"`
	EquipmentByStatus   map[string]uint64 `json:"equipment_by_status"`
	TicketsTotal        uint64            `json:"tickets_total"`
	TicketsByStatus     map[string]uint64 `json:"tickets_by_status"`
	TicketsByPriority   map[string]uint64 `json:"tickets_by_priority"`
	MaintenancesTotal   uint64            `json:"maintenances_total"`
	MaintenancesByType  map[string]uint64 `json:"maintenances_by_type"`
	MaintenancesPending uint64            `json:"maintenances_pending"`
}
