package entities

import (
	"time"

	"github.com/google/uuid"

	"asset-system/pkg/types"
)

const (
	MaintenanceTypePreventive = "preventiva"
	MaintenanceTypeCorrective = "corretiva"
	MaintenanceTypeUpgrade    = "upgrade"
)

const (
	MaintenanceStatusPending    = "pendente"
	MaintenanceStatusInProgress = "em_andamento"
	MaintenanceStatusCompleted  = "concluida"
	MaintenanceStatusCancelled  = "cancelada"
)

const (
	PriorityLow      = "baixa"
	PriorityMedium   = "media"
	PriorityHigh     = "alta"
	PriorityCritical = "critica"
)

type Maintenance struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	EquipmentID   *uuid.UUID `json:"equipment_id"`
	RequestedBy   uuid.UUID  `json:"requested_by"`
	TechnicianID  *uuid.UUID `json:"technician_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	Cost          *float64   `json:"cost"`
	Notes         *string    `json:"notes"`

	types.BaseEntity
}
