package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateMaintenanceDTO struct {
	Title         string      `json:"title" validate:"required"`
	Description   null.String `json:"description"`
	Type          string      `json:"type" validate:"required,oneof=preventiva corretiva upgrade"`
	Status        string      `json:"status" validate:"omitempty,oneof=pendente em_andamento concluida cancelada"`
	Priority      string      `json:"priority" validate:"omitempty,oneof=baixa media alta critica"`
	EquipmentID   *uuid.UUID  `json:"equipment_id"`
	TechnicianID  *uuid.UUID  `json:"technician_id"`
	ScheduledDate null.Time   `json:"scheduled_date"`
	Cost          null.Float64 `json:"cost"`
	Notes         null.String `json:"notes"`
}

type UpdateMaintenanceDTO struct {
	Title         *string      `json:"title,omitempty"`
	Description   null.String  `json:"description,omitempty"`
	Type          *string      `json:"type,omitempty" validate:"omitempty,oneof=preventiva corretiva upgrade"`
	Status        *string      `json:"status,omitempty" validate:"omitempty,oneof=pendente em_andamento concluida cancelada"`
	Priority      *string      `json:"priority,omitempty" validate:"omitempty,oneof=baixa media alta critica"`
	EquipmentID   *uuid.UUID   `json:"equipment_id,omitempty"`
	TechnicianID  *uuid.UUID   `json:"technician_id,omitempty"`
	ScheduledDate null.Time    `json:"scheduled_date,omitempty"`
	StartedAt     null.Time    `json:"started_at,omitempty"`
	CompletedAt   null.Time    `json:"completed_at,omitempty"`
	Cost          null.Float64 `json:"cost,omitempty"`
	Notes         null.String  `json:"notes,omitempty"`
}
