package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateSupportTicketDTO struct {
	Title       string      `json:"title" validate:"required"`
	Description null.String `json:"description"`
	Status      string      `json:"status" validate:"omitempty,oneof=pendente em_andamento finalizado cancelado"`
	Priority    string      `json:"priority" validate:"omitempty,oneof=baixa media alta critica"`
	Category    string      `json:"category" validate:"required,ticket_category"`
	EquipmentID *uuid.UUID  `json:"equipment_id"`
	AssignedTo  *uuid.UUID  `json:"assigned_to"`
}

type UpdateSupportTicketDTO struct {
	Title       *string     `json:"title,omitempty"`
	Description null.String `json:"description,omitempty"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=pendente em_andamento finalizado cancelado"`
	Priority    *string     `json:"priority,omitempty" validate:"omitempty,oneof=baixa media alta critica"`
	Category    *string     `json:"category,omitempty" validate:"omitempty,ticket_category"`
	EquipmentID *uuid.UUID  `json:"equipment_id,omitempty"`
	AssignedTo  *uuid.UUID  `json:"assigned_to,omitempty"`
}
