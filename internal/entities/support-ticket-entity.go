package entities

import (
	"time"

	"github.com/google/uuid"

	"asset-system/pkg/types"
)

const (
	TicketStatusPending    = "pendente"
	TicketStatusInProgress = "em_andamento"
	TicketStatusFinalized  = "finalizado"
	TicketStatusCancelled  = "cancelado"
)

type SupportTicket struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	EquipmentID *uuid.UUID `json:"equipment_id"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	CompletedAt *time.Time `json:"completed_at"`

	types.BaseEntity
}
