package entities

import (
	"github.com/google/uuid"

	"asset-system/pkg/types"
)

// Equipment status values as stored. The dashboard UI shows the translated
// labels.
const (
	EquipmentStatusActive      = "ativo"
	EquipmentStatusMaintenance = "manutencao"
	EquipmentStatusInactive    = "desativado"
	EquipmentStatusStock       = "estoque"
)

const (
	EquipmentTypeDesktop  = "desktop"
	EquipmentTypeNotebook = "notebook"
	EquipmentTypeServer   = "server"
	EquipmentTypePrinter  = "printer"
	EquipmentTypeMonitor  = "monitor"
	EquipmentTypeOther    = "other"
)

type Equipment struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Brand        *string    `json:"brand"`
	Model        *string    `json:"model"`
	SerialNumber *string    `json:"serial_number"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Location     *string    `json:"location"`
	UserID       *uuid.UUID `json:"user_id"`
	CreatedBy    uuid.UUID  `json:"created_by"`

	types.BaseEntity
}
