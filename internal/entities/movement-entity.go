package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MovementTypeTransfer    = "transfer"
	MovementTypeMaintenance = "maintenance"
	MovementTypeUpgrade     = "upgrade"
	MovementTypeOther       = "other"
)

// Movement records an equipment handover or relocation. Append-only.
type Movement struct {
	ID           uuid.UUID  `json:"id"`
	EquipmentID  uuid.UUID  `json:"equipment_id"`
	MovementType string     `json:"movement_type"`
	FromLocation *string    `json:"from_location"`
	ToLocation   *string    `json:"to_location"`
	FromUserID   *uuid.UUID `json:"from_user_id"`
	ToUserID     *uuid.UUID `json:"to_user_id"`
	Reason       *string    `json:"reason"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
}
