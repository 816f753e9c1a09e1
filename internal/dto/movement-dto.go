package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateMovementDTO struct {
	EquipmentID  uuid.UUID   `json:"equipment_id" validate:"required"`
	MovementType string      `json:"movement_type" validate:"required,oneof=transfer maintenance upgrade other"`
	FromLocation null.String `json:"from_location"`
	ToLocation   null.String `json:"to_location"`
	FromUserID   *uuid.UUID  `json:"from_user_id"`
	ToUserID     *uuid.UUID  `json:"to_user_id"`
	Reason       null.String `json:"reason"`
}
