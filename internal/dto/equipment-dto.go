package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// CreateEquipmentDTO carries only client-settable fields; id, timestamps and
// created_by are server-managed.
type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required"`
	Brand        null.String `json:"brand"`
	Model        null.String `json:"model"`
	SerialNumber null.String `json:"serial_number"`
	Type         string      `json:"type" validate:"required,oneof=desktop notebook server printer monitor other"`
	Status       string      `json:"status" validate:"omitempty,oneof=ativo manutencao desativado estoque"`
	Location     null.String `json:"location"`
	UserID       *uuid.UUID  `json:"user_id"`
}

// UpdateEquipmentDTO is a patch: every field optional, absent fields are left
// untouched.
type UpdateEquipmentDTO struct {
	Name         *string     `json:"name,omitempty"`
	Brand        null.String `json:"brand,omitempty"`
	Model        null.String `json:"model,omitempty"`
	SerialNumber null.String `json:"serial_number,omitempty"`
	Type         *string     `json:"type,omitempty" validate:"omitempty,oneof=desktop notebook server printer monitor other"`
	Status       *string     `json:"status,omitempty" validate:"omitempty,oneof=ativo manutencao desativado estoque"`
	Location     null.String `json:"location,omitempty"`
	UserID       *uuid.UUID  `json:"user_id,omitempty"`
}
