package entities

import (
	"github.com/google/uuid"

	"asset-system/pkg/types"
)

type Profile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName *string   `json:"full_name"`
	Role     string    `json:"role"`

	types.BaseEntity
}
