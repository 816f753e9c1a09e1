package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChangeLogEntry is one field-level change on a support ticket or a
// maintenance, written by the backend on every update that touches a tracked
// field. Read-only for consumers.
type ChangeLogEntry struct {
	ID           uuid.UUID `json:"id"`
	ParentID     uuid.UUID `json:"parent_id"`
	FieldChanged string    `json:"field_changed"`
	OldValue     *string   `json:"old_value"`
	NewValue     *string   `json:"new_value"`
	ChangedBy    uuid.UUID `json:"changed_by"`
	ActorName    *string   `json:"actor_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
