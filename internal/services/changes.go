package services

import (
	"github.com/google/uuid"

	"asset-system/internal/entities"
)

// fieldChange is a tracked field whose value differs between the stored row
// and an update payload.
type fieldChange struct {
	field    string
	oldValue *string
	newValue *string
}

func strPtr(s string) *string { return &s }

func uuidPtrToStr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// diffString records a change when the payload provides a value different
// from the stored one.
func diffString(field, oldValue string, newValue *string) *fieldChange {
	if newValue == nil || *newValue == oldValue {
		return nil
	}
	return &fieldChange{field: field, oldValue: strPtr(oldValue), newValue: strPtr(*newValue)}
}

func diffUUID(field string, oldValue, newValue *uuid.UUID) *fieldChange {
	if newValue == nil {
		return nil
	}
	if oldValue != nil && *oldValue == *newValue {
		return nil
	}
	return &fieldChange{field: field, oldValue: uuidPtrToStr(oldValue), newValue: uuidPtrToStr(newValue)}
}

func changeEntries(parentID, changedBy uuid.UUID, changes []*fieldChange) []entities.ChangeLogEntry {
	entries := make([]entities.ChangeLogEntry, 0, len(changes))
	for _, c := range changes {
		if c == nil {
			continue
		}
		entries = append(entries, entities.ChangeLogEntry{
			ParentID:     parentID,
			FieldChanged: c.field,
			OldValue:     c.oldValue,
			NewValue:     c.newValue,
			ChangedBy:    changedBy,
		})
	}
	return entries
}
